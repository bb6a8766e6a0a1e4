package districtmap

import (
	"github.com/paulmach/orb"

	"github.com/kingrea/sound-archive/internal/catalog"
)

// Grid is the map sampled onto terminal cells. Each cell records the
// district under its center point.
type Grid struct {
	Cols  int
	Rows  int
	cells [][]catalog.District
	bound orb.Bound
}

// Rasterize samples the region shapes onto a cols x rows grid spanning the
// union of all region bounds.
func Rasterize(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{Cols: cols, Rows: rows, bound: Bounds()}
	g.cells = make([][]catalog.District, rows)
	for row := 0; row < rows; row++ {
		g.cells[row] = make([]catalog.District, cols)
		for col := 0; col < cols; col++ {
			if d, ok := RegionAt(g.PointAt(col, row)); ok {
				g.cells[row][col] = d
			}
		}
	}
	return g
}

// PointAt returns the drawing-space point at the center of a cell.
func (g *Grid) PointAt(col, row int) orb.Point {
	stepX := (g.bound.Max[0] - g.bound.Min[0]) / float64(g.Cols)
	stepY := (g.bound.Max[1] - g.bound.Min[1]) / float64(g.Rows)
	return orb.Point{
		g.bound.Min[0] + (float64(col)+0.5)*stepX,
		g.bound.Min[1] + (float64(row)+0.5)*stepY,
	}
}

// At returns the district drawn in a cell, or "" for empty space and
// out-of-range cells.
func (g *Grid) At(col, row int) catalog.District {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return ""
	}
	return g.cells[row][col]
}

// Clamp keeps a cursor position inside the grid.
func (g *Grid) Clamp(col, row int) (int, int) {
	col = min(max(col, 0), g.Cols-1)
	row = min(max(row, 0), g.Rows-1)
	return col, row
}

// Anchor returns a cell inside d, nearest the center of its bounds, so a
// cursor can jump to a district.
func (g *Grid) Anchor(d catalog.District) (int, int, bool) {
	r, ok := Lookup(d)
	if !ok {
		return 0, 0, false
	}
	center := r.Shape.Bound().Center()
	bestCol, bestRow, found := 0, 0, false
	bestDist := 0.0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.cells[row][col] != d {
				continue
			}
			p := g.PointAt(col, row)
			dx, dy := p[0]-center[0], p[1]-center[1]
			dist := dx*dx + dy*dy
			if !found || dist < bestDist {
				bestCol, bestRow, bestDist, found = col, row, dist, true
			}
		}
	}
	return bestCol, bestRow, found
}
