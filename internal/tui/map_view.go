package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/sound-archive/internal/catalog"
	"github.com/kingrea/sound-archive/internal/districtmap"
)

const (
	emptyZoneText   = "No specimens collected in this zone yet."
	crosshairGlyph  = '✚'
	mapSidebarWidth = 40
)

var groupFill = map[districtmap.Group]rune{
	districtmap.GroupCore:  '█',
	districtmap.GroupInner: '▓',
	districtmap.GroupOuter: '▒',
	districtmap.GroupFar:   '░',
}

var groupColor = map[districtmap.Group]lipgloss.Color{
	districtmap.GroupCore:  lipgloss.Color("#C8C8C8"),
	districtmap.GroupInner: lipgloss.Color("#9A9A9A"),
	districtmap.GroupOuter: lipgloss.Color("#6E6E6E"),
	districtmap.GroupFar:   lipgloss.Color("#555555"),
}

func (a *App) mapResults() []catalog.Specimen {
	d, _ := a.state.District()
	return catalog.DistrictFilter(a.store.All(), d)
}

func (a *App) handleMapKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Outskirts):
		a.selectDistrict(catalog.DistrictOutskirts)
		return nil
	case key.Matches(msg, a.keys.Clear):
		a.clearDistrict()
		return nil
	case key.Matches(msg, a.keys.Focus):
		if a.focus == focusMapGrid && len(a.mapResults()) > 0 {
			a.focus = focusMapList
			a.listIndex = min(a.listIndex, len(a.mapResults())-1)
		} else {
			a.focus = focusMapGrid
		}
		return nil
	}
	if a.focus == focusMapList {
		results := a.mapResults()
		if len(results) == 0 {
			a.focus = focusMapGrid
			return nil
		}
		switch {
		case key.Matches(msg, a.keys.Up):
			a.listIndex = max(0, a.listIndex-1)
		case key.Matches(msg, a.keys.Down):
			a.listIndex = min(len(results)-1, a.listIndex+1)
		case key.Matches(msg, a.keys.Select):
			return a.toggle(results[a.listIndex].ID)
		}
		return nil
	}
	switch {
	case key.Matches(msg, a.keys.Up):
		a.moveCrosshair(0, -1)
	case key.Matches(msg, a.keys.Down):
		a.moveCrosshair(0, 1)
	case key.Matches(msg, a.keys.Left):
		a.moveCrosshair(-1, 0)
	case key.Matches(msg, a.keys.Right):
		a.moveCrosshair(1, 0)
	case key.Matches(msg, a.keys.Select):
		d, ok := districtmap.RegionAt(a.grid.PointAt(a.cursorCol, a.cursorRow))
		if !ok {
			a.statusMsg = "No district under the crosshair."
			return nil
		}
		a.statusMsg = ""
		a.selectDistrict(d)
	}
	return nil
}

func (a *App) moveCrosshair(dc, dr int) {
	a.cursorCol, a.cursorRow = a.grid.Clamp(a.cursorCol+dc, a.cursorRow+dr)
}

// highlighted reports whether a district is part of the current selection;
// the Outskirts aggregate lights up every peripheral district.
func (a *App) highlighted(d catalog.District) bool {
	sel, ok := a.state.District()
	if !ok || d == "" {
		return false
	}
	if sel == catalog.DistrictOutskirts {
		return d.IsOutskirts()
	}
	return sel == d
}

func (a *App) renderMap(width int) string {
	mapBox := panelStyle.Render(a.renderGrid())
	sidebarWidth := max(mapSidebarWidth, width-lipgloss.Width(mapBox)-2)
	sidebar := a.renderMapSidebar(sidebarWidth)
	if width < lipgloss.Width(mapBox)+mapSidebarWidth {
		return lipgloss.JoinVertical(lipgloss.Left, mapBox, sidebar)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, mapBox, "  ", sidebar)
}

// renderGrid draws the rasterized map, batching runs of cells that share a
// style so each row costs a handful of Render calls.
func (a *App) renderGrid() string {
	hover, _ := districtmap.RegionAt(a.grid.PointAt(a.cursorCol, a.cursorRow))
	lines := make([]string, 0, a.grid.Rows+1)
	for row := 0; row < a.grid.Rows; row++ {
		var line strings.Builder
		var run strings.Builder
		var runStyle lipgloss.Style
		runKey := ""
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(runStyle.Render(run.String()))
				run.Reset()
			}
		}
		for col := 0; col < a.grid.Cols; col++ {
			glyph, styleKey, style := a.cellAppearance(col, row, hover)
			if styleKey != runKey {
				flush()
				runKey, runStyle = styleKey, style
			}
			run.WriteRune(glyph)
		}
		flush()
		lines = append(lines, line.String())
	}
	label := "Beijing Municipality · schematic"
	if hover != "" {
		label = fmt.Sprintf("Crosshair over %s", hover)
	}
	lines = append(lines, mutedStyle.Render(label))
	return strings.Join(lines, "\n")
}

func (a *App) cellAppearance(col, row int, hover catalog.District) (rune, string, lipgloss.Style) {
	if col == a.cursorCol && row == a.cursorRow {
		return crosshairGlyph, "cursor", lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	}
	d := a.grid.At(col, row)
	if d == "" {
		return ' ', "blank", lipgloss.NewStyle()
	}
	region, _ := districtmap.Lookup(d)
	glyph := groupFill[region.Group]
	switch {
	case a.highlighted(d):
		return glyph, "selected", lipgloss.NewStyle().Foreground(colorBrand)
	case d == hover && a.focus == focusMapGrid:
		return glyph, "hover", lipgloss.NewStyle().Foreground(colorAccent)
	}
	return glyph, "group-" + string(region.Group), lipgloss.NewStyle().Foreground(groupColor[region.Group])
}

func (a *App) renderMapSidebar(width int) string {
	d, selected := a.state.District()
	caption := districtmap.Describe(d)
	var lines []string
	if selected {
		lines = append(lines, brandStyle.Render("● ACTIVE ZONE"))
	}
	lines = append(lines,
		mutedStyle.Render(caption.Label),
		titleStyle.Render(caption.Headline),
		bodyStyle.Width(width).Render(caption.Blurb),
		"",
	)
	results := a.mapResults()
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Specimens Found: %d", len(results))))
	if len(results) == 0 {
		lines = append(lines, mutedStyle.Render(emptyZoneText))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	capacity := a.listCapacity()
	for _, idx := range visibleWindow(len(results), a.listIndex, capacity) {
		rec := results[idx]
		selectedCard := a.focus == focusMapList && idx == a.listIndex
		lines = append(lines, renderCard(rec, a.player.IsPlaying(rec.ID), selectedCard, width))
	}
	if len(results) > capacity {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("tab then ↑/↓ to browse %d records", len(results))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// listCapacity estimates how many cards fit beside the map.
func (a *App) listCapacity() int {
	if a.height <= 0 {
		return 4
	}
	return max(3, (a.height-22)/7)
}

// visibleWindow returns the indexes of a scrolling window of size n that
// keeps cursor in view.
func visibleWindow(total, cursor, n int) []int {
	if total <= 0 {
		return nil
	}
	n = min(n, total)
	start := min(max(0, cursor-n/2), total-n)
	out := make([]int, 0, n)
	for i := start; i < start+n; i++ {
		out = append(out, i)
	}
	return out
}
