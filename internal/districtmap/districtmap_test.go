package districtmap

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/sound-archive/internal/catalog"
)

func TestRegionAtInteriorPoints(t *testing.T) {
	cases := map[catalog.District]orb.Point{
		catalog.DistrictDongcheng:   {200, 205},
		catalog.DistrictXicheng:     {180, 205},
		catalog.DistrictChaoyang:    {235, 200},
		catalog.DistrictHaidian:     {160, 180},
		catalog.DistrictFengtai:     {200, 250},
		catalog.DistrictShijingshan: {140, 215},
		catalog.DistrictTongzhou:    {290, 230},
		catalog.DistrictShunyi:      {285, 160},
		catalog.DistrictChangping:   {180, 125},
		catalog.DistrictDaxing:      {210, 290},
		catalog.DistrictYanqing:     {125, 80},
		catalog.DistrictHuairou:     {195, 80},
		catalog.DistrictMiyun:       {285, 90},
		catalog.DistrictMentougou:   {115, 215},
		catalog.DistrictFangshan:    {145, 290},
		catalog.DistrictPinggu:      {330, 110},
	}
	for want, p := range cases {
		got, ok := RegionAt(p)
		require.True(t, ok, "no region at %v", p)
		assert.Equal(t, want, got, "point %v", p)
	}
}

func TestRegionAtOutsideMap(t *testing.T) {
	for _, p := range []orb.Point{{10, 10}, {390, 390}, {200, 180}} {
		_, ok := RegionAt(p)
		assert.False(t, ok, "point %v should be empty", p)
	}
}

func TestCoreWinsWhereShapesOverlap(t *testing.T) {
	// The Chaoyang outline wraps around the Dongcheng square.
	got, ok := RegionAt(orb.Point{195, 195})
	require.True(t, ok)
	assert.Equal(t, catalog.DistrictDongcheng, got)
}

func TestEveryMapDistrictIsValid(t *testing.T) {
	regs := Regions()
	assert.Len(t, regs, 16)
	for _, r := range regs {
		assert.True(t, r.District.Valid())
		assert.NotEqual(t, catalog.DistrictOutskirts, r.District)
	}
}

func TestRasterizeCoversEveryRegion(t *testing.T) {
	g := Rasterize(50, 27)
	seen := map[catalog.District]bool{}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if d := g.At(col, row); d != "" {
				seen[d] = true
			}
		}
	}
	for _, r := range Regions() {
		assert.True(t, seen[r.District], "%s not drawn", r.District)
		col, row, ok := g.Anchor(r.District)
		require.True(t, ok)
		assert.Equal(t, r.District, g.At(col, row))
	}
	assert.Equal(t, catalog.District(""), g.At(-1, 0))
	col, row := g.Clamp(100, -5)
	assert.Equal(t, 49, col)
	assert.Equal(t, 0, row)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Select Region", Describe("").Label)
	assert.Equal(t, "Metropolitan Area", Describe("").Headline)
	assert.Equal(t, "Suburban & New Areas", Describe(catalog.DistrictOutskirts).Label)
	assert.Equal(t, "The Imperial Core", Describe(catalog.DistrictDongcheng).Headline)

	pinggu := Describe(catalog.DistrictPinggu)
	assert.Equal(t, "Pinggu", pinggu.Headline)
	assert.NotEmpty(t, pinggu.Blurb)
}

func TestFeatureCollectionCoversEveryRegion(t *testing.T) {
	fc := FeatureCollection()
	require.Len(t, fc.Features, len(Regions()))

	first := fc.Features[0]
	assert.Equal(t, "Dongcheng", first.Properties["district"])
	assert.Equal(t, "core", first.Properties["group"])
	assert.Equal(t, false, first.Properties["outskirts"])

	raw, err := fc.MarshalJSON()
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(t, err)
	require.Len(t, back.Features, len(fc.Features))
	for i, f := range back.Features {
		assert.Equal(t, fc.Features[i].Geometry.Bound(), f.Geometry.Bound())
	}
}
