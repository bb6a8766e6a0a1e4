// Package districtmap holds the schematic city map: one polygon per district
// in a 400x400 drawing space (y grows downward), plus the copy shown when a
// district is selected.
package districtmap

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/kingrea/sound-archive/internal/catalog"
)

// Group is the ring a district belongs to, from the imperial core outward.
type Group string

const (
	GroupCore  Group = "core"
	GroupInner Group = "inner"
	GroupOuter Group = "outer"
	GroupFar   Group = "far"
)

// Region is one selectable district on the map.
type Region struct {
	District catalog.District
	Group    Group
	Shape    orb.Polygon
	Headline string
	Blurb    string
}

// ring builds a closed ring from flat x,y pairs.
func ring(coords ...float64) orb.Ring {
	r := make(orb.Ring, 0, len(coords)/2+1)
	for i := 0; i+1 < len(coords); i += 2 {
		r = append(r, orb.Point{coords[i], coords[i+1]})
	}
	if len(r) > 0 && !r[0].Equal(r[len(r)-1]) {
		r = append(r, r[0])
	}
	return r
}

// regions are listed core-first; hit testing returns the first match so
// the small central districts win where the schematic shapes overlap.
var regions = []Region{
	{
		District: catalog.DistrictDongcheng, Group: GroupCore,
		Shape:    orb.Polygon{ring(190, 190, 210, 190, 210, 220, 190, 220)},
		Headline: "The Imperial Core",
		Blurb:    "Home to the Forbidden City and Tiananmen. The soundscape is defined by ceremonial silence and political grandeur.",
	},
	{
		District: catalog.DistrictXicheng, Group: GroupCore,
		Shape:    orb.Polygon{ring(170, 190, 190, 190, 190, 220, 170, 220)},
		Headline: "Finance & Heritage",
		Blurb:    "A mix of financial power (Financial Street) and traditional hutong culture. Pigeon whistles meet bank vault doors.",
	},
	{
		District: catalog.DistrictChaoyang, Group: GroupInner,
		Shape:    orb.Polygon{ring(210, 170, 260, 170, 260, 240, 210, 240, 210, 220, 190, 220, 190, 190, 210, 190)},
		Headline: "Commerce & International",
		Blurb:    "A sprawling district of commerce, embassies, and the vibrant Sanlitun nightlife. High density of traffic and commercial noise.",
	},
	{
		District: catalog.DistrictHaidian, Group: GroupInner,
		Shape:    orb.Polygon{ring(150, 150, 210, 150, 210, 170, 190, 170, 190, 190, 170, 190, 170, 220, 150, 220)},
		Headline: "Academia & Tech",
		Blurb:    "The intellectual center, home to universities (Tsinghua, Peking) and the Summer Palace. Characterized by campus bells and park winds.",
	},
	{
		District: catalog.DistrictFengtai, Group: GroupInner,
		Shape:    orb.Polygon{ring(150, 220, 210, 220, 210, 240, 260, 240, 260, 260, 150, 260)},
		Headline: "Transport Hubs",
		Blurb:    "Defined by major railway hubs and residential communities. The metallic screech of trains is a key marker.",
	},
	{
		District: catalog.DistrictShijingshan, Group: GroupInner,
		Shape:    orb.Polygon{ring(130, 190, 150, 190, 150, 240, 130, 240)},
		Headline: "Industrial Legacy",
		Blurb:    "The western gateway, historically industrial, now transforming into green spaces.",
	},
	{
		District: catalog.DistrictTongzhou, Group: GroupOuter,
		Shape:    orb.Polygon{ring(260, 190, 320, 190, 320, 270, 260, 270, 260, 240)},
		Headline: "Canal & Sub-Center",
		Blurb:    "The historical end of the Grand Canal, now a bustling sub-center with a mix of water sounds and new construction.",
	},
	{
		District: catalog.DistrictShunyi, Group: GroupOuter,
		Shape:    orb.Polygon{ring(260, 130, 310, 130, 310, 190, 260, 190, 260, 170, 210, 170, 210, 150, 260, 150)},
	},
	{
		District: catalog.DistrictChangping, Group: GroupOuter,
		Shape:    orb.Polygon{ring(150, 100, 210, 100, 210, 150, 150, 150)},
	},
	{
		District: catalog.DistrictDaxing, Group: GroupOuter,
		Shape:    orb.Polygon{ring(180, 260, 240, 260, 240, 320, 180, 320)},
		Headline: "New Airport Gateway",
		Blurb:    "Dominated by the vast acoustics of the new international airport and southern agricultural zones.",
	},
	{
		District: catalog.DistrictYanqing, Group: GroupFar,
		Shape:    orb.Polygon{ring(100, 60, 150, 60, 150, 120, 120, 120, 100, 100)},
		Headline: "Mountain Ecological Barrier",
		Blurb:    "Known for the Badaling Great Wall and strong mountain winds. A pristine ecological soundscape.",
	},
	{
		District: catalog.DistrictHuairou, Group: GroupFar,
		Shape:    orb.Polygon{ring(150, 60, 240, 60, 240, 100, 210, 100, 210, 130, 150, 130)},
	},
	{
		District: catalog.DistrictMiyun, Group: GroupFar,
		Shape:    orb.Polygon{ring(240, 50, 310, 50, 310, 130, 260, 130, 260, 100, 240, 100)},
	},
	{
		District: catalog.DistrictMentougou, Group: GroupFar,
		Shape:    orb.Polygon{ring(100, 190, 130, 190, 130, 240, 150, 240, 150, 260, 120, 260, 100, 220)},
	},
	{
		District: catalog.DistrictFangshan, Group: GroupFar,
		Shape:    orb.Polygon{ring(120, 260, 150, 260, 150, 300, 180, 300, 180, 320, 140, 320)},
	},
	{
		District: catalog.DistrictPinggu, Group: GroupFar,
		Shape:    orb.Polygon{ring(310, 80, 350, 80, 350, 140, 310, 140)},
	},
}

// Regions returns every map region in hit-test order.
func Regions() []Region {
	return append([]Region(nil), regions...)
}

// Lookup returns the region drawn for d.
func Lookup(d catalog.District) (Region, bool) {
	for _, r := range regions {
		if r.District == d {
			return r, true
		}
	}
	return Region{}, false
}

// RegionAt returns the district whose shape contains p.
func RegionAt(p orb.Point) (catalog.District, bool) {
	for _, r := range regions {
		if !r.Shape.Bound().Contains(p) {
			continue
		}
		if planar.PolygonContains(r.Shape, p) {
			return r.District, true
		}
	}
	return "", false
}

// Bounds returns the extent covered by all regions.
func Bounds() orb.Bound {
	b := regions[0].Shape.Bound()
	for _, r := range regions[1:] {
		b = b.Union(r.Shape.Bound())
	}
	return b
}

// Caption is the text shown beside the map for the current selection.
type Caption struct {
	Label    string
	Headline string
	Blurb    string
}

// Describe returns the sidebar caption for a selection; the empty district
// means nothing is selected.
func Describe(d catalog.District) Caption {
	switch d {
	case "":
		return Caption{
			Label:    "Select Region",
			Headline: "Metropolitan Area",
			Blurb:    "Navigate the map to reveal district-specific archives. Select any zone to filter the list.",
		}
	case catalog.DistrictOutskirts:
		return Caption{
			Label:    "Suburban & New Areas",
			Headline: "The Outskirts",
			Blurb:    "Every outer and far district at once: canal towns, the airport gateway and the mountain passes.",
		}
	}
	caption := Caption{Label: string(d), Headline: string(d)}
	if r, ok := Lookup(d); ok {
		if r.Headline != "" {
			caption.Headline = r.Headline
		}
		caption.Blurb = r.Blurb
	}
	if caption.Blurb == "" {
		caption.Blurb = "No field notes have been written for this district yet."
	}
	return caption
}
