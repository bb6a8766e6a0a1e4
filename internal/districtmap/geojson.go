package districtmap

import (
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection exports the schematic regions as GeoJSON, in hit-test
// order, with the district, group and caption text as properties.
func FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range regions {
		f := geojson.NewFeature(r.Shape)
		f.ID = string(r.District)
		f.Properties["district"] = string(r.District)
		f.Properties["group"] = string(r.Group)
		f.Properties["outskirts"] = r.District.IsOutskirts()
		caption := Describe(r.District)
		f.Properties["headline"] = caption.Headline
		f.Properties["blurb"] = caption.Blurb
		fc.Append(f)
	}
	return fc
}
