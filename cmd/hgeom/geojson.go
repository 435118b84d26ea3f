package main

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// readFeatures parses a GeoJSON FeatureCollection, Feature or bare geometry.
func readFeatures(data []byte) ([]*geojson.Feature, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("geojson feature collection: %w", err)
		}

		return fc.Features, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("geojson feature: %w", err)
		}

		return []*geojson.Feature{f}, nil
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("geojson geometry: %w", err)
		}

		return []*geojson.Feature{geojson.NewFeature(g.Geometry())}, nil
	}
}

// writeFeatures renders geometries as a FeatureCollection. Each feature carries
// its record index in the "index" property.
func writeFeatures(geoms []orb.Geometry) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for i, g := range geoms {
		f := geojson.NewFeature(g)
		f.Properties["index"] = i
		fc.Append(f)
	}

	return fc.MarshalJSON()
}
