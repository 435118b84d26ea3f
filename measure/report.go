package measure

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/geo"

	hilbert "github.com/alamminsalo/hilbert-geometry"
)

// FixedPointSize is the size of one point stored as two float64 values.
const FixedPointSize = 16

// Report holds the measurements for a single geometry.
type Report struct {
	Type        string  // GeoJSON type of the input
	Points      int     // Number of points in the input, closing points included
	EncodedSize int     // Size of the encoded frame in bytes
	WKBSize     int     // Size of the little-endian WKB encoding in bytes
	FixedSize   int     // Points * FixedPointSize
	MaxLonError float64 // Largest longitude error after a round trip, in degrees
	MaxLatError float64 // Largest latitude error after a round trip, in degrees
	MaxErrorM   float64 // Largest great-circle distance between input and output points, in meters
}

// BytesPerPoint returns EncodedSize / Points, or 0 for empty geometries.
func (r Report) BytesPerPoint() float64 {
	if r.Points == 0 {
		return 0
	}

	return float64(r.EncodedSize) / float64(r.Points)
}

// RatioToWKB returns EncodedSize / WKBSize.
func (r Report) RatioToWKB() float64 {
	if r.WKBSize == 0 {
		return 0
	}

	return float64(r.EncodedSize) / float64(r.WKBSize)
}

// RatioToFixed returns EncodedSize / FixedSize, or 0 for empty geometries.
func (r Report) RatioToFixed() float64 {
	if r.FixedSize == 0 {
		return 0
	}

	return float64(r.EncodedSize) / float64(r.FixedSize)
}

// SavingsPercent returns the space saved against the fixed-width baseline, in percent.
func (r Report) SavingsPercent() float64 {
	if r.FixedSize == 0 {
		return 0
	}

	return (1 - r.RatioToFixed()) * 100
}

// Compare encodes g with s, decodes the result, and measures sizes and round-trip error.
//
// Parameters:
//   - s: Serializer to measure; nil means hilbert.DefaultSerializer()
//   - g: Geometry to encode
//
// Returns:
//   - Report: Sizes and errors for g
//   - error: Encoding, WKB or decoding error
func Compare(s *hilbert.Serializer, g orb.Geometry) (Report, error) {
	if s == nil {
		s = hilbert.DefaultSerializer()
	}

	data, err := s.Encode(g)
	if err != nil {
		return Report{}, err
	}

	decoded, err := s.Decode(data)
	if err != nil {
		return Report{}, fmt.Errorf("decode own output: %w", err)
	}

	wkbData, err := wkb.Marshal(g)
	if err != nil {
		return Report{}, fmt.Errorf("wkb: %w", err)
	}

	in, out := Flatten(g), Flatten(decoded)
	if len(in) != len(out) {
		return Report{}, fmt.Errorf("round trip changed point count: %d -> %d", len(in), len(out))
	}

	r := Report{
		Type:        g.GeoJSONType(),
		Points:      len(in),
		EncodedSize: len(data),
		WKBSize:     len(wkbData),
		FixedSize:   len(in) * FixedPointSize,
	}

	for i := range in {
		r.MaxLonError = max(r.MaxLonError, abs(in[i].Lon()-out[i].Lon()))
		r.MaxLatError = max(r.MaxLatError, abs(in[i].Lat()-out[i].Lat()))
		r.MaxErrorM = max(r.MaxErrorM, geo.Distance(in[i], out[i]))
	}

	return r, nil
}

// Flatten returns the points of g in encoding order. orb.Ring and orb.Bound are
// treated as polygons.
func Flatten(g orb.Geometry) []orb.Point {
	var out []orb.Point

	var walk func(orb.Geometry)
	walk = func(g orb.Geometry) {
		switch v := g.(type) {
		case orb.Point:
			out = append(out, v)
		case orb.LineString:
			out = append(out, v...)
		case orb.MultiPoint:
			out = append(out, v...)
		case orb.Ring:
			out = append(out, v...)
		case orb.Bound:
			out = append(out, v.ToRing()...)
		case orb.Polygon:
			for _, r := range v {
				out = append(out, r...)
			}
		case orb.MultiLineString:
			for _, ls := range v {
				out = append(out, ls...)
			}
		case orb.MultiPolygon:
			for _, p := range v {
				walk(p)
			}
		case orb.Collection:
			for _, c := range v {
				walk(c)
			}
		}
	}
	walk(g)

	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
