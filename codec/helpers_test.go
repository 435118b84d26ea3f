package codec

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/alamminsalo/hilbert-geometry/quantize"
)

// requireNear checks that got has the shape of want and every coordinate lies
// within the quantizer's error bound.
func requireNear(t *testing.T, q quantize.Quantizer, want, got orb.Geometry) {
	t.Helper()

	lonErr, latErr := q.MaxError()
	near := func(a, b orb.Point) {
		t.Helper()
		require.InDelta(t, a.Lon(), b.Lon(), lonErr+1e-12, "lon of %v vs %v", a, b)
		require.InDelta(t, a.Lat(), b.Lat(), latErr+1e-12, "lat of %v vs %v", a, b)
	}
	nearAll := func(a, b []orb.Point) {
		t.Helper()
		require.Len(t, b, len(a))
		for i := range a {
			near(a[i], b[i])
		}
	}

	switch w := want.(type) {
	case orb.Point:
		g, ok := got.(orb.Point)
		require.True(t, ok, "got %T", got)
		near(w, g)
	case orb.LineString:
		g, ok := got.(orb.LineString)
		require.True(t, ok, "got %T", got)
		nearAll(w, g)
	case orb.MultiPoint:
		g, ok := got.(orb.MultiPoint)
		require.True(t, ok, "got %T", got)
		nearAll(w, g)
	case orb.Ring:
		requireNear(t, q, orb.Polygon{w}, got)
	case orb.Bound:
		requireNear(t, q, w.ToPolygon(), got)
	case orb.Polygon:
		g, ok := got.(orb.Polygon)
		require.True(t, ok, "got %T", got)
		require.Len(t, g, len(w))
		for i := range w {
			nearAll(w[i], g[i])
		}
	case orb.MultiLineString:
		g, ok := got.(orb.MultiLineString)
		require.True(t, ok, "got %T", got)
		require.Len(t, g, len(w))
		for i := range w {
			nearAll(w[i], g[i])
		}
	case orb.MultiPolygon:
		g, ok := got.(orb.MultiPolygon)
		require.True(t, ok, "got %T", got)
		require.Len(t, g, len(w))
		for i := range w {
			requireNear(t, q, w[i], g[i])
		}
	case orb.Collection:
		g, ok := got.(orb.Collection)
		require.True(t, ok, "got %T", got)
		require.Len(t, g, len(w))
		for i := range w {
			requireNear(t, q, w[i], g[i])
		}
	default:
		t.Fatalf("unexpected geometry %T", want)
	}
}

func unitSquare() orb.Polygon {
	return orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
}

// track returns a line of n points walking north-east in ~1 m steps.
func track(n int, lon, lat float64) orb.LineString {
	ls := make(orb.LineString, n)
	for i := range ls {
		ls[i] = orb.Point{lon + float64(i)*0.00001, lat + float64(i%7)*0.000008}
	}

	return ls
}

func nestedCollection(levels int) orb.Geometry {
	var g orb.Geometry = orb.Point{24.94, 60.17}
	for range levels {
		g = orb.Collection{g}
	}

	return g
}

func mustRoundTrip(t *testing.T, q quantize.Quantizer, g orb.Geometry) ([]byte, orb.Geometry) {
	t.Helper()

	data, err := NewEncoder(q).Encode(g)
	require.NoError(t, err)

	decoded, err := NewDecoder(q).Decode(data)
	require.NoError(t, err)

	return data, decoded
}
