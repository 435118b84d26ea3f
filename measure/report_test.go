package measure

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	hilbert "github.com/alamminsalo/hilbert-geometry"
	"github.com/alamminsalo/hilbert-geometry/errs"
	"github.com/alamminsalo/hilbert-geometry/format"
)

func unitSquare() orb.Polygon {
	return orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
}

func route(n int) orb.LineString {
	ls := make(orb.LineString, n)
	for i := range ls {
		ls[i] = orb.Point{-122.42 + float64(i)*0.0001, 37.77 + float64(i%5)*0.00003}
	}

	return ls
}

func TestCompare_UnitSquare(t *testing.T) {
	r, err := Compare(nil, unitSquare())
	require.NoError(t, err)

	require.Equal(t, "Polygon", r.Type)
	require.Equal(t, 5, r.Points)
	require.Equal(t, 80, r.FixedSize)
	// WKB polygon: byte order, type, ring count, point count, 5 * 16 bytes
	require.Equal(t, 1+4+4+4+80, r.WKBSize)
	require.Less(t, r.EncodedSize, r.FixedSize)
	require.Less(t, r.EncodedSize, r.WKBSize)
	require.Less(t, r.MaxErrorM, 0.1)
	require.Greater(t, r.SavingsPercent(), 0.0)
}

func TestCompare_ErrorWithinBound(t *testing.T) {
	s, err := hilbert.NewSerializer(hilbert.WithPrecision(20))
	require.NoError(t, err)

	r, err := Compare(s, route(200))
	require.NoError(t, err)

	lonErr, latErr := s.Quantizer().MaxError()
	require.LessOrEqual(t, r.MaxLonError, lonErr+1e-12)
	require.LessOrEqual(t, r.MaxLatError, latErr+1e-12)
	require.Greater(t, r.MaxErrorM, 0.0)
}

func TestCompare_Compactness(t *testing.T) {
	for _, compression := range []format.CompressionType{format.CompressionNone, format.CompressionZstd} {
		s, err := hilbert.NewSerializer(hilbert.WithCompression(compression))
		require.NoError(t, err)

		r, err := Compare(s, route(500))
		require.NoError(t, err)
		require.Less(t, r.RatioToFixed(), 0.5, "%s", compression)
		require.Less(t, r.RatioToWKB(), 0.5, "%s", compression)
		require.Less(t, r.BytesPerPoint(), 8.0, "%s", compression)
	}
}

func TestCompare_EncodeError(t *testing.T) {
	_, err := Compare(nil, orb.Point{0, 95})
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestCompare_Empty(t *testing.T) {
	r, err := Compare(nil, orb.Collection{})
	require.NoError(t, err)
	require.Zero(t, r.Points)
	require.Zero(t, r.BytesPerPoint())
	require.Zero(t, r.RatioToFixed())
	require.Zero(t, r.SavingsPercent())
}

func TestFlatten(t *testing.T) {
	g := orb.Collection{
		orb.Point{1, 1},
		orb.MultiPolygon{unitSquare()},
		orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}},
	}

	require.Len(t, Flatten(g), 1+5+5)
	require.Empty(t, Flatten(nil))
}

func TestSummarize(t *testing.T) {
	var reports []Report
	for _, g := range []orb.Geometry{unitSquare(), route(10), orb.Collection{}} {
		r, err := Compare(nil, g)
		require.NoError(t, err)
		reports = append(reports, r)
	}

	s := Summarize(reports)
	require.Equal(t, 3, s.Geometries)
	require.Equal(t, 15, s.Points)
	require.Equal(t, 15*FixedPointSize, s.FixedSize)
	require.Equal(t, reports[0].EncodedSize+reports[1].EncodedSize+reports[2].EncodedSize, s.EncodedSize)
	require.Less(t, s.RatioToFixed(), 1.0)
	require.Greater(t, s.RatioToWKB(), 0.0)
	require.Greater(t, s.BytesPerPoint.Max, 0.0)
}

func TestDescribe(t *testing.T) {
	require.Equal(t, Statistics{}, Describe(nil))

	st := Describe([]float64{4, 1, 3, 2})
	require.Equal(t, 1.0, st.Min)
	require.Equal(t, 4.0, st.Max)
	require.Equal(t, 2.5, st.Mean)
	require.Equal(t, 2.5, st.Median)
	require.InDelta(t, 1.118, st.StdDev, 0.001)

	st = Describe([]float64{5, 1, 3})
	require.Equal(t, 3.0, st.Median)
}
