package quantize

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/alamminsalo/hilbert-geometry/errs"
)

func TestNew_Bits(t *testing.T) {
	for _, bits := range []uint8{MinBits, 16, DefaultBits, MaxBits} {
		q, err := New(bits)
		require.NoError(t, err)
		require.Equal(t, bits, q.Bits())
	}

	for _, bits := range []uint8{0, 33, 64} {
		_, err := New(bits)
		require.ErrorIs(t, err, errs.ErrInvalidPrecision)
	}
}

func TestQuantize_Bounds(t *testing.T) {
	q := Default()
	top := uint32(1)<<DefaultBits - 1

	g, err := q.Quantize(orb.Point{-180, -90})
	require.NoError(t, err)
	require.Equal(t, GridPoint{X: 0, Y: 0}, g)

	g, err = q.Quantize(orb.Point{180, 90})
	require.NoError(t, err)
	require.Equal(t, GridPoint{X: top, Y: top}, g)

	require.Equal(t, orb.Point{-180, -90}, q.Dequantize(GridPoint{}))
	require.Equal(t, orb.Point{180, 90}, q.Dequantize(GridPoint{X: top, Y: top}))
}

func TestQuantize_MaxBitsBounds(t *testing.T) {
	q, err := New(MaxBits)
	require.NoError(t, err)

	g, err := q.Quantize(orb.Point{180, 90})
	require.NoError(t, err)
	require.Equal(t, GridPoint{X: math.MaxUint32, Y: math.MaxUint32}, g)
}

func TestQuantize_OutOfRange(t *testing.T) {
	q := Default()

	cases := map[string]orb.Point{
		"lon too small": {-180.0000001, 0},
		"lon too large": {180.5, 0},
		"lat too small": {0, -91},
		"lat too large": {0, 90.0001},
		"nan lon":       {math.NaN(), 0},
		"nan lat":       {0, math.NaN()},
		"inf lon":       {math.Inf(1), 0},
		"neg inf lat":   {0, math.Inf(-1)},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := q.Quantize(p)
			require.ErrorIs(t, err, errs.ErrOutOfRange)
		})
	}
}

func TestQuantize_RoundTripWithinHalfCell(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, bits := range []uint8{8, 20, DefaultBits, MaxBits} {
		q, err := New(bits)
		require.NoError(t, err)
		maxLon, maxLat := q.MaxError()

		for range 10_000 {
			p := orb.Point{rng.Float64()*360 - 180, rng.Float64()*180 - 90}
			g, err := q.Quantize(p)
			require.NoError(t, err)

			back := q.Dequantize(g)
			require.LessOrEqual(t, math.Abs(back.Lon()-p.Lon()), maxLon+1e-12, "bits=%d p=%v", bits, p)
			require.LessOrEqual(t, math.Abs(back.Lat()-p.Lat()), maxLat+1e-12, "bits=%d p=%v", bits, p)
		}
	}
}

func TestQuantize_Deterministic(t *testing.T) {
	q := Default()
	p := orb.Point{24.9384, 60.1699}

	a, err := q.Quantize(p)
	require.NoError(t, err)
	b, err := q.Quantize(p)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, q.Dequantize(a), q.Dequantize(b))
}

func TestCellSizeMeters_DefaultIsSubDecimeter(t *testing.T) {
	lon, lat := Default().CellSizeMeters()

	require.Less(t, lon, 0.1)
	require.Less(t, lat, 0.1)
	require.Greater(t, lon, lat)
}

func BenchmarkQuantize(b *testing.B) {
	q := Default()
	p := orb.Point{24.9384, 60.1699}
	for b.Loop() {
		g, _ := q.Quantize(p)
		_ = q.Dequantize(g)
	}
}
