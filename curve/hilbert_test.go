package curve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_OrderOne(t *testing.T) {
	// The first-order curve visits (0,0) (0,1) (1,1) (1,0).
	cells := [][2]uint32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	for d, c := range cells {
		require.Equal(t, uint64(d), Encode(1, c[0], c[1]))

		x, y := Decode(1, uint64(d))
		require.Equal(t, c, [2]uint32{x, y})
	}
}

func TestEncodeDecode_ExhaustiveBijection(t *testing.T) {
	for order := uint8(1); order <= 6; order++ {
		side := uint32(1) << order
		seen := make(map[uint64]struct{}, side*side)

		for x := range side {
			for y := range side {
				d := Encode(order, x, y)
				require.Less(t, d, uint64(side)*uint64(side), "order=%d (%d,%d)", order, x, y)

				_, dup := seen[d]
				require.False(t, dup, "order=%d duplicate index %d", order, d)
				seen[d] = struct{}{}

				gx, gy := Decode(order, d)
				require.Equal(t, x, gx)
				require.Equal(t, y, gy)
			}
		}
		require.Len(t, seen, int(side*side))
	}
}

func TestDecode_ConsecutiveIndicesAreAdjacent(t *testing.T) {
	const order = 7
	total := uint64(1) << (2 * order)

	px, py := Decode(order, 0)
	for d := uint64(1); d < total; d++ {
		x, y := Decode(order, d)
		dist := absDiff(x, px) + absDiff(y, py)
		require.Equal(t, uint32(1), dist, "step %d -> %d", d-1, d)
		px, py = x, y
	}
}

func TestEncodeDecode_RandomHighOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, order := range []uint8{16, 29, 31, MaxOrder} {
		mask := uint32(uint64(1)<<order - 1)
		for range 20_000 {
			x := rng.Uint32() & mask
			y := rng.Uint32() & mask

			gx, gy := Decode(order, Encode(order, x, y))
			require.Equal(t, x, gx, "order=%d", order)
			require.Equal(t, y, gy, "order=%d", order)
		}
	}
}

func TestEncode_MaxOrderCorners(t *testing.T) {
	const top = ^uint32(0)

	require.Equal(t, uint64(0), Encode(MaxOrder, 0, 0))
	require.Equal(t, ^uint64(0), Encode(MaxOrder, top, 0))

	x, y := Decode(MaxOrder, ^uint64(0))
	require.Equal(t, top, x)
	require.Equal(t, uint32(0), y)
}

func TestEncode_Locality(t *testing.T) {
	// Neighbouring cells should usually be near each other on the curve.
	const order = 29
	rng := rand.New(rand.NewSource(99))

	near := 0
	const trials = 5000
	for range trials {
		x := rng.Uint32() >> 4
		y := rng.Uint32() >> 4
		a := Encode(order, x, y)
		b := Encode(order, x+1, y)

		diff := a - b
		if b > a {
			diff = b - a
		}
		if diff < 1<<20 {
			near++
		}
	}
	require.Greater(t, near, trials*9/10)
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}

	return b - a
}

func BenchmarkEncode(b *testing.B) {
	for b.Loop() {
		_ = Encode(29, 0x12345678>>3, 0x0abcdef0>>3)
	}
}

func BenchmarkDecode(b *testing.B) {
	for b.Loop() {
		_, _ = Decode(29, 0x0123456789abcdef>>6)
	}
}
