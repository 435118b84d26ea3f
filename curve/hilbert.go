// Package curve implements the 2D Hilbert curve transform used to linearize grid points.
//
// Encode maps a cell (x, y) of a 2^order × 2^order grid to its distance d along the
// curve and Decode maps d back. Both are bijections over the grid. Consecutive
// distances are always edge-adjacent cells, so points that are close on the map
// tend to get close indices; the delta codec relies on that.
//
// Both directions run as a loop over the bit levels with the quadrant rotation
// carried in local variables, with no recursion and no allocation.
package curve

// MaxOrder is the largest supported order; the index of a 2^32 × 2^32 grid fills a uint64.
const MaxOrder = 32

// Encode returns the Hilbert distance of cell (x, y) on a grid of the given order.
//
// order must be in [1, MaxOrder] and x, y must be below 2^order.
func Encode(order uint8, x, y uint32) uint64 {
	var d uint64
	for s := uint32(1) << (order - 1); s > 0; s >>= 1 {
		var rx, ry uint32
		if x&s != 0 {
			rx = 1
		}
		if y&s != 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		x, y = rotate(s, x, y, rx, ry)
	}

	return d
}

// Decode returns the cell at Hilbert distance d on a grid of the given order.
//
// order must be in [1, MaxOrder] and d must be below 4^order.
func Decode(order uint8, d uint64) (x, y uint32) {
	n := uint64(1) << order
	t := d
	for s := uint64(1); s < n; s <<= 1 {
		rx := 1 & (t >> 1)
		ry := 1 & (t ^ rx)
		x, y = rotate(uint32(s), x, y, uint32(rx), uint32(ry)) //nolint:gosec
		x += uint32(s * rx)                                    //nolint:gosec
		y += uint32(s * ry)                                    //nolint:gosec
		t >>= 2
	}

	return x, y
}

// rotate reflects and transposes the quadrant of side n so the sub-curve is oriented
// like the parent. Only the bits below n are meaningful in the result.
func rotate(n, x, y, rx, ry uint32) (uint32, uint32) {
	if ry != 0 {
		return x, y
	}
	if rx == 1 {
		x = n - 1 - x
		y = n - 1 - y
	}

	return y, x
}
