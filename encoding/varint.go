package encoding

import (
	"fmt"

	"github.com/alamminsalo/hilbert-geometry/errs"
)

// MaxVarintLen64 is the maximum length of a varint-encoded uint64.
const MaxVarintLen64 = 10

// AppendUvarint appends v to dst as a little-endian base-128 varint: seven payload
// bits per byte, high bit set on every byte except the last.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// UvarintLen returns the number of bytes AppendUvarint writes for v.
func UvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// Uvarint decodes a varint from the start of data and returns the value and the
// number of bytes read.
//
// Returns errs.ErrCorruptData if data ends before the last byte of the varint or if the
// value does not fit in 64 bits.
func Uvarint(data []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i, b := range data {
		if i == MaxVarintLen64 {
			return 0, 0, fmt.Errorf("%w: %w", errs.ErrCorruptData, errs.ErrVarintOverflow)
		}
		if b < 0x80 {
			if i == MaxVarintLen64-1 && b > 1 {
				return 0, 0, fmt.Errorf("%w: %w", errs.ErrCorruptData, errs.ErrVarintOverflow)
			}

			return v | uint64(b)<<shift, i + 1, nil
		}
		v |= uint64(b&0x7f) << shift
		shift += 7
	}

	return 0, 0, fmt.Errorf("%w: %w", errs.ErrCorruptData, errs.ErrUnterminatedVarint)
}

// ZigZag maps a signed value to an unsigned one so that small magnitudes stay small:
// 0→0, -1→1, 1→2, -2→3, ...
func ZigZag(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63)) //nolint:gosec
}

// UnZigZag reverses ZigZag.
func UnZigZag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}
