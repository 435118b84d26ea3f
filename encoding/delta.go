package encoding

import (
	"fmt"

	"github.com/alamminsalo/hilbert-geometry/errs"
	"github.com/alamminsalo/hilbert-geometry/internal/pool"
)

// DeltaEncoder implements ColumnarEncoder[uint64] for Hilbert curve indices.
//
// Each sequence is written as:
//   - First index: plain varint (up to 9 bytes for a 58-bit index)
//   - Following indices: zig-zag encoded difference from the previous index, as varint
//
// Points that are close on the map are usually close on the curve, so the
// differences are small and most indices after the first take 1-4 bytes.
//
// Differences are computed modulo 2^64, which keeps the round trip exact for any
// index width up to 64 bits.
//
// Several sequences (rings, parts) can share one encoder: call Reset between them and
// the next index is written as an absolute value again.
type DeltaEncoder struct {
	prev     uint64
	buf      *pool.ByteBuffer
	count    int
	seqCount int
}

var _ ColumnarEncoder[uint64] = (*DeltaEncoder)(nil)

// NewDeltaEncoder creates a delta encoder backed by a pooled buffer.
// Call Finish when done to return the buffer.
func NewDeltaEncoder() *DeltaEncoder {
	return &DeltaEncoder{
		buf: pool.GetStreamBuffer(),
	}
}

// Write encodes a single index.
//
// Panics if Finish() has been called (nil buffer).
func (e *DeltaEncoder) Write(index uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.seqCount++

	if e.seqCount == 1 {
		e.buf.B = AppendUvarint(e.buf.B, index)
		e.prev = index

		return
	}

	e.buf.B = AppendUvarint(e.buf.B, ZigZag(int64(index-e.prev))) //nolint:gosec
	e.prev = index
}

// WriteSlice encodes a slice of indices as a continuation of the current sequence.
//
// Panics if Finish() has been called (nil buffer).
func (e *DeltaEncoder) WriteSlice(indices []uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(indices) == 0 {
		return
	}

	// first index plus ~3 bytes per delta for typical vertex spacing
	e.buf.Grow(UvarintLen(indices[0]) + 3*(len(indices)-1))

	start := 0
	if e.seqCount == 0 {
		e.buf.B = AppendUvarint(e.buf.B, indices[0])
		e.prev = indices[0]
		start = 1
	}

	prev := e.prev
	for _, index := range indices[start:] {
		e.buf.B = AppendUvarint(e.buf.B, ZigZag(int64(index-prev))) //nolint:gosec
		prev = index
	}

	e.prev = prev
	e.count += len(indices)
	e.seqCount += len(indices)
}

// Bytes returns the encoded bytes of every sequence written so far.
func (e *DeltaEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded indices across all sequences.
func (e *DeltaEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
func (e *DeltaEncoder) Size() int {
	return e.buf.Len()
}

// Reset ends the current sequence. The next index is written as an absolute value.
// Accumulated bytes, Len and Size are kept.
func (e *DeltaEncoder) Reset() {
	e.prev = 0
	e.seqCount = 0
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *DeltaEncoder) Finish() {
	pool.PutStreamBuffer(e.buf)
	e.buf = nil
	e.prev = 0
	e.count = 0
	e.seqCount = 0
}

// DeltaDecoder decodes index sequences written by DeltaEncoder.
//
// The decoder is stateless and safe for concurrent use.
type DeltaDecoder struct{}

// NewDeltaDecoder creates a new delta decoder.
func NewDeltaDecoder() DeltaDecoder {
	return DeltaDecoder{}
}

// DecodeInto decodes len(dst) indices of one sequence from the start of data into dst
// and returns the number of bytes consumed.
//
// Returns errs.ErrCorruptData if data holds fewer than len(dst) complete varints.
func (d DeltaDecoder) DecodeInto(dst []uint64, data []byte) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// every index takes at least one byte
	if len(dst) > len(data) {
		return 0, fmt.Errorf("%w: %w: %d indices in %d bytes",
			errs.ErrCorruptData, errs.ErrDeclaredCountTooLong, len(dst), len(data))
	}

	offset := 0
	var cur uint64
	for i := range dst {
		v, n, err := Uvarint(data[offset:])
		if err != nil {
			return 0, fmt.Errorf("index %d of %d: %w", i, len(dst), err)
		}
		offset += n

		if i == 0 {
			cur = v
		} else {
			cur += uint64(UnZigZag(v)) //nolint:gosec
		}
		dst[i] = cur
	}

	return offset, nil
}
