// Package encoding implements the integer coding layer of the geometry format.
//
// Hilbert curve indices (uint64) of one ring or part are written as a delta stream:
//
//   - the first index as an unsigned little-endian base-128 varint
//   - each following index as ZigZag(current - previous), also as a varint
//
// Because the curve keeps nearby points at nearby indices, the differences are
// small and the stream is much shorter than fixed-width coordinates.
//
// # Building Blocks
//
// The pure functions AppendUvarint, Uvarint, ZigZag and UnZigZag can be used and tested
// on their own. Uvarint reports errs.ErrCorruptData for unterminated or oversized input
// instead of the (0, 0) / (0, -n) convention of encoding/binary.
//
// # Streams
//
//	encoder := encoding.NewDeltaEncoder()
//	defer encoder.Finish()
//
//	encoder.WriteSlice(outerRing)
//	encoder.Reset() // next index is absolute again
//	encoder.WriteSlice(hole)
//
//	decoder := encoding.NewDeltaDecoder()
//	outer := make([]uint64, len(outerRing))
//	n, err := decoder.DecodeInto(outer, encoder.Bytes())
//	holeOut := make([]uint64, len(hole))
//	_, err = decoder.DecodeInto(holeOut, encoder.Bytes()[n:])
//
// DeltaEncoder implements the generic ColumnarEncoder[uint64] interface.
package encoding
