package encoding

// ColumnarEncoder encodes a sequence of values into an internal byte buffer.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values since the encoder was created.
	Len() int

	// Size returns the number of bytes written to the internal buffer.
	Size() int

	// Reset starts a new independent sequence but keeps the accumulated bytes,
	// so several sequences can be concatenated into one buffer.
	Reset()

	// Finish returns buffer resources to the pool.
	//
	// After calling Finish(), the encoder is no longer usable; copy Bytes() first.
	Finish()

	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}
