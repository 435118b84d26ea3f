package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/alamminsalo/hilbert-geometry/errs"
)

// S2Compressor is a fast Snappy-compatible block compressor.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
//
// The block's declared length is checked against MaxDecodedSize before the output
// buffer is allocated.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrCorruptData, err)
	}

	if size > MaxDecodedSize {
		return nil, fmt.Errorf("%w: %w: s2 block declares %d bytes, limit %d",
			errs.ErrCorruptData, errs.ErrDecodedSizeTooLarge, size, MaxDecodedSize)
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrCorruptData, err)
	}

	return out, nil
}
