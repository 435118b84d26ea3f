package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/alamminsalo/hilbert-geometry/encoding"
	"github.com/alamminsalo/hilbert-geometry/errs"
)

// maxLZ4Ratio is the largest expansion a raw LZ4 block can encode: every extra
// match-length byte adds at most 255 output bytes.
const maxLZ4Ratio = 255

// lz4CompressorPool pools lz4.Compressor instances for reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor stores payloads as a varint decoded length followed by a raw LZ4 block.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 block compression.
//
// Returns nil if input is empty.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	prefix := encoding.UvarintLen(uint64(len(data)))
	dst := make([]byte, prefix+lz4.CompressBlockBound(len(data)))
	encoding.AppendUvarint(dst[:0], uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[prefix:])
	if err != nil {
		return nil, err
	}

	return dst[:prefix+n], nil
}

// Decompress decompresses a length-prefixed LZ4 block.
//
// The declared length must fit MaxDecodedSize and the largest expansion the block
// can encode; the output buffer is allocated only after both checks.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, n, err := encoding.Uvarint(data)
	if err != nil {
		return nil, fmt.Errorf("lz4 length: %w", err)
	}
	block := data[n:]

	if size == 0 || len(block) == 0 {
		return nil, fmt.Errorf("%w: lz4 block of %d bytes declares %d bytes", errs.ErrCorruptData, len(block), size)
	}

	if size > MaxDecodedSize || size > uint64(len(block))*maxLZ4Ratio {
		return nil, fmt.Errorf("%w: %w: lz4 block of %d bytes declares %d bytes",
			errs.ErrCorruptData, errs.ErrDecodedSizeTooLarge, len(block), size)
	}

	out := make([]byte, size)
	m, err := lz4.UncompressBlock(block, out)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %w", errs.ErrCorruptData, err)
	}

	if uint64(m) != size {
		return nil, fmt.Errorf("%w: lz4 block decoded to %d bytes, declared %d", errs.ErrCorruptData, m, size)
	}

	return out, nil
}
