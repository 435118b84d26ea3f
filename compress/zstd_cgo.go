//go:build gozstd && cgo

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/gozstd"

	"github.com/alamminsalo/hilbert-geometry/errs"
)

const zstdLevel = 5

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses Zstd-compressed data.
//
// The payload is streamed through a reader limited to MaxDecodedSize, so frames
// that declare or expand to more than that are rejected without buffering them.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out, err := io.ReadAll(io.LimitReader(zr, MaxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrCorruptData, err)
	}

	if len(out) > MaxDecodedSize {
		return nil, fmt.Errorf("%w: %w: zstd payload over %d bytes",
			errs.ErrCorruptData, errs.ErrDecodedSizeTooLarge, MaxDecodedSize)
	}

	return out, nil
}
