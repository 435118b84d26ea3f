package hilbert

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/alamminsalo/hilbert-geometry/codec"
	"github.com/alamminsalo/hilbert-geometry/compress"
	"github.com/alamminsalo/hilbert-geometry/errs"
	"github.com/alamminsalo/hilbert-geometry/format"
	"github.com/alamminsalo/hilbert-geometry/internal/hash"
	"github.com/alamminsalo/hilbert-geometry/internal/options"
	"github.com/alamminsalo/hilbert-geometry/quantize"
	"github.com/alamminsalo/hilbert-geometry/section"
)

// Serializer encodes orb geometries into frames and decodes frames back.
//
// A Serializer is immutable after construction and safe for concurrent use.
// Every call works on its own buffers.
type Serializer struct {
	header    section.Header
	quantizer quantize.Quantizer
	encoder   *codec.Encoder
	codec     compress.Codec
}

// NewSerializer creates a Serializer.
//
// Defaults: DefaultPrecision bits, format.CompressionNone, no checksum.
//
// Returns errs.ErrInvalidPrecision or errs.ErrInvalidCompression for invalid options.
//
// Example:
//
//	s, err := hilbert.NewSerializer(hilbert.WithPrecision(26), hilbert.WithChecksum(true))
func NewSerializer(opts ...SerializerOption) (*Serializer, error) {
	cfg := defaultSerializerConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	q, err := quantize.New(cfg.precision)
	if err != nil {
		return nil, err
	}

	c, err := compress.CreateCodec(cfg.compression, "payload")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCompression, err)
	}

	header := section.NewHeader(cfg.precision)
	header.Flag.SetCompression(cfg.compression)
	header.Flag.SetChecksum(cfg.checksum)

	return &Serializer{
		header:    *header,
		quantizer: q,
		encoder:   codec.NewEncoder(q),
		codec:     c,
	}, nil
}

// Precision returns the quantization bits per axis used by Encode.
func (s *Serializer) Precision() uint8 {
	return s.header.Precision
}

// Compression returns the compression used by Encode.
func (s *Serializer) Compression() format.CompressionType {
	return s.header.Flag.Compression()
}

// HasChecksum reports whether Encode writes a checksum.
func (s *Serializer) HasChecksum() bool {
	return s.header.Flag.HasChecksum()
}

// Quantizer returns the quantizer used by Encode.
func (s *Serializer) Quantizer() quantize.Quantizer {
	return s.quantizer
}

// Encode encodes g into a frame.
//
// Returns errs.ErrOutOfRange for invalid coordinates and errs.ErrUnsupportedGeometryType
// for nil or unknown geometries.
func (s *Serializer) Encode(g orb.Geometry) ([]byte, error) {
	stream, err := s.encoder.Encode(g)
	if err != nil {
		return nil, err
	}

	header := s.header
	if header.Flag.HasChecksum() {
		header.Checksum = hash.Checksum(stream)
	}

	payload, err := s.codec.Compress(stream)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", header.Flag.Compression(), err)
	}

	out := make([]byte, 0, header.Size()+len(payload))
	out = header.AppendTo(out)

	return append(out, payload...), nil
}

// Decode decodes a frame.
//
// Precision, compression and checksum are taken from the frame header, so the
// Serializer's own settings do not have to match the writer's.
//
// Returns errs.ErrCorruptData for truncated, corrupted or inconsistent input and
// errs.ErrUnsupportedGeometryType for unknown geometry tags. Payloads that would
// decompress to more than compress.MaxDecodedSize bytes are rejected as corrupt.
func (s *Serializer) Decode(data []byte) (orb.Geometry, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	stream, err := decompress(header.Flag.Compression(), data[header.Size():])
	if err != nil {
		return nil, err
	}

	if header.Flag.HasChecksum() {
		if sum := hash.Checksum(stream); sum != header.Checksum {
			return nil, fmt.Errorf("%w: %w: got %08x, want %08x",
				errs.ErrCorruptData, errs.ErrChecksumMismatch, sum, header.Checksum)
		}
	}

	q := s.quantizer
	if header.Precision != q.Bits() {
		if q, err = quantize.New(header.Precision); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrCorruptData, err)
		}
	}

	return codec.NewDecoder(q).Decode(stream)
}

func decompress(compression format.CompressionType, payload []byte) ([]byte, error) {
	c, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptData, err)
	}

	stream, err := c.Decompress(payload)
	if errors.Is(err, errs.ErrCorruptData) {
		return nil, fmt.Errorf("decompress %s: %w", compression, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decompress %s: %w", errs.ErrCorruptData, compression, err)
	}

	return stream, nil
}
