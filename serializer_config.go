package hilbert

import (
	"fmt"

	"github.com/alamminsalo/hilbert-geometry/errs"
	"github.com/alamminsalo/hilbert-geometry/format"
	"github.com/alamminsalo/hilbert-geometry/internal/options"
	"github.com/alamminsalo/hilbert-geometry/quantize"
)

// DefaultPrecision is the number of quantization bits per axis used when no
// WithPrecision option is given.
const DefaultPrecision = quantize.DefaultBits

// SerializerConfig holds the settings a Serializer is built from.
type SerializerConfig struct {
	precision   uint8
	compression format.CompressionType
	checksum    bool
}

func defaultSerializerConfig() *SerializerConfig {
	return &SerializerConfig{
		precision:   DefaultPrecision,
		compression: format.CompressionNone,
	}
}

// SerializerOption represents a functional option for configuring a Serializer.
type SerializerOption = options.Option[*SerializerConfig]

// WithPrecision sets the quantization bits per axis, 1 to 32.
//
// Higher precision means smaller error and larger output:
//   - 29 bits (default): ~0.075 m lon cell, ~0.037 m lat cell at the equator
//   - 24 bits: ~2.4 m lon cell
//   - 32 bits: ~0.01 m lon cell
func WithPrecision(bits uint8) SerializerOption {
	return func(c *SerializerConfig) error {
		if bits < quantize.MinBits || bits > quantize.MaxBits {
			return fmt.Errorf("%w: %d, want %d-%d", errs.ErrInvalidPrecision, bits, quantize.MinBits, quantize.MaxBits)
		}
		c.precision = bits

		return nil
	}
}

// WithCompression sets the compression applied to the geometry stream.
//
// format.CompressionNone is the default; the delta encoding already leaves little
// redundancy in small geometries.
func WithCompression(compression format.CompressionType) SerializerOption {
	return func(c *SerializerConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(compression))
		}
		c.compression = compression

		return nil
	}
}

// WithChecksum adds a 4-byte xxHash64 checksum of the geometry stream to every frame.
func WithChecksum(enabled bool) SerializerOption {
	return options.NoError(func(c *SerializerConfig) {
		c.checksum = enabled
	})
}
