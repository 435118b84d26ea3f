// Package hilbert compresses lon/lat vector geometries into a compact binary form.
//
// Coordinates are quantized onto a 2^B × 2^B grid (B = 29 by default, ~4 cm error),
// mapped onto a Hilbert curve, and each part of a geometry is written as a stream of
// zig-zag varint deltas between consecutive curve indices. Points that are close on
// the map are close on the curve, so a typical vertex takes two to four bytes instead
// of the sixteen needed by two float64 values.
//
// # Basic Usage
//
//	data, err := hilbert.Encode(orb.LineString{{24.9384, 60.1699}, {24.9402, 60.1712}})
//	if err != nil {
//	    return err
//	}
//
//	g, err := hilbert.Decode(data)
//
// Encode and Decode use the default Serializer. Use NewSerializer to pick the precision,
// a payload compression or a checksum:
//
//	s, err := hilbert.NewSerializer(
//	    hilbert.WithPrecision(24),
//	    hilbert.WithCompression(format.CompressionZstd),
//	    hilbert.WithChecksum(true),
//	)
//
// # Frame Layout
//
// Every encoded geometry starts with a two byte header: a flag byte (format version,
// compression type and checksum bit) and the precision B. An optional 4-byte checksum
// follows, then the geometry stream described in package codec. The header makes
// frames self-describing: any Serializer decodes frames written by any other.
//
// # Package Structure
//
// The building blocks live in their own packages: quantize (coordinate grid), curve
// (Hilbert transform), encoding (varint and delta codec), codec (geometry streams),
// section (frame header) and compress (payload compression).
package hilbert

import (
	"github.com/paulmach/orb"
)

var defaultSerializer = mustDefaultSerializer()

func mustDefaultSerializer() *Serializer {
	s, err := NewSerializer()
	if err != nil {
		panic(err)
	}

	return s
}

// DefaultSerializer returns the Serializer used by Encode and Decode:
// DefaultPrecision bits, no compression and no checksum.
func DefaultSerializer() *Serializer {
	return defaultSerializer
}

// Encode encodes g with the default Serializer.
//
// Returns errs.ErrOutOfRange for coordinates outside lon [-180, 180] / lat [-90, 90]
// and errs.ErrUnsupportedGeometryType for nil or unknown geometries.
func Encode(g orb.Geometry) ([]byte, error) {
	return defaultSerializer.Encode(g)
}

// Decode decodes a frame written by any Serializer.
//
// Returns errs.ErrCorruptData for truncated or inconsistent input and
// errs.ErrUnsupportedGeometryType for unknown geometry tags.
func Decode(data []byte) (orb.Geometry, error) {
	return defaultSerializer.Decode(data)
}
