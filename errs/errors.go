// Package errs defines the sentinel errors returned by the hilbert-geometry packages.
//
// Errors are wrapped with context using fmt.Errorf("%w: ...") and should be matched
// with errors.Is. Decode-time failures that come from the frame (checksum, version)
// are reported together with ErrCorruptData so a single errors.Is(err, ErrCorruptData)
// check covers every malformed-input case.
package errs

import "errors"

// Encode errors.
var (
	// ErrOutOfRange is returned when a coordinate is not finite or lies outside
	// lon [-180, 180] / lat [-90, 90].
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrUnsupportedGeometryType is returned for an unknown geometry tag on decode,
	// or a nil/unknown geometry value on encode.
	ErrUnsupportedGeometryType = errors.New("unsupported geometry type")
)

// Decode errors.
var (
	// ErrCorruptData is returned when the input is truncated or structurally inconsistent.
	ErrCorruptData          = errors.New("corrupt data")
	ErrChecksumMismatch     = errors.New("checksum mismatch")
	ErrUnsupportedVersion   = errors.New("unsupported format version")
	ErrTrailingBytes        = errors.New("trailing bytes after geometry")
	ErrMaxDepthExceeded     = errors.New("geometry nesting too deep")
	ErrUnterminatedVarint   = errors.New("unterminated varint")
	ErrVarintOverflow       = errors.New("varint overflows 64 bits")
	ErrDeclaredCountTooLong = errors.New("declared count exceeds remaining bytes")
	ErrDecodedSizeTooLarge  = errors.New("declared decompressed size exceeds limit")
)

// Configuration errors.
var (
	ErrInvalidPrecision   = errors.New("invalid precision bits")
	ErrInvalidCompression = errors.New("invalid compression type")
)
