package section

import (
	"fmt"

	"github.com/alamminsalo/hilbert-geometry/errs"
	"github.com/alamminsalo/hilbert-geometry/format"
)

// Flag is the first byte of every encoded geometry.
//
//	bit 0-2: compression type (format.CompressionType, 1-4)
//	bit 3:   checksum present
//	bit 4-7: format version
type Flag uint8

// NewFlag returns a flag for the current format version, without compression or checksum.
func NewFlag() Flag {
	return Flag(FormatVersion<<versionShift) | Flag(format.CompressionNone)
}

// Version returns the format version from bits 4-7.
func (f Flag) Version() uint8 {
	return uint8(f) >> versionShift
}

// Compression returns the compression type from bits 0-2.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f & compressionMask)
}

// SetCompression stores the compression type in bits 0-2.
func (f *Flag) SetCompression(c format.CompressionType) {
	*f &^= compressionMask
	*f |= Flag(c) & compressionMask
}

// HasChecksum reports whether a checksum follows the header.
func (f Flag) HasChecksum() bool {
	return f&checksumMask != 0
}

// SetChecksum enables or disables the checksum bit.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		*f |= checksumMask
	} else {
		*f &^= checksumMask
	}
}

// Validate checks the version and compression fields.
// Errors wrap errs.ErrCorruptData.
func (f Flag) Validate() error {
	if f.Version() != FormatVersion {
		return fmt.Errorf("%w: %w: %d", errs.ErrCorruptData, errs.ErrUnsupportedVersion, f.Version())
	}

	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: %w: %d", errs.ErrCorruptData, errs.ErrInvalidCompression, uint8(f.Compression()))
	}

	return nil
}
