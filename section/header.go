package section

import (
	"encoding/binary"
	"fmt"

	"github.com/alamminsalo/hilbert-geometry/errs"
)

// Header is the envelope written in front of the geometry stream.
//
// Layout:
//
//	byte 0:    Flag
//	byte 1:    Precision (quantization bits per axis, 1-32)
//	byte 2-5:  Checksum, little-endian; present only if Flag.HasChecksum()
//
// The geometry stream (optionally compressed) follows the header.
type Header struct {
	// Checksum is the low 32 bits of xxHash64 over the uncompressed geometry stream.
	Checksum uint32
	// Flag packs version, compression and the checksum bit.
	Flag Flag
	// Precision is the number of quantization bits per axis.
	Precision uint8
}

// NewHeader creates a header for the current version with the given precision.
func NewHeader(precision uint8) *Header {
	return &Header{
		Flag:      NewFlag(),
		Precision: precision,
	}
}

// Size returns the encoded size of the header in bytes.
func (h *Header) Size() int {
	if h.Flag.HasChecksum() {
		return HeaderSize + ChecksumSize
	}

	return HeaderSize
}

// AppendTo appends the encoded header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	dst = append(dst, byte(h.Flag), h.Precision)
	if h.Flag.HasChecksum() {
		dst = binary.LittleEndian.AppendUint32(dst, h.Checksum)
	}

	return dst
}

// Bytes serializes the header into a new byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, h.Size()))
}

// Parse parses and validates the header at the start of data.
//
// Returns an error wrapping errs.ErrCorruptData if data is too short or a field is invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrCorruptData, HeaderSize, len(data))
	}

	h.Flag = Flag(data[0])
	h.Precision = data[1]
	h.Checksum = 0

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if h.Precision < 1 || h.Precision > 32 {
		return fmt.Errorf("%w: %w: %d", errs.ErrCorruptData, errs.ErrInvalidPrecision, h.Precision)
	}

	if h.Flag.HasChecksum() {
		if len(data) < HeaderSize+ChecksumSize {
			return fmt.Errorf("%w: checksum needs %d bytes, got %d",
				errs.ErrCorruptData, ChecksumSize, len(data)-HeaderSize)
		}
		h.Checksum = binary.LittleEndian.Uint32(data[HeaderSize : HeaderSize+ChecksumSize])
	}

	return nil
}

// ParseHeader parses a Header from the start of data.
//
// Returns:
//   - Header: Parsed header struct
//   - error: wrapping errs.ErrCorruptData on short or invalid input
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
