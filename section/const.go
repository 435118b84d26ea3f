package section

const (
	// FormatVersion is the only version this package reads and writes.
	FormatVersion = 1

	// HeaderSize is the size of the fixed part of the header: flag and precision.
	HeaderSize = 2
	// ChecksumSize is the size of the optional checksum that follows the fixed header.
	ChecksumSize = 4

	compressionMask Flag = 0x07
	checksumMask    Flag = 0x08
	versionShift         = 4
)
