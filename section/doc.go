// Package section defines the envelope written in front of every encoded geometry.
//
// The envelope is two bytes, plus four when a checksum is enabled:
//
//	+--------+-----------+----------------------+------------------------------+
//	| Flag   | Precision | Checksum (optional)  | Geometry stream (maybe       |
//	| 1 byte | 1 byte    | 4 bytes LE           | compressed)                  |
//	+--------+-----------+----------------------+------------------------------+
//
// Flag carries the format version (high nibble), the checksum bit and the
// compression type. Precision is the quantization bit width used for the
// stream, so a decoder needs no out-of-band configuration.
//
// Parse functions validate every field and return errors wrapping
// errs.ErrCorruptData; they never panic on short or hostile input.
package section
