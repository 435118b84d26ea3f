package main

import (
	"fmt"

	"github.com/alamminsalo/hilbert-geometry/encoding"
	"github.com/alamminsalo/hilbert-geometry/errs"
)

// appendRecord appends frame to dst as a varint length followed by the frame bytes.
func appendRecord(dst, frame []byte) []byte {
	dst = encoding.AppendUvarint(dst, uint64(len(frame)))
	return append(dst, frame...)
}

// splitRecords returns the frames of a record file. The frames alias data.
func splitRecords(data []byte) ([][]byte, error) {
	var frames [][]byte

	for offset := 0; offset < len(data); {
		size, n, err := encoding.Uvarint(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("record %d at offset %d: %w", len(frames), offset, err)
		}
		offset += n

		if size > uint64(len(data)-offset) {
			return nil, fmt.Errorf("%w: record %d declares %d bytes, %d left",
				errs.ErrCorruptData, len(frames), size, len(data)-offset)
		}

		end := offset + int(size)
		frames = append(frames, data[offset:end])
		offset = end
	}

	return frames, nil
}
