// Package compress provides optional second-stage compression for encoded geometry streams.
//
// Encoding a geometry happens in two stages:
//
//  1. Encoding: quantization, Hilbert curve indexing and delta/varint coding
//  2. Compression: an optional general-purpose codec applied to the whole stream
//
// The first stage removes the bulk of the redundancy, so compression is off by default.
// It helps with large multi-part geometries whose delta streams still repeat byte patterns.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through
//   - Zstd (format.CompressionZstd): best ratio; pure Go by default, cgo with the gozstd tag
//   - S2 (format.CompressionS2): fast, Snappy-compatible
//   - LZ4 (format.CompressionLZ4): varint length prefix plus a raw LZ4 block, fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(stream)
//	original, err := codec.Decompress(compressed)
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool; they are safe for concurrent use.
package compress
