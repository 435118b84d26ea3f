package compress

// ZstdCompressor provides Zstandard compression.
//
// Best ratio of the built-in codecs; worth enabling for large multi-polygons and long
// line strings stored at rest. For single points and small rings the zstd frame
// overhead usually exceeds the savings.
//
// The default build uses the pure-Go klauspost/compress implementation. Building with
// the gozstd tag (and cgo) switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
