package codec

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/alamminsalo/hilbert-geometry/curve"
	"github.com/alamminsalo/hilbert-geometry/encoding"
	"github.com/alamminsalo/hilbert-geometry/errs"
	"github.com/alamminsalo/hilbert-geometry/format"
	"github.com/alamminsalo/hilbert-geometry/internal/pool"
	"github.com/alamminsalo/hilbert-geometry/quantize"
)

// MaxDepth is the deepest geometry collection nesting the codec reads or writes.
const MaxDepth = 64

// Encoder writes orb geometries as geometry streams.
//
// An Encoder holds only its Quantizer; every call works on its own buffers, so one
// Encoder can be shared between goroutines.
type Encoder struct {
	quantizer quantize.Quantizer
}

// NewEncoder creates an Encoder that quantizes with q.
func NewEncoder(q quantize.Quantizer) *Encoder {
	return &Encoder{quantizer: q}
}

// Encode returns the geometry stream for g.
//
// Returns errs.ErrOutOfRange for invalid coordinates and errs.ErrUnsupportedGeometryType
// for nil or unknown geometry values.
func (e *Encoder) Encode(g orb.Geometry) ([]byte, error) {
	return e.AppendEncode(nil, g)
}

// AppendEncode appends the geometry stream for g to dst.
// On error dst is returned unchanged.
func (e *Encoder) AppendEncode(dst []byte, g orb.Geometry) ([]byte, error) {
	w := streamWriter{
		quantizer: e.quantizer,
		header:    pool.GetStreamBuffer(),
		body:      encoding.NewDeltaEncoder(),
	}
	defer w.release()

	if err := w.writeGeometry(g, 0); err != nil {
		return dst, err
	}

	dst = append(dst, w.header.Bytes()...)

	return append(dst, w.body.Bytes()...), nil
}

// streamWriter collects the structural header and the delta-coded body of one
// geometry in separate buffers, both in traversal order.
type streamWriter struct {
	quantizer quantize.Quantizer
	header    *pool.ByteBuffer
	body      encoding.ColumnarEncoder[uint64]
}

func (w *streamWriter) release() {
	pool.PutStreamBuffer(w.header)
	w.body.Finish()
}

func (w *streamWriter) writeUvarint(v uint64) {
	w.header.B = encoding.AppendUvarint(w.header.B, v)
}

func (w *streamWriter) writeTag(t format.GeometryType) {
	w.writeUvarint(uint64(t))
}

func (w *streamWriter) writeGeometry(g orb.Geometry, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, MaxDepth)
	}

	if g == nil {
		return fmt.Errorf("%w: nil geometry", errs.ErrUnsupportedGeometryType)
	}

	tag, ok := format.TypeOf(g)
	if !ok {
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedGeometryType, g)
	}
	w.writeTag(tag)

	switch v := g.(type) {
	case orb.Point:
		return w.writePoint(v)
	case orb.LineString:
		w.writeUvarint(uint64(len(v)))
		return w.writePart(v)
	case orb.Polygon:
		return w.writePolygon(v)
	case orb.Ring:
		return w.writePolygon(orb.Polygon{v})
	case orb.Bound:
		return w.writePolygon(v.ToPolygon())
	case orb.MultiPoint:
		w.writeUvarint(uint64(len(v)))
		return w.writePart(v)
	case orb.MultiLineString:
		w.writeUvarint(uint64(len(v)))
		for i, ls := range v {
			w.writeUvarint(uint64(len(ls)))
			if err := w.writePart(ls); err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
		}

		return nil
	case orb.MultiPolygon:
		w.writeUvarint(uint64(len(v)))
		for i, p := range v {
			if err := w.writePolygon(p); err != nil {
				return fmt.Errorf("polygon %d: %w", i, err)
			}
		}

		return nil
	case orb.Collection:
		w.writeUvarint(uint64(len(v)))
		for i, child := range v {
			if err := w.writeGeometry(child, depth+1); err != nil {
				return fmt.Errorf("collection member %d: %w", i, err)
			}
		}

		return nil
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedGeometryType, g)
	}
}

// writePolygon writes the ring count, one ring word per ring, and one stream per ring.
//
// Ring word: stored<<1 | closed. A ring of two or more points whose last point
// equals the first is written without the closing point and with closed=1.
func (w *streamWriter) writePolygon(p orb.Polygon) error {
	w.writeUvarint(uint64(len(p)))
	for i, ring := range p {
		stored, closed := splitClosure(ring)

		word := uint64(len(stored)) << 1
		if closed {
			word |= 1
		}
		w.writeUvarint(word)

		if err := w.writePart(stored); err != nil {
			return fmt.Errorf("ring %d: %w", i, err)
		}
	}

	return nil
}

func splitClosure(ring orb.Ring) ([]orb.Point, bool) {
	n := len(ring)
	if n >= 2 && ring[0] == ring[n-1] {
		return ring[:n-1], true
	}

	return ring, false
}

func (w *streamWriter) index(p orb.Point) (uint64, error) {
	g, err := w.quantizer.Quantize(p)
	if err != nil {
		return 0, err
	}

	return curve.Encode(w.quantizer.Bits(), g.X, g.Y), nil
}

func (w *streamWriter) writePoint(p orb.Point) error {
	idx, err := w.index(p)
	if err != nil {
		return err
	}

	w.body.Reset()
	w.body.Write(idx)

	return nil
}

// writePart appends one delta stream for points. Empty parts write nothing.
func (w *streamWriter) writePart(points []orb.Point) error {
	if len(points) == 0 {
		return nil
	}

	indices, cleanup := pool.GetIndexSlice(len(points))
	defer cleanup()

	for i, p := range points {
		idx, err := w.index(p)
		if err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		indices[i] = idx
	}

	w.body.Reset()
	w.body.WriteSlice(indices)

	return nil
}
