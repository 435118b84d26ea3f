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

// Decoder reads geometry streams written by an Encoder with the same precision.
//
// Decoding runs in two passes. The first pass reads the structural header into a
// shape tree, checking every declared count against the bytes that remain. The
// second pass walks the tree and reads one delta stream per part. Both passes are
// bounded by the input length, so adversarial input cannot force large allocations.
type Decoder struct {
	quantizer quantize.Quantizer
	deltas    encoding.DeltaDecoder
}

// NewDecoder creates a Decoder that dequantizes with q.
func NewDecoder(q quantize.Quantizer) *Decoder {
	return &Decoder{
		quantizer: q,
		deltas:    encoding.NewDeltaDecoder(),
	}
}

// part is one delta stream: a point, a line, a multipoint or a ring.
type part struct {
	stored int
	closed bool
}

// shape is the structure of one geometry as read from the header.
type shape struct {
	typ      format.GeometryType
	parts    []part  // Point, LineString, MultiPoint, Polygon rings, MultiLineString lines
	children []shape // MultiPolygon polygons, GeometryCollection members
}

// Decode reads one geometry from data. The whole of data must be consumed.
//
// Returns errs.ErrUnsupportedGeometryType for unknown tags and errs.ErrCorruptData for
// truncated or inconsistent input.
func (d *Decoder) Decode(data []byte) (orb.Geometry, error) {
	hr := headerReader{data: data}

	s, err := hr.readShape(0)
	if err != nil {
		return nil, err
	}

	br := bodyReader{
		data:      data[hr.pos:],
		quantizer: d.quantizer,
		deltas:    d.deltas,
	}

	g, err := br.build(s)
	if err != nil {
		return nil, err
	}

	if br.pos != len(br.data) {
		return nil, fmt.Errorf("%w: %w: %d bytes after geometry",
			errs.ErrCorruptData, errs.ErrTrailingBytes, len(br.data)-br.pos)
	}

	return g, nil
}

type headerReader struct {
	data   []byte
	pos    int
	points int // declared points so far, closing points excluded
}

func (r *headerReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *headerReader) readUvarint() (uint64, error) {
	v, n, err := encoding.Uvarint(r.data[r.pos:])
	if err != nil {
		return 0, fmt.Errorf("header offset %d: %w", r.pos, err)
	}
	r.pos += n

	return v, nil
}

// readCount reads an element count. Every element takes at least one more byte,
// so a count larger than the remaining input is corrupt.
func (r *headerReader) readCount(what string) (int, error) {
	v, err := r.readUvarint()
	if err != nil {
		return 0, err
	}

	if v > uint64(r.remaining()) {
		return 0, fmt.Errorf("%w: %w: %d %s with %d bytes left",
			errs.ErrCorruptData, errs.ErrDeclaredCountTooLong, v, what, r.remaining())
	}

	return int(v), nil
}

// addPoints records stored points of one part. Every stored point takes at least
// one body byte.
func (r *headerReader) addPoints(n int) error {
	r.points += n
	if r.points > len(r.data) {
		return fmt.Errorf("%w: %w: %d points in %d bytes",
			errs.ErrCorruptData, errs.ErrDeclaredCountTooLong, r.points, len(r.data))
	}

	return nil
}

func (r *headerReader) readPart() (part, error) {
	n, err := r.readCount("points")
	if err != nil {
		return part{}, err
	}

	return part{stored: n}, r.addPoints(n)
}

func (r *headerReader) readRing() (part, error) {
	word, err := r.readUvarint()
	if err != nil {
		return part{}, err
	}

	stored := word >> 1
	closed := word&1 == 1

	if stored > uint64(len(r.data)) {
		return part{}, fmt.Errorf("%w: %w: ring of %d points in %d bytes",
			errs.ErrCorruptData, errs.ErrDeclaredCountTooLong, stored, len(r.data))
	}
	if closed && stored == 0 {
		return part{}, fmt.Errorf("%w: closed ring without points", errs.ErrCorruptData)
	}

	p := part{stored: int(stored), closed: closed}

	return p, r.addPoints(p.stored)
}

func (r *headerReader) readRings() ([]part, error) {
	n, err := r.readCount("rings")
	if err != nil {
		return nil, err
	}

	rings := make([]part, n)
	for i := range rings {
		if rings[i], err = r.readRing(); err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
	}

	return rings, nil
}

func (r *headerReader) readShape(depth int) (shape, error) {
	if depth > MaxDepth {
		return shape{}, fmt.Errorf("%w: %w: limit %d", errs.ErrCorruptData, errs.ErrMaxDepthExceeded, MaxDepth)
	}

	tag, err := r.readUvarint()
	if err != nil {
		return shape{}, err
	}

	if tag > uint64(format.TypeGeometryCollection) {
		return shape{}, fmt.Errorf("%w: tag %d", errs.ErrUnsupportedGeometryType, tag)
	}

	s := shape{typ: format.GeometryType(tag)}

	switch s.typ {
	case format.TypePoint:
		s.parts = []part{{stored: 1}}
		err = r.addPoints(1)
	case format.TypeLineString, format.TypeMultiPoint:
		var p part
		p, err = r.readPart()
		s.parts = []part{p}
	case format.TypePolygon:
		s.parts, err = r.readRings()
	case format.TypeMultiLineString:
		var n int
		if n, err = r.readCount("lines"); err != nil {
			break
		}
		s.parts = make([]part, n)
		for i := range s.parts {
			if s.parts[i], err = r.readPart(); err != nil {
				err = fmt.Errorf("line %d: %w", i, err)
				break
			}
		}
	case format.TypeMultiPolygon:
		var n int
		if n, err = r.readCount("polygons"); err != nil {
			break
		}
		s.children = make([]shape, n)
		for i := range s.children {
			s.children[i].typ = format.TypePolygon
			if s.children[i].parts, err = r.readRings(); err != nil {
				err = fmt.Errorf("polygon %d: %w", i, err)
				break
			}
		}
	case format.TypeGeometryCollection:
		var n int
		if n, err = r.readCount("members"); err != nil {
			break
		}
		s.children = make([]shape, n)
		for i := range s.children {
			if s.children[i], err = r.readShape(depth + 1); err != nil {
				err = fmt.Errorf("collection member %d: %w", i, err)
				break
			}
		}
	}

	if err != nil {
		return shape{}, err
	}

	return s, nil
}

type bodyReader struct {
	data      []byte
	pos       int
	quantizer quantize.Quantizer
	deltas    encoding.DeltaDecoder
}

func (r *bodyReader) build(s shape) (orb.Geometry, error) {
	switch s.typ {
	case format.TypePoint:
		pts, err := r.readPart(s.parts[0])
		if err != nil {
			return nil, err
		}

		return pts[0], nil
	case format.TypeLineString:
		pts, err := r.readPart(s.parts[0])
		if err != nil {
			return nil, err
		}

		return orb.LineString(pts), nil
	case format.TypeMultiPoint:
		pts, err := r.readPart(s.parts[0])
		if err != nil {
			return nil, err
		}

		return orb.MultiPoint(pts), nil
	case format.TypePolygon:
		return r.buildPolygon(s)
	case format.TypeMultiLineString:
		mls := make(orb.MultiLineString, len(s.parts))
		for i, p := range s.parts {
			pts, err := r.readPart(p)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
			mls[i] = orb.LineString(pts)
		}

		return mls, nil
	case format.TypeMultiPolygon:
		mp := make(orb.MultiPolygon, len(s.children))
		for i, child := range s.children {
			poly, err := r.buildPolygon(child)
			if err != nil {
				return nil, fmt.Errorf("polygon %d: %w", i, err)
			}
			mp[i] = poly
		}

		return mp, nil
	case format.TypeGeometryCollection:
		c := make(orb.Collection, len(s.children))
		for i, child := range s.children {
			g, err := r.build(child)
			if err != nil {
				return nil, fmt.Errorf("collection member %d: %w", i, err)
			}
			c[i] = g
		}

		return c, nil
	default:
		return nil, fmt.Errorf("%w: tag %d", errs.ErrUnsupportedGeometryType, uint8(s.typ))
	}
}

func (r *bodyReader) buildPolygon(s shape) (orb.Polygon, error) {
	poly := make(orb.Polygon, len(s.parts))
	for i, p := range s.parts {
		pts, err := r.readPart(p)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		poly[i] = orb.Ring(pts)
	}

	return poly, nil
}

// readPart reads one delta stream and returns its points, with the closing point
// appended for closed rings.
func (r *bodyReader) readPart(p part) ([]orb.Point, error) {
	n := p.stored
	if p.closed {
		n++
	}
	points := make([]orb.Point, n)

	if p.stored == 0 {
		return points, nil
	}

	indices, cleanup := pool.GetIndexSlice(p.stored)
	defer cleanup()

	consumed, err := r.deltas.DecodeInto(indices, r.data[r.pos:])
	if err != nil {
		return nil, fmt.Errorf("body offset %d: %w", r.pos, err)
	}
	r.pos += consumed

	bits := r.quantizer.Bits()
	for i, idx := range indices {
		if bits < curve.MaxOrder && idx>>(2*uint(bits)) != 0 {
			return nil, fmt.Errorf("%w: curve index %d outside order %d", errs.ErrCorruptData, idx, bits)
		}

		x, y := curve.Decode(bits, idx)
		points[i] = r.quantizer.Dequantize(quantize.GridPoint{X: x, Y: y})
	}

	if p.closed {
		points[n-1] = points[0]
	}

	return points, nil
}
