// Package codec turns orb geometries into geometry streams and back.
//
// A geometry stream has two parts. The structural header comes first and holds, in
// traversal order, a varint type tag per geometry followed by its element counts:
//
//	Point               tag
//	LineString          tag, points
//	Polygon             tag, rings, ring word per ring
//	MultiPoint          tag, points
//	MultiLineString     tag, lines, points per line
//	MultiPolygon        tag, polygons, then rings and ring words per polygon
//	GeometryCollection  tag, members, then each member's header
//
// A ring word is stored<<1 | closed. Rings of two or more points whose last point
// equals the first are written without the closing point and with the closed bit
// set; decoding appends a copy of the first point.
//
// The body follows the header: one delta stream of Hilbert curve indices per part
// (point, line, multipoint or ring), in the same order as the header. Each stream
// starts with an absolute index.
//
// orb.Ring and orb.Bound are written as single-ring polygons and decode as orb.Polygon.
package codec
