package format

import "github.com/paulmach/orb"

type (
	GeometryType    uint8
	CompressionType uint8
)

// Geometry type tags as written on the wire.
const (
	TypePoint              GeometryType = 0
	TypeLineString         GeometryType = 1
	TypePolygon            GeometryType = 2
	TypeMultiPoint         GeometryType = 3
	TypeMultiLineString    GeometryType = 4
	TypeMultiPolygon       GeometryType = 5
	TypeGeometryCollection GeometryType = 6
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsValid reports whether t is one of the seven known geometry tags.
func (t GeometryType) IsValid() bool {
	return t <= TypeGeometryCollection
}

func (t GeometryType) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// TypeOf returns the wire tag for an orb geometry.
//
// orb.Ring and orb.Bound are reported as TypePolygon since they are written as
// single-ring polygons. The second return value is false for nil or unknown values.
func TypeOf(g orb.Geometry) (GeometryType, bool) {
	switch g.(type) {
	case orb.Point:
		return TypePoint, true
	case orb.LineString:
		return TypeLineString, true
	case orb.Polygon, orb.Ring, orb.Bound:
		return TypePolygon, true
	case orb.MultiPoint:
		return TypeMultiPoint, true
	case orb.MultiLineString:
		return TypeMultiLineString, true
	case orb.MultiPolygon:
		return TypeMultiPolygon, true
	case orb.Collection:
		return TypeGeometryCollection, true
	default:
		return 0, false
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-sensitive name ("none", "zstd", "s2", "lz4") to a CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none", "None", "":
		return CompressionNone, true
	case "zstd", "Zstd":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
