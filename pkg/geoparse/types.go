// pkg/geoparse/types.go - tagged value types for the parsed feature model
package geoparse

import (
	"math"

	"github.com/paulmach/orb"
)

func floatBits(f float64) uint64 {
	return math.Float64bits(f)
}

// GeometryType distinguishes the three geometry shapes this system
// supports. Unsupported GeoJSON geometry types (MultiPoint,
// MultiLineString, MultiPolygon, GeometryCollection) never reach this
// type -- the parser drops those features silently.
type GeometryType int

const (
	GeometryPoint GeometryType = iota
	GeometryLineString
	GeometryPolygon
)

func (t GeometryType) String() string {
	switch t {
	case GeometryPoint:
		return "Point"
	case GeometryLineString:
		return "LineString"
	case GeometryPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Geometry is a tagged union over the three supported shapes. Exactly one
// of Point, Line, Polygon is meaningful, selected by Type.
type Geometry struct {
	Type    GeometryType
	Point   orb.Point
	Line    orb.LineString
	Polygon orb.Polygon
}

// Bound computes the WGS84 bounding box of a geometry.
func (g Geometry) Bound() orb.Bound {
	switch g.Type {
	case GeometryPoint:
		return orb.Bound{Min: g.Point, Max: g.Point}
	case GeometryLineString:
		return g.Line.Bound()
	case GeometryPolygon:
		return g.Polygon.Bound()
	default:
		return orb.Bound{}
	}
}

// PropertyKind identifies which field of a PropertyValue is meaningful.
type PropertyKind int

const (
	PropertyNull PropertyKind = iota
	PropertyBool
	PropertyInt
	PropertyUint
	PropertyFloat
	PropertyString
)

// PropertyValue is a tagged variant over the supported GeoJSON property
// value types. The JSON parser in this package only ever produces
// PropertyNull, PropertyBool, PropertyInt, PropertyFloat, and
// PropertyString -- PropertyUint exists so the MVT value table (which has
// a distinct wire encoding for unsigned values) can represent one, but
// nothing upstream of the encoder currently constructs one from parsed
// GeoJSON input, since the numeric policy here widens any magnitude too
// large for a signed 64-bit integer to float, never to unsigned.
type PropertyValue struct {
	Kind   PropertyKind
	Bool   bool
	Int    int64
	Uint   uint64
	Float  float64
	String string
}

// Equal reports whether two property values are identical: string/bool/
// int/uint equality is exact, float equality is bitwise (so NaN
// deduplicates against any NaN).
func (v PropertyValue) Equal(other PropertyValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case PropertyNull:
		return true
	case PropertyBool:
		return v.Bool == other.Bool
	case PropertyInt:
		return v.Int == other.Int
	case PropertyUint:
		return v.Uint == other.Uint
	case PropertyFloat:
		return floatBits(v.Float) == floatBits(other.Float)
	case PropertyString:
		return v.String == other.String
	default:
		return false
	}
}

// Feature pairs a geometry with its (possibly empty) property map. Input
// feature IDs are discarded.
type Feature struct {
	Geometry   Geometry
	Properties map[string]PropertyValue
}

// FeatureCollection is an ordered sequence of features plus the computed
// bounding box and center.
type FeatureCollection struct {
	Features []Feature
	Bound    orb.Bound
	Center   orb.Point
}
