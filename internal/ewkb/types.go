package ewkb

// Type identifies one of the seven geometry kinds of the WKB core.
type Type uint32

const (
	TypePoint Type = iota + 1
	TypeLineString
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
	TypeGeometryCollection
)

func (t Type) String() string {
	switch t {
	case TypePoint:
		return "POINT"
	case TypeLineString:
		return "LINESTRING"
	case TypePolygon:
		return "POLYGON"
	case TypeMultiPoint:
		return "MULTIPOINT"
	case TypeMultiLineString:
		return "MULTILINESTRING"
	case TypeMultiPolygon:
		return "MULTIPOLYGON"
	case TypeGeometryCollection:
		return "GEOMETRYCOLLECTION"
	}
	return "UNKNOWN"
}

// Value is the payload of a decoded geometry. The concrete type is determined
// by the Type tag of the Geometry that carries it; the set of implementations
// is closed.
type Value interface {
	geometryValue()
}

// Point is an x, y coordinate pair. Decoding is 2D only: the Z and M header
// flags are recognized but never widen the tuple.
type Point [2]float64

// LineString is an ordered run of points.
type LineString []Point

// Polygon is a list of rings, outer first. Ring closure is not validated.
type Polygon []LineString

type MultiPoint []Point

type MultiLineString []LineString

type MultiPolygon []Polygon

// Collection holds fully tagged nested geometries.
type Collection []Geometry

func (Point) geometryValue()           {}
func (LineString) geometryValue()      {}
func (Polygon) geometryValue()         {}
func (MultiPoint) geometryValue()      {}
func (MultiLineString) geometryValue() {}
func (MultiPolygon) geometryValue()    {}
func (Collection) geometryValue()      {}

// Geometry is one decoded (E)WKB value. SRID is nil when no header in the
// buffer carried the SRID flag; it is never defaulted to zero. Nested
// geometries inside a Collection always have a nil SRID: header SRIDs land in
// the top-level result instead.
type Geometry struct {
	Type  Type
	Value Value
	SRID  *uint32
}
