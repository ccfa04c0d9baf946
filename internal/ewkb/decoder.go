// Package ewkb decodes Well-Known Binary and PostGIS extended WKB (EWKB)
// geometry values into a tagged in-memory tree. It is a pure decoder: it does
// not encode, validate geometric well-formedness, or transform coordinates.
package ewkb

import "github.com/cockroachdb/errors"

// EWKB type-code flag bits (PostGIS extension).
const (
	zFlag    = 0x80000000
	mFlag    = 0x40000000
	sridFlag = 0x20000000

	flagMask = zFlag | mFlag | sridFlag
)

// DefaultMaxDepth bounds recursive nesting so an adversarial buffer cannot
// exhaust the stack.
const DefaultMaxDepth = 64

// Minimum encoded sizes, used to reject element counts that cannot possibly
// fit in the remaining buffer before anything is allocated.
const (
	pointSize       = 16            // two doubles
	nestedPointSize = 5 + pointSize // marker + type + doubles
	nestedMinSize   = 5 + 4         // marker + type + empty count
	countMinSize    = 4             // an empty ring
)

// Decoder decodes a single geometry from one buffer. It owns its Reader's
// cursor for the duration of Parse and must not be shared between goroutines;
// decode independent buffers with independent Decoders.
type Decoder struct {
	r *Reader

	// MaxDepth overrides DefaultMaxDepth when set above zero.
	MaxDepth int

	srid *uint32
}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{r: NewReader(buf), MaxDepth: DefaultMaxDepth}
}

// Parse decodes one complete geometry from buf.
func Parse(buf []byte) (Geometry, error) {
	return NewDecoder(buf).Parse()
}

// Parse decodes the buffer handed to NewDecoder. Any failure aborts the whole
// call; no partial geometry is returned.
func (d *Decoder) Parse() (Geometry, error) {
	g, err := d.decodeGeometry(0)
	if err != nil {
		return Geometry{}, err
	}
	g.SRID = d.srid
	return g, nil
}

// decodeGeometry reads one full geometry header plus payload. It is invoked
// recursively for the elements of Multi* and GeometryCollection values, each
// of which carries its own byte-order marker and type code.
func (d *Decoder) decodeGeometry(depth int) (Geometry, error) {
	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if depth > maxDepth {
		return Geometry{}, errors.Wrapf(ErrTooDeep, "nested %d levels", depth)
	}
	if _, err := d.r.ReadByteOrder(); err != nil {
		return Geometry{}, err
	}
	raw, err := d.r.ReadUint32()
	if err != nil {
		return Geometry{}, err
	}
	if raw&sridFlag != 0 {
		srid, err := d.r.ReadUint32()
		if err != nil {
			return Geometry{}, err
		}
		// last SRID read during this Parse wins, nested headers included
		d.srid = &srid
	}
	// Z and M are masked off with the SRID flag but do not widen the
	// coordinate tuple: payloads are always decoded as 2D.
	kind := raw &^ uint32(flagMask)
	if kind < uint32(TypePoint) || kind > uint32(TypeGeometryCollection) {
		return Geometry{}, errors.Wrapf(ErrUnsupportedType, "type code %d", kind)
	}

	t := Type(kind)
	var v Value
	switch t {
	case TypePoint:
		v, err = d.point()
	case TypeLineString:
		v, err = d.lineString()
	case TypePolygon:
		v, err = d.polygon()
	case TypeMultiPoint:
		v, err = d.multiPoint(depth)
	case TypeMultiLineString:
		v, err = d.multiLineString(depth)
	case TypeMultiPolygon:
		v, err = d.multiPolygon(depth)
	case TypeGeometryCollection:
		v, err = d.collection(depth)
	}
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Type: t, Value: v}, nil
}

// count reads an element count and rejects values that cannot fit in the
// remaining buffer, so a hostile count fails before allocation.
func (d *Decoder) count(minElemSize int) (int, error) {
	n, err := d.r.ReadUint32()
	if err != nil {
		return 0, err
	}
	if int64(n)*int64(minElemSize) > int64(d.r.Remaining()) {
		return 0, errors.Wrapf(ErrUnexpectedEOF, "%d elements declared with %d bytes left", n, d.r.Remaining())
	}
	return int(n), nil
}

func (d *Decoder) point() (Point, error) {
	x, err := d.r.ReadFloat64()
	if err != nil {
		return Point{}, err
	}
	y, err := d.r.ReadFloat64()
	if err != nil {
		return Point{}, err
	}
	return Point{x, y}, nil
}

func (d *Decoder) lineString() (LineString, error) {
	n, err := d.count(pointSize)
	if err != nil {
		return nil, err
	}
	ls := make(LineString, 0, n)
	for i := 0; i < n; i++ {
		p, err := d.point()
		if err != nil {
			return nil, err
		}
		ls = append(ls, p)
	}
	return ls, nil
}

func (d *Decoder) polygon() (Polygon, error) {
	n, err := d.count(countMinSize)
	if err != nil {
		return nil, err
	}
	rings := make(Polygon, 0, n)
	for i := 0; i < n; i++ {
		ring, err := d.lineString()
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

func (d *Decoder) multiPoint(depth int) (MultiPoint, error) {
	n, err := d.count(nestedPointSize)
	if err != nil {
		return nil, err
	}
	out := make(MultiPoint, 0, n)
	for i := 0; i < n; i++ {
		g, err := d.decodeGeometry(depth + 1)
		if err != nil {
			return nil, err
		}
		p, ok := g.Value.(Point)
		if !ok {
			return nil, errors.Newf("ewkb: multipoint element %d is %s, want POINT", i, g.Type)
		}
		out = append(out, p)
	}
	return out, nil
}

func (d *Decoder) multiLineString(depth int) (MultiLineString, error) {
	n, err := d.count(nestedMinSize)
	if err != nil {
		return nil, err
	}
	out := make(MultiLineString, 0, n)
	for i := 0; i < n; i++ {
		g, err := d.decodeGeometry(depth + 1)
		if err != nil {
			return nil, err
		}
		ls, ok := g.Value.(LineString)
		if !ok {
			return nil, errors.Newf("ewkb: multilinestring element %d is %s, want LINESTRING", i, g.Type)
		}
		out = append(out, ls)
	}
	return out, nil
}

func (d *Decoder) multiPolygon(depth int) (MultiPolygon, error) {
	n, err := d.count(nestedMinSize)
	if err != nil {
		return nil, err
	}
	out := make(MultiPolygon, 0, n)
	for i := 0; i < n; i++ {
		g, err := d.decodeGeometry(depth + 1)
		if err != nil {
			return nil, err
		}
		poly, ok := g.Value.(Polygon)
		if !ok {
			return nil, errors.Newf("ewkb: multipolygon element %d is %s, want POLYGON", i, g.Type)
		}
		out = append(out, poly)
	}
	return out, nil
}

func (d *Decoder) collection(depth int) (Collection, error) {
	n, err := d.count(nestedMinSize)
	if err != nil {
		return nil, err
	}
	out := make(Collection, 0, n)
	for i := 0; i < n; i++ {
		g, err := d.decodeGeometry(depth + 1)
		if err != nil {
			return nil, err
		}
		// element keeps its full tag + payload; header SRIDs stay in d.srid
		out = append(out, g)
	}
	return out, nil
}
