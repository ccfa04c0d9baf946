package geom

import (
	"github.com/cockroachdb/errors"

	"wkbscope/internal/ewkb"
)

// Flatten turns a decoded geometry tree into renderable point/line/polygon
// layers with an accumulated bbox. Collections are walked recursively.
func Flatten(g ewkb.Geometry) (Data, error) {
	var d Data
	if err := d.add(g); err != nil {
		return Data{}, err
	}
	if d.vertices == 0 {
		return Data{}, errors.New("geometry has no coordinates")
	}
	return d, nil
}

func (d *Data) add(g ewkb.Geometry) error {
	switch v := g.Value.(type) {
	case ewkb.Point:
		d.addPoint(v)
	case ewkb.MultiPoint:
		for _, p := range v {
			d.addPoint(p)
		}
	case ewkb.LineString:
		d.addLine(v)
	case ewkb.MultiLineString:
		for _, ls := range v {
			d.addLine(ls)
		}
	case ewkb.Polygon:
		d.addPolygon(v)
	case ewkb.MultiPolygon:
		for _, poly := range v {
			d.addPolygon(poly)
		}
	case ewkb.Collection:
		for _, el := range v {
			if err := d.add(el); err != nil {
				return err
			}
		}
	default:
		return errors.Newf("unhandled geometry payload %T", g.Value)
	}
	return nil
}

func (d *Data) addPoint(p ewkb.Point) {
	d.Points = append(d.Points, [2]float64(p))
	d.grow(p[0], p[1])
}

func (d *Data) addLine(ls ewkb.LineString) {
	line := make([][2]float64, 0, len(ls))
	for _, p := range ls {
		line = append(line, [2]float64(p))
		d.grow(p[0], p[1])
	}
	d.Lines = append(d.Lines, line)
}

func (d *Data) addPolygon(poly ewkb.Polygon) {
	rings := make([][][2]float64, 0, len(poly))
	for _, ring := range poly {
		r := make([][2]float64, 0, len(ring))
		for _, p := range ring {
			r = append(r, [2]float64(p))
			d.grow(p[0], p[1])
		}
		rings = append(rings, r)
	}
	d.Polygons = append(d.Polygons, rings)
}
