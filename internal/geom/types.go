package geom

// BBox is the axis-aligned extent of a dataset in coordinate space.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Data is a minimal geometry container for rendering
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox     BBox

	vertices int
}

// grow widens the bbox to include (x, y); the first vertex seeds it.
func (d *Data) grow(x, y float64) {
	if d.vertices == 0 {
		d.BBox = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
	} else {
		if x < d.BBox.MinX {
			d.BBox.MinX = x
		}
		if y < d.BBox.MinY {
			d.BBox.MinY = y
		}
		if x > d.BBox.MaxX {
			d.BBox.MaxX = x
		}
		if y > d.BBox.MaxY {
			d.BBox.MaxY = y
		}
	}
	d.vertices++
}
