package tui

// canvas is a braille micro-pixel buffer: every terminal cell carries a 2x4
// dot grid addressed in micro coordinates.
type canvas struct {
	w, h int // in cells
	mask []uint8
}

// dot bit for micro offset (rx, ry) inside a cell, per the braille block
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, mask: make([]uint8, w*h)}
}

func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.mask[cy*c.w+cx] |= brailleBits[rx][ry]
}

// stroke draws a segment on the microgrid using Bresenham
func (c *canvas) stroke(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *canvas) render() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			m := c.mask[y*c.w+x]
			if m == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(m))
			}
		}
		out[y] = string(row)
	}
	return out
}
