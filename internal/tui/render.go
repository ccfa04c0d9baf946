package tui

import (
	"sort"
	"strings"
)

// projectMicro maps an (x, y) coordinate into the 2x4-per-cell microgrid,
// applying zoom around the bbox center plus the pan offsets.
func (m Model) projectMicro(x, y float64, w, h int) (int, int, bool) {
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		// degenerate extent (single point): park it mid-screen
		if bb.MaxX == bb.MinX && bb.MaxY == bb.MinY {
			return w + m.offsetX*2, h*2 + m.offsetY*4, true
		}
		return 0, 0, false
	}
	nx := (x - bb.MinX) / (bb.MaxX - bb.MinX)
	ny := (y - bb.MinY) / (bb.MaxY - bb.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

func (m Model) renderMap(w, h int) string {
	c := newCanvas(w, h)

	if m.showPolys {
		for _, poly := range m.data.Polygons {
			var rings [][][2]int
			for _, ring := range poly {
				var mic [][2]int
				for _, p := range ring {
					mx, my, ok := m.projectMicro(p[0], p[1], w, h)
					if !ok {
						continue
					}
					mic = append(mic, [2]int{mx, my})
				}
				if len(mic) >= 3 {
					rings = append(rings, mic)
				}
			}
			if len(rings) == 0 {
				continue
			}
			// even-odd fill on the outer ring, holes left to the edge pass
			fillRing(c, rings[0], h*4)
			for _, ring := range rings {
				for i := range ring {
					a, b := ring[i], ring[(i+1)%len(ring)]
					c.stroke(a[0], a[1], b[0], b[1])
				}
			}
		}
	}

	if m.showLines {
		for _, ls := range m.data.Lines {
			var prev *[2]int
			for _, p := range ls {
				mx, my, ok := m.projectMicro(p[0], p[1], w, h)
				if !ok {
					continue
				}
				if prev != nil {
					c.stroke(prev[0], prev[1], mx, my)
				}
				prev = &[2]int{mx, my}
			}
		}
	}

	if m.showPoints {
		for _, p := range m.data.Points {
			mx, my, ok := m.projectMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			c.set(mx, my)
		}
	}

	return strings.Join(c.render(), "\n")
}

// fillRing scanlines a ring on the microgrid with the even-odd rule.
func fillRing(c *canvas, ring [][2]int, hMic int) {
	for y := 0; y < hMic; y++ {
		var xs []int
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			if (y >= a[1] && y < b[1]) || (y >= b[1] && y < a[1]) {
				t := float64(y-a[1]) / float64(b[1]-a[1])
				xs = append(xs, int(float64(a[0])+t*float64(b[0]-a[0])))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= xs[i+1]; x++ {
				c.set(x, y)
			}
		}
	}
}
