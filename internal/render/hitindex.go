package render

import "geodraw/internal/editor"

// HitIndex records rendered-element identity per terminal cell. The host
// writes targets while painting and reads them back on pointer events;
// this stands in for the element id/class metadata a DOM renderer would
// carry. Later writes win, so paint order doubles as hit priority.
type HitIndex struct {
	w, h  int
	cells []editor.Target
}

// NewHitIndex returns a w x h index with every cell set to background.
func NewHitIndex(w, h int) *HitIndex {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &HitIndex{w: w, h: h, cells: make([]editor.Target, w*h)}
}

// Set writes the target at cell (x, y). Out-of-range writes are dropped.
func (hi *HitIndex) Set(x, y int, t editor.Target) {
	if x < 0 || y < 0 || x >= hi.w || y >= hi.h {
		return
	}
	hi.cells[y*hi.w+x] = t
}

// Stamp writes the target over a (2r+1)-square block, widening small
// elements like vertex handles into comfortably clickable targets.
func (hi *HitIndex) Stamp(x, y, r int, t editor.Target) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			hi.Set(x+dx, y+dy, t)
		}
	}
}

// Line stamps the target along the cell-space segment from (x0, y0) to
// (x1, y1) with Bresenham stepping.
func (hi *HitIndex) Line(x0, y0, x1, y1 int, t editor.Target) {
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
		hi.Set(x0, y0, t)
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

// At reads the target at cell (x, y); out-of-range reads are background.
func (hi *HitIndex) At(x, y int) editor.Target {
	if x < 0 || y < 0 || x >= hi.w || y >= hi.h {
		return editor.Target{}
	}
	return hi.cells[y*hi.w+x]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
