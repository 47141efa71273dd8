package tui

import "geodraw/internal/proj"

// brailleBits maps a micro-pixel offset within a cell to its dot bit in
// the braille block. Rows 0-2 sit in the low six bits, row 3 in the top
// two (U+2800 layout).
var brailleBits = [proj.MicroPerCellY][proj.MicroPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleBuf is a high-resolution drawing surface: each terminal cell
// carries a micro-pixel mask rendered as a braille glyph. Micro
// coordinates follow the proj micro-grid, so viewport projections land
// on it directly.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets the micro-pixel at micro coords; out-of-range is dropped.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/proj.MicroPerCellX, mx%proj.MicroPerCellX
	cy, ry := my/proj.MicroPerCellY, my%proj.MicroPerCellY
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[ry][rx]
}

// drawLineMicro draws a line on the micro-grid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
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

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
