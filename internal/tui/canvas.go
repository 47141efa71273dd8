package tui

import (
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"geodraw/internal/editor"
	"geodraw/internal/proj"
	"geodraw/internal/render"
)

// renderCanvas paints the working set into a braille canvas and rebuilds
// the hit index alongside, so the next pointer event resolves against
// exactly what is on screen.
func (m Model) renderCanvas(w, h int) string {
	m.sess.view.Resize(w, h)
	br := newBrailleBuf(w, h)
	hits := render.NewHitIndex(w, h)
	ed := m.sess.ed

	for i, f := range ed.Features().Features() {
		t := editor.Target{Kind: editor.TargetFeature, Feature: i}
		segs := render.Segments(f, m.sess.view)
		if len(segs) == 0 {
			if s, ok := render.PointScreen(f, m.sess.view); ok {
				br.setPixel(int(s.X), int(s.Y))
				hits.Stamp(cellX(s), cellY(s), 1, t)
			}
			continue
		}
		if f.Closed {
			fillRing(br, f.Points, m.sess.view, h)
		}
		for _, s := range segs {
			br.drawLineMicro(int(s[0].X), int(s[0].Y), int(s[1].X), int(s[1].Y))
			hits.Line(cellX(s[0]), cellY(s[0]), cellX(s[1]), cellY(s[1]), t)
		}
	}

	lines := br.toLines()

	// Vertex handles for the selected feature overlay everything and take
	// hit priority over feature cells.
	overlays := map[[2]int]string{}
	sel, _ := ed.Selected()
	if sel != nil && m.mode != editor.ModeReadOnly && m.mode != editor.ModeSelectFeature {
		for _, hdl := range render.Handles(sel, m.sess.view) {
			cx, cy := cellX(hdl.Pos), cellY(hdl.Pos)
			hits.Stamp(cx, cy, 1, editor.Target{Kind: editor.TargetVertex, Vertex: hdl.Index})
			if cx < 0 || cx >= w || cy < 0 || cy >= h {
				continue
			}
			if hdl.Op == editor.OpIntersect {
				overlays[[2]int{cx, cy}] = closeStyle.Render("◉")
			} else {
				overlays[[2]int{cx, cy}] = handleStyle.Render("◯")
			}
		}
	}

	m.sess.hits = hits

	if len(overlays) == 0 {
		return strings.Join(lines, "\n")
	}
	for y := range lines {
		row := []rune(lines[y])
		var b strings.Builder
		touched := false
		for x, r := range row {
			if g, ok := overlays[[2]int{x, y}]; ok {
				b.WriteString(g)
				touched = true
			} else {
				b.WriteRune(r)
			}
		}
		if touched {
			lines[y] = b.String()
		}
	}
	return strings.Join(lines, "\n")
}

func cellX(s proj.Screen) int { return int(s.X) / proj.MicroPerCellX }
func cellY(s proj.Screen) int { return int(s.Y) / proj.MicroPerCellY }

// fillRing scanline-fills a closed ring on the microgrid, even-odd rule.
func fillRing(br *brailleBuf, pts []orb.Point, view *proj.Viewport, hCells int) {
	ring := make([][2]int, 0, len(pts))
	for _, pt := range pts {
		s := view.Project(pt)
		ring = append(ring, [2]int{int(s.X), int(s.Y)})
	}
	if len(ring) < 3 {
		return
	}
	hMic := hCells * proj.MicroPerCellY
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xstart, xend := xs[i], xs[i+1]
			if xstart > xend {
				xstart, xend = xend, xstart
			}
			for xMic := max(0, xstart); xMic <= xend; xMic++ {
				br.setPixel(xMic, yMic)
			}
		}
	}
}
