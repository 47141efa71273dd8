// Package render turns feature geometry plus a projection into renderable
// primitives. Everything here is a pure function of its inputs; painting
// and hit-testable element layout belong to the host.
package render

import (
	"fmt"
	"strings"

	"geodraw/internal/editor"
	"geodraw/internal/geom"
	"geodraw/internal/proj"
)

// PathString builds an SVG-style path command string for a line or ring:
// a move to the first projected vertex, a line segment per following
// vertex, and a close command when the ring is closed. Zero vertices yield
// an empty string.
func PathString(f *geom.Feature, p proj.Projection) string {
	if f == nil || len(f.Points) == 0 {
		return ""
	}
	var b strings.Builder
	for i, pt := range f.Points {
		s := p.Project(pt)
		verb := "L"
		if i == 0 {
			verb = "M"
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s %.2f,%.2f", verb, s.X, s.Y)
	}
	if f.Closed {
		b.WriteString(" Z")
	}
	return b.String()
}

// PointScreen projects a feature's first vertex, for point rendering.
func PointScreen(f *geom.Feature, p proj.Projection) (proj.Screen, bool) {
	if f == nil || len(f.Points) == 0 {
		return proj.Screen{}, false
	}
	return p.Project(f.Points[0]), true
}

// Handle is a per-vertex screen position with the classification tag the
// host attaches to make the vertex individually targetable.
type Handle struct {
	Pos   proj.Screen
	Index int
	Op    editor.VertexOp
}

// Handles projects every vertex of a feature. The first vertex of an open
// polygon with more than 2 points carries the ring-closing tag.
func Handles(f *geom.Feature, p proj.Projection) []Handle {
	if f == nil || len(f.Points) == 0 {
		return nil
	}
	hs := make([]Handle, len(f.Points))
	for i, pt := range f.Points {
		op := editor.OpSet
		if editor.ClosingVertex(f, i) {
			op = editor.OpIntersect
		}
		hs[i] = Handle{Pos: p.Project(pt), Index: i, Op: op}
	}
	return hs
}

// Segments projects a feature's vertices in order as micro-pixel pairs,
// including the closing segment for closed rings. The host's line
// rasterizer consumes these directly.
func Segments(f *geom.Feature, p proj.Projection) [][2]proj.Screen {
	n := len(f.Points)
	if n < 2 {
		return nil
	}
	pts := make([]proj.Screen, n)
	for i, pt := range f.Points {
		pts[i] = p.Project(pt)
	}
	segs := make([][2]proj.Screen, 0, n)
	for i := 1; i < n; i++ {
		segs = append(segs, [2]proj.Screen{pts[i-1], pts[i]})
	}
	if f.Closed {
		segs = append(segs, [2]proj.Screen{pts[n-1], pts[0]})
	}
	return segs
}
