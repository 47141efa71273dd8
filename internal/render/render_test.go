package render

import (
	"testing"

	"github.com/paulmach/orb"

	"geodraw/internal/editor"
	"geodraw/internal/geom"
	"geodraw/internal/proj"
)

type flatProj struct{}

func (flatProj) Project(p orb.Point) proj.Screen   { return proj.Screen{X: p[0], Y: p[1]} }
func (flatProj) Unproject(s proj.Screen) orb.Point { return orb.Point{s.X, s.Y} }

func TestPathStringEmpty(t *testing.T) {
	f := geom.New("f", geom.TypeLineString, nil)
	if got := PathString(f, flatProj{}); got != "" {
		t.Errorf("PathString(empty) = %q, want empty", got)
	}
	if got := PathString(nil, flatProj{}); got != "" {
		t.Errorf("PathString(nil) = %q, want empty", got)
	}
}

func TestPathStringLine(t *testing.T) {
	f := geom.New("f", geom.TypeLineString, nil)
	f.AddPoint(orb.Point{0, 0})
	f.AddPoint(orb.Point{1.5, 2})

	want := "M 0.00,0.00 L 1.50,2.00"
	if got := PathString(f, flatProj{}); got != want {
		t.Errorf("PathString = %q, want %q", got, want)
	}
}

func TestPathStringClosedRing(t *testing.T) {
	f := geom.New("f", geom.TypePolygon, nil)
	f.AddPoint(orb.Point{0, 0})
	f.AddPoint(orb.Point{1, 0})
	f.AddPoint(orb.Point{1, 1})
	f.ClosePath()

	want := "M 0.00,0.00 L 1.00,0.00 L 1.00,1.00 Z"
	if got := PathString(f, flatProj{}); got != want {
		t.Errorf("PathString = %q, want %q", got, want)
	}
}

func TestPointScreen(t *testing.T) {
	f := geom.New("f", geom.TypePoint, nil)
	if _, ok := PointScreen(f, flatProj{}); ok {
		t.Error("PointScreen on empty feature reported ok")
	}
	f.AddPoint(orb.Point{3, 4})
	s, ok := PointScreen(f, flatProj{})
	if !ok || s != (proj.Screen{X: 3, Y: 4}) {
		t.Errorf("PointScreen = %v, %v", s, ok)
	}
}

func TestHandlesTagClosingVertex(t *testing.T) {
	f := geom.New("f", geom.TypePolygon, nil)
	f.AddPoint(orb.Point{0, 0})
	f.AddPoint(orb.Point{1, 0})
	f.AddPoint(orb.Point{1, 1})

	hs := Handles(f, flatProj{})
	if len(hs) != 3 {
		t.Fatalf("len(Handles) = %d, want 3", len(hs))
	}
	if hs[0].Op != editor.OpIntersect {
		t.Error("first vertex of open ring not tagged as closing")
	}
	if hs[1].Op != editor.OpSet || hs[2].Op != editor.OpSet {
		t.Error("non-first vertices tagged as closing")
	}

	f.ClosePath()
	hs = Handles(f, flatProj{})
	if hs[0].Op != editor.OpSet {
		t.Error("closed ring still advertises a closing vertex")
	}
}

func TestSegments(t *testing.T) {
	f := geom.New("f", geom.TypeLineString, nil)
	f.AddPoint(orb.Point{0, 0})
	if Segments(f, flatProj{}) != nil {
		t.Error("single vertex produced segments")
	}
	f.AddPoint(orb.Point{1, 0})
	f.AddPoint(orb.Point{1, 1})
	if got := len(Segments(f, flatProj{})); got != 2 {
		t.Errorf("open feature segments = %d, want 2", got)
	}

	r := geom.New("r", geom.TypePolygon, nil)
	r.AddPoint(orb.Point{0, 0})
	r.AddPoint(orb.Point{1, 0})
	r.AddPoint(orb.Point{1, 1})
	r.ClosePath()
	segs := Segments(r, flatProj{})
	if len(segs) != 3 {
		t.Fatalf("closed ring segments = %d, want 3", len(segs))
	}
	last := segs[2]
	if last[1] != (proj.Screen{X: 0, Y: 0}) {
		t.Errorf("closing segment ends at %v, want ring start", last[1])
	}
}

func TestHitIndex(t *testing.T) {
	hi := NewHitIndex(4, 4)
	if hi.At(0, 0).Kind != editor.TargetBackground {
		t.Error("fresh index is not background")
	}

	ft := editor.Target{Kind: editor.TargetFeature, Feature: 2}
	hi.Set(1, 1, ft)
	if got := hi.At(1, 1); got != ft {
		t.Errorf("At(1,1) = %#v, want %#v", got, ft)
	}

	// out-of-range access is safe and reads background
	hi.Set(-1, 10, ft)
	if hi.At(-1, 10).Kind != editor.TargetBackground {
		t.Error("out-of-range read is not background")
	}
}

func TestHitIndexStamp(t *testing.T) {
	hi := NewHitIndex(5, 5)
	vt := editor.Target{Kind: editor.TargetVertex, Vertex: 1}
	hi.Stamp(2, 2, 1, vt)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if hi.At(x, y) != vt {
				t.Errorf("At(%d,%d) not stamped", x, y)
			}
		}
	}
	if hi.At(0, 0) == vt {
		t.Error("stamp leaked outside its radius")
	}
}

func TestHitIndexLine(t *testing.T) {
	hi := NewHitIndex(5, 5)
	ft := editor.Target{Kind: editor.TargetFeature, Feature: 0}
	hi.Line(0, 0, 4, 4, ft)
	for i := 0; i < 5; i++ {
		if hi.At(i, i) != ft {
			t.Errorf("diagonal cell (%d,%d) not written", i, i)
		}
	}
}
