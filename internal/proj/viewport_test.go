package proj

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(orb.Bound{Min: orb.Point{-10, -5}, Max: orb.Point{10, 5}}, 80, 24)
	pts := []orb.Point{{0, 0}, {-10, -5}, {10, 5}, {3.25, -1.5}}
	for _, pt := range pts {
		back := v.Unproject(v.Project(pt))
		if math.Abs(back[0]-pt[0]) > 1e-9 || math.Abs(back[1]-pt[1]) > 1e-9 {
			t.Errorf("round trip of %v = %v", pt, back)
		}
	}
}

func TestViewportRoundTripZoomPan(t *testing.T) {
	v := NewViewport(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 100}}, 60, 20)
	v.Zoom = 2.5
	v.OffsetX = 4
	v.OffsetY = -2
	pt := orb.Point{42, 17}
	back := v.Unproject(v.Project(pt))
	if math.Abs(back[0]-pt[0]) > 1e-9 || math.Abs(back[1]-pt[1]) > 1e-9 {
		t.Errorf("round trip of %v = %v", pt, back)
	}
}

func TestViewportYGrowsDownward(t *testing.T) {
	v := NewViewport(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, 10, 10)
	top := v.Project(orb.Point{0, 1})
	bottom := v.Project(orb.Point{0, 0})
	if top.Y >= bottom.Y {
		t.Errorf("north latitude projects below south: top=%v bottom=%v", top, bottom)
	}
}

func TestViewportDegenerateBounds(t *testing.T) {
	// single-point bounds get padded so the transform stays usable
	v := NewViewport(orb.Bound{Min: orb.Point{5, 5}, Max: orb.Point{5, 5}}, 10, 10)
	s := v.Project(orb.Point{5, 5})
	if math.IsNaN(s.X) || math.IsInf(s.X, 0) || math.IsNaN(s.Y) || math.IsInf(s.Y, 0) {
		t.Errorf("projection of padded degenerate bounds = %v", s)
	}
}

func TestViewportZeroZoomStaysFinite(t *testing.T) {
	// a Viewport built without NewViewport has Zoom == 0
	v := Viewport{Bounds: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, W: 10, H: 10}
	back := v.Unproject(Screen{X: 3, Y: 4})
	if math.IsNaN(back[0]) || math.IsInf(back[0], 0) || math.IsNaN(back[1]) || math.IsInf(back[1], 0) {
		t.Errorf("Unproject with zero zoom = %v", back)
	}
	pt := orb.Point{0.3, 0.7}
	rt := v.Unproject(v.Project(pt))
	if math.Abs(rt[0]-pt[0]) > 1e-9 || math.Abs(rt[1]-pt[1]) > 1e-9 {
		t.Errorf("round trip with zero zoom of %v = %v", pt, rt)
	}
}

func TestViewportFitResets(t *testing.T) {
	v := NewViewport(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, 10, 10)
	v.Zoom = 4
	v.OffsetX, v.OffsetY = 3, 3
	v.Fit(orb.Bound{Min: orb.Point{-2, -2}, Max: orb.Point{2, 2}})
	if v.Zoom != 1.0 || v.OffsetX != 0 || v.OffsetY != 0 {
		t.Error("Fit did not reset zoom and pan")
	}
}

func TestMercatorLonLat(t *testing.T) {
	const size = 360.0

	lon, lat := MercatorLonLat(size/2, size/2, size)
	if math.Abs(lon) > 1e-9 || math.Abs(lat) > 1e-9 {
		t.Errorf("center maps to (%v, %v), want (0, 0)", lon, lat)
	}

	lon, _ = MercatorLonLat(0, size/2, size)
	if math.Abs(lon+180) > 1e-9 {
		t.Errorf("west edge lon = %v, want -180", lon)
	}

	_, lat = MercatorLonLat(0, size*10, size)
	if lat != MaxLat {
		t.Errorf("far north lat = %v, want clamped to %v", lat, MaxLat)
	}
	_, lat = MercatorLonLat(0, -size*10, size)
	if lat != -MaxLat {
		t.Errorf("far south lat = %v, want clamped to %v", lat, -MaxLat)
	}
}
