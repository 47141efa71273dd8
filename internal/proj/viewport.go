package proj

import "github.com/paulmach/orb"

// Microgrid density per terminal cell.
const (
	MicroPerCellX = 2
	MicroPerCellY = 4
)

// Viewport projects lon/lat into the braille micro-grid of a terminal map
// area, with zoom applied around the viewport center and pan applied in
// whole cells. The transform is invertible so pointer positions map back
// to geographic coordinates.
type Viewport struct {
	Bounds  orb.Bound
	Zoom    float64
	OffsetX int // pan, in cells
	OffsetY int
	W       int // map area size, in cells
	H       int
}

// NewViewport fits the given bounds into a w x h cell area. Degenerate
// bounds (single point, empty) are padded so the transform stays
// invertible.
func NewViewport(bounds orb.Bound, w, h int) *Viewport {
	return &Viewport{Bounds: padBound(bounds), Zoom: 1.0, W: max(w, 1), H: max(h, 1)}
}

// Resize sets the cell dimensions of the map area.
func (v *Viewport) Resize(w, h int) {
	v.W, v.H = max(w, 1), max(h, 1)
}

// Fit recenters on new bounds and resets zoom and pan.
func (v *Viewport) Fit(bounds orb.Bound) {
	v.Bounds = padBound(bounds)
	v.Zoom = 1.0
	v.OffsetX, v.OffsetY = 0, 0
}

// zoom treats a zero or negative factor as 1 so a zero-value Viewport
// cannot divide by zero in Unproject.
func (v *Viewport) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

func padBound(b orb.Bound) orb.Bound {
	if b.Max[0] <= b.Min[0] {
		b.Min[0] -= 1
		b.Max[0] += 1
	}
	if b.Max[1] <= b.Min[1] {
		b.Min[1] -= 1
		b.Max[1] += 1
	}
	return b
}

// Project maps lon/lat to micro-pixel screen coordinates, y growing
// downward.
func (v *Viewport) Project(pt orb.Point) Screen {
	nx := (pt[0] - v.Bounds.Min[0]) / (v.Bounds.Max[0] - v.Bounds.Min[0])
	ny := (pt[1] - v.Bounds.Min[1]) / (v.Bounds.Max[1] - v.Bounds.Min[1])
	zx := 0.5 + (nx-0.5)*v.zoom()
	zy := 0.5 + (ny-0.5)*v.zoom()
	wMic := float64(v.W*MicroPerCellX - 1)
	hMic := float64(v.H*MicroPerCellY - 1)
	return Screen{
		X: zx*wMic + float64(v.OffsetX*MicroPerCellX),
		Y: (1-zy)*hMic + float64(v.OffsetY*MicroPerCellY),
	}
}

// Unproject inverts Project.
func (v *Viewport) Unproject(s Screen) orb.Point {
	wMic := float64(v.W*MicroPerCellX - 1)
	hMic := float64(v.H*MicroPerCellY - 1)
	zx := (s.X - float64(v.OffsetX*MicroPerCellX)) / wMic
	zy := 1 - (s.Y-float64(v.OffsetY*MicroPerCellY))/hMic
	nx := 0.5 + (zx-0.5)/v.zoom()
	ny := 0.5 + (zy-0.5)/v.zoom()
	return orb.Point{
		v.Bounds.Min[0] + nx*(v.Bounds.Max[0]-v.Bounds.Min[0]),
		v.Bounds.Min[1] + ny*(v.Bounds.Max[1]-v.Bounds.Min[1]),
	}
}
