// Package proj converts between geographic coordinates and screen
// coordinates. The editor consumes the Projection interface as a black
// box; Viewport is the implementation the terminal host uses.
package proj

import "github.com/paulmach/orb"

// Screen is a device-space coordinate. For the terminal host the unit is
// the braille micro-pixel (2 per cell horizontally, 4 vertically).
type Screen struct {
	X float64
	Y float64
}

// Projection maps geographic coordinates to screen space and back. Both
// directions are pure and synchronous with no failure mode.
type Projection interface {
	Project(pt orb.Point) Screen
	Unproject(s Screen) orb.Point
}
