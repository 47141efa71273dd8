// Package editor is the interaction engine: it owns the working set and
// selection, routes pointer gestures to geometry mutations, and notifies
// the host on every commit. The current mode is supplied by the host with
// every call, never stored, so behavior is a function of
// (mode, internal sub-state, event).
package editor

import "fmt"

// Mode selects which gesture behaviors are active.
type Mode int

const (
	// ModeReadOnly suppresses all gesture handling.
	ModeReadOnly Mode = iota
	// ModeSelectFeature allows feature selection only.
	ModeSelectFeature
	// ModeEditVertex enables selection and vertex dragging.
	ModeEditVertex
	// ModeDrawPoint creates a complete point feature per click.
	ModeDrawPoint
	// ModeDrawPath draws line features, auto-committing at 2 vertices.
	ModeDrawPath
	// ModeDrawPolygon draws ring features, open until explicitly closed.
	ModeDrawPolygon
)

func (m Mode) String() string {
	switch m {
	case ModeReadOnly:
		return "read-only"
	case ModeSelectFeature:
		return "select"
	case ModeEditVertex:
		return "edit-vertex"
	case ModeDrawPoint:
		return "draw-point"
	case ModeDrawPath:
		return "draw-path"
	case ModeDrawPolygon:
		return "draw-polygon"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a config/flag string to a mode.
func ParseMode(s string) (Mode, error) {
	for m := ModeReadOnly; m <= ModeDrawPolygon; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeReadOnly, fmt.Errorf("unknown mode %q", s)
}

// Drawing reports whether the mode creates new features.
func (m Mode) Drawing() bool {
	return m == ModeDrawPoint || m == ModeDrawPath || m == ModeDrawPolygon
}
