package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb/geojson"

	"geodraw/internal/editor"
	"geodraw/internal/geom"
	"geodraw/internal/proj"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2)
		}
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.pasteMode {
		return m.updatePasteKey(msg)
	}
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.setMode(editor.ModeReadOnly)
	case "s":
		m.setMode(editor.ModeSelectFeature)
	case "e":
		m.setMode(editor.ModeEditVertex)
	case "p":
		m.setMode(editor.ModeDrawPoint)
	case "d":
		m.setMode(editor.ModeDrawPath)
	case "g":
		m.setMode(editor.ModeDrawPolygon)
	case "+", "=":
		if m.sess.view.Zoom < 64 {
			m.sess.view.Zoom *= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.sess.view.Zoom)
		}
	case "-", "_":
		if m.sess.view.Zoom > 0.05 {
			m.sess.view.Zoom /= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.sess.view.Zoom)
		}
	case "up":
		m.sess.view.OffsetY -= 1
	case "down":
		m.sess.view.OffsetY += 1
	case "left":
		m.sess.view.OffsetX -= 2
	case "right":
		m.sess.view.OffsetX += 2
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.l.SetSize(28-2, m.height-1-2)
		}
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	case "v":
		m.pasteMode = true
		m.ta.SetValue("")
		m.ta.Focus()
		m.status = "paste GeoJSON"
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshAttrs()
		}
	case "w":
		m.writeWorkingSet()
	case "x":
		if m.sess.ed.DeleteSelected() {
			m.status = "feature deleted"
		} else {
			m.status = "nothing selected"
		}
	case "i":
		if t := m.hoverTarget(); t.Kind == editor.TargetVertex && m.sess.ed.InsertVertex(t.Vertex) {
			m.status = fmt.Sprintf("vertex inserted at %d", t.Vertex)
		}
	case "backspace":
		if t := m.hoverTarget(); t.Kind == editor.TargetVertex && m.sess.ed.RemoveVertex(t.Vertex) {
			m.status = fmt.Sprintf("vertex %d removed", t.Vertex)
		}
	case "h":
		m.helpVisible = !m.helpVisible
	}
	return m, nil
}

func (m Model) updatePasteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.ta.Value())
		if raw == "" {
			m.status = "paste: empty"
			return m, nil
		}
		feats, err := parsePasted(raw)
		if err != nil {
			m.status = "geojson error: " + err.Error()
			return m, nil
		}
		if len(feats) == 0 {
			m.status = "paste: no supported geometries"
			return m, nil
		}
		m.sess.ed.AppendFeatures(feats...)
		m.fitToWorkingSet()
		m.status = fmt.Sprintf("added %d feature(s)", len(feats))
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// parsePasted accepts a FeatureCollection or a single Feature.
func parsePasted(raw string) ([]*geom.Feature, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection([]byte(raw))
		if err != nil {
			return nil, err
		}
		return geom.CollectionFromGeoJSON(fc).Features(), nil
	case "Feature":
		f, err := geojson.UnmarshalFeature([]byte(raw))
		if err != nil {
			return nil, err
		}
		if hydrated := geom.FromGeoJSON(f); hydrated != nil {
			return []*geom.Feature{hydrated}, nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported geojson type %q", probe.Type)
	}
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.pasteMode || m.showAttrs {
		return m, nil
	}
	lay := m.layout()
	cx := msg.X - lay.mapX
	cy := msg.Y - lay.mapY
	inside := cx >= 0 && cx < lay.mapW && cy >= 0 && cy < lay.mapH

	at := proj.Screen{
		X: float64(cx * proj.MicroPerCellX),
		Y: float64(cy * proj.MicroPerCellY),
	}
	if inside {
		m.hovering = true
		m.hoverCellX, m.hoverCellY = cx, cy
		geo := m.sess.view.Unproject(at)
		m.hoverLon, m.hoverLat = geo[0], geo[1]
	} else {
		m.hovering = false
	}

	sel, _ := m.sess.ed.Selected()
	hit := editor.Classify(sel, m.sess.hits.At(cx, cy))

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.sess.view.Zoom < 64 {
				m.sess.view.Zoom *= 1.2
			}
		case tea.MouseButtonWheelDown:
			if m.sess.view.Zoom > 0.05 {
				m.sess.view.Zoom /= 1.2
			}
		case tea.MouseButtonLeft:
			if inside {
				m.pressed = true
				m.sess.ed.Press(m.mode, hit, at)
			}
		}
	case tea.MouseActionMotion:
		if m.pressed {
			m.sess.ed.Move(m.mode, at)
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.sess.ed.Release(m.mode)
			if inside {
				// the terminal has no distinct click event; the editor's
				// drag suppression makes release-as-click safe
				m.sess.ed.Click(m.mode, hit, at)
			}
		}
	}
	return m, nil
}

func (m *Model) setMode(mode editor.Mode) {
	m.mode = mode
	m.status = "mode: " + mode.String()
	m.sess.log.Debug().Stringer("mode", mode).Msg("mode changed")
}

// hoverTarget reads the rendered-element identity under the pointer.
func (m Model) hoverTarget() editor.Target {
	if !m.hovering {
		return editor.Target{}
	}
	return m.sess.hits.At(m.hoverCellX, m.hoverCellY)
}

func (m *Model) fitToWorkingSet() {
	if b, ok := m.sess.ed.Features().Bound(); ok {
		m.sess.view.Fit(b)
	}
}
