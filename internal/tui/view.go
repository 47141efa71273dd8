package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(28-2, lay.contentH-2)
	}

	// Header
	header := titleStyle.Render(" geodraw ─ terminal map editor ")
	header = lipgloss.NewStyle().Width(lay.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lay.sidebarW).Render(m.l.View())
	}

	// Map viewport
	var mapView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, lay.contentW-6)
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(lay.mapW)
		m.ta.SetHeight(min(lay.mapH, 12))
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.ta.View())
	default:
		canvas := m.renderCanvas(lay.mapW, lay.mapH)
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(canvas)
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer: mode, selection, status, hover coords
	mode := modeStyle.Render(" [" + m.mode.String() + "] ")
	sel := ""
	if id := m.sess.ed.SelectedID(); id != "" {
		sel = dimStyle.Render("sel:" + id + " ")
	}
	status := dimStyle.Render(" " + m.status + " ")
	help := m.renderHelp()
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  lon=%.5f lat=%.5f  ", m.hoverLon, m.hoverLat))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, mode, sel, status, help)
	spacerW := max(0, lay.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lay.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"r/s/e modes",
		"p point",
		"d path",
		"g polygon",
		"i insert",
		"x delete",
		"w write",
		"Tab files",
		"v paste",
		"a attrs",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
