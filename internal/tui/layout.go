package tui

// layoutInfo is the shared geometry of the header/sidebar/map/footer
// arrangement. Update and View must agree on it for pointer cells to land
// on the right canvas cells.
type layoutInfo struct {
	sidebarW int
	headerH  int
	footerH  int
	contentW int
	contentH int
	mapX     int
	mapY     int
	mapW     int
	mapH     int
}

func (m Model) layout() layoutInfo {
	lay := layoutInfo{headerH: 1, footerH: 2}
	if m.showSidebar {
		lay.sidebarW = 28
	}
	lay.contentH = m.height - lay.headerH - lay.footerH
	if lay.contentH < 4 {
		lay.contentH = 4
	}
	lay.contentW = max(10, m.width)

	lay.mapW = lay.contentW - lay.sidebarW - 1
	if lay.mapW < 10 {
		lay.mapW = 10
	}
	lay.mapH = lay.contentH
	lay.mapX = lay.sidebarW
	if m.showSidebar {
		lay.mapX++
	}
	lay.mapY = lay.headerH
	return lay
}
