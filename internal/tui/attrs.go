package tui

import (
	"fmt"
	"sort"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the feature table from the working set.
func (m *Model) refreshAttrs() {
	feats := m.sess.ed.Features().Features()
	if len(feats) == 0 {
		m.showAttrs = false
		m.status = "working set is empty"
		return
	}

	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 24},
		{Title: "type", Width: 12},
		{Title: "pts", Width: 5},
		{Title: "closed", Width: 7},
		{Title: "props", Width: 28},
	}
	rows := make([]table.Row, 0, len(feats))
	for i, f := range feats {
		marker := ""
		if f.ID == m.sess.ed.SelectedID() {
			marker = "*"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d%s", i+1, marker),
			f.ID,
			string(f.Type),
			fmt.Sprintf("%d", len(f.Points)),
			fmt.Sprintf("%v", f.Closed),
			propsSummary(f.Props),
		})
	}

	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func propsSummary(props map[string]interface{}) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	s := strings.Join(parts, " ")
	if len(s) > 28 {
		s = s[:25] + "..."
	}
	return s
}
