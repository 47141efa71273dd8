package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/paulmach/orb/geojson"

	"geodraw/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".geojson" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no geojson files in current directory"
	}
}

// loadPath rehydrates the working set from a GeoJSON file, discarding the
// current features.
func (m *Model) loadPath(p string) {
	data, err := os.ReadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		m.status = "geojson error: " + err.Error()
		return
	}
	c := geom.CollectionFromGeoJSON(fc)
	m.sess.ed.SetFeatures(c, "")
	m.fitToWorkingSet()
	m.status = fmt.Sprintf("loaded: %s  features: %d (skipped %d)",
		filepath.Base(p), c.Len(), len(fc.Features)-c.Len())
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// writeWorkingSet exports the working set to the configured output file.
func (m *Model) writeWorkingSet() {
	fc := m.sess.ed.Features().ToGeoJSON()
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	if err := os.WriteFile(m.outPath, data, 0644); err != nil {
		m.status = "write error: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("wrote %d feature(s) to %s", len(fc.Features), m.outPath)
	m.sess.log.Info().Str("path", m.outPath).Int("features", len(fc.Features)).Msg("working set exported")
}
