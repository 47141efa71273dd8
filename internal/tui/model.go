// Package tui is the terminal host for the editing engine: it owns the
// mode, feeds pointer gestures into the editor, and paints the working
// set on a braille map canvas.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"

	"geodraw/internal/editor"
	"geodraw/internal/geom"
	"geodraw/internal/proj"
	"geodraw/internal/render"
)

// session holds the state shared across bubbletea's value-copied model:
// the engine itself and what its callbacks report.
type session struct {
	ed         *editor.Editor
	view       *proj.Viewport
	hits       *render.HitIndex
	log        zerolog.Logger
	lastCommit *geojson.FeatureCollection
}

// Options configure the host at startup.
type Options struct {
	Mode       editor.Mode
	Features   *geojson.FeatureCollection
	SelectedID string
	OutPath    string
	Logger     zerolog.Logger
}

type Model struct {
	width  int
	height int

	mode editor.Mode
	sess *session

	status      string
	helpVisible bool
	outPath     string

	// File explorer
	showSidebar bool
	cwd         string
	l           list.Model

	// paste mode (GeoJSON in)
	pasteMode bool
	ta        textarea.Model

	// feature table
	showAttrs bool
	tbl       table.Model

	// pointer state
	pressed    bool
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverLon   float64
	hoverLat   float64
}

func New(opts Options) Model {
	view := proj.NewViewport(orb.Bound{Min: orb.Point{-1, -1}, Max: orb.Point{1, 1}}, 80, 24)
	sess := &session{
		ed:   editor.New(view),
		view: view,
		hits: render.NewHitIndex(0, 0),
		log:  opts.Logger,
	}
	sess.ed.OnUpdate = func(fc *geojson.FeatureCollection) {
		sess.lastCommit = fc
		sess.log.Debug().Int("features", len(fc.Features)).Msg("working set committed")
	}
	sess.ed.OnSelect = func(id string) {
		sess.log.Debug().Str("id", id).Msg("selection changed")
	}

	if opts.Features != nil {
		c := geom.CollectionFromGeoJSON(opts.Features)
		sess.ed.SetFeatures(c, opts.SelectedID)
		if b, ok := c.Bound(); ok {
			view.Fit(b)
		}
	}

	outPath := opts.OutPath
	if outPath == "" {
		outPath = "out.geojson"
	}

	m := Model{
		mode:        opts.Mode,
		sess:        sess,
		status:      "geodraw ready",
		helpVisible: true,
		outPath:     outPath,
	}
	m.cwd, _ = os.Getwd()

	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste GeoJSON (Feature or FeatureCollection). Enter to add; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	// feature table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	m.refreshDir()
	return m
}

func (m Model) Init() tea.Cmd { return nil }
