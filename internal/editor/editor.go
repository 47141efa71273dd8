package editor

import (
	"github.com/paulmach/orb/geojson"

	"geodraw/internal/geom"
	"geodraw/internal/proj"
)

// DragThreshold is the squared screen displacement past which a press is a
// drag, not a click.
const DragThreshold = 5.0

// Editor routes pointer gestures to mutations of the working set. All
// handling is synchronous and single-threaded: the host delivers one
// gesture at a time.
//
// Without a projection the editor contains events but mutates nothing.
type Editor struct {
	features   *geom.Collection
	selectedID string

	draggingVertex int // -1 when no vertex drag is in flight
	dragStart      proj.Screen
	isDragging     bool
	hasDragged     bool

	projection proj.Projection

	// OnUpdate receives the full exported working set on every commit.
	OnUpdate func(fc *geojson.FeatureCollection)
	// OnSelect receives the selected feature id, "" when cleared.
	OnSelect func(id string)
}

// New creates an editor over an empty working set.
func New(p proj.Projection) *Editor {
	return &Editor{
		features:       geom.NewCollection(),
		draggingVertex: -1,
		projection:     p,
	}
}

// SetProjection swaps the coordinate transform (e.g. after a viewport
// refit).
func (e *Editor) SetProjection(p proj.Projection) { e.projection = p }

// Features exposes the working set for rendering.
func (e *Editor) Features() *geom.Collection { return e.features }

// SelectedID returns the current selection id, "" for none.
func (e *Editor) SelectedID() string { return e.selectedID }

// Selected resolves the selection. A stale id yields (nil, -1): selection
// is a lookup key, not an owning pointer.
func (e *Editor) Selected() (*geom.Feature, int) {
	return e.features.ByID(e.selectedID)
}

// SetFeatures rehydrates the working set wholesale, discarding prior
// feature instances, and resets any gesture in flight.
func (e *Editor) SetFeatures(c *geom.Collection, selectedID string) {
	if c == nil {
		c = geom.NewCollection()
	}
	e.features = c
	e.draggingVertex = -1
	e.isDragging = false
	e.hasDragged = false
	if _, i := c.ByID(selectedID); i < 0 {
		selectedID = ""
	}
	e.selectedID = selectedID
}

// AppendFeatures adds externally supplied features to the working set and
// commits.
func (e *Editor) AppendFeatures(feats ...*geom.Feature) {
	if len(feats) == 0 {
		return
	}
	for _, f := range feats {
		e.features.Append(f)
	}
	e.commit()
}

// InsertVertex inserts a midpoint vertex at i on the selected feature and
// commits on success.
func (e *Editor) InsertVertex(i int) bool {
	f, _ := e.Selected()
	if f == nil || !f.InsertPoint(i) {
		return false
	}
	e.commit()
	return true
}

// RemoveVertex removes vertex i from the selected feature and commits on
// success.
func (e *Editor) RemoveVertex(i int) bool {
	f, _ := e.Selected()
	if f == nil || !f.RemovePoint(i) {
		return false
	}
	e.commit()
	return true
}

// DeleteSelected drops the selected feature from the working set and
// commits. Host convenience, not part of the gesture protocol.
func (e *Editor) DeleteSelected() bool {
	if !e.features.RemoveByID(e.selectedID) {
		return false
	}
	e.changeSelection("")
	e.commit()
	return true
}

// Press begins a gesture. A vertex target starts a vertex drag; anything
// else just arms click-vs-drag tracking. The drag-suppression flag resets
// here, not on click, so a trailing click after a drag stays suppressed.
func (e *Editor) Press(mode Mode, hit Hit, at proj.Screen) {
	if mode == ModeReadOnly || e.projection == nil {
		return
	}
	e.dragStart = at
	e.isDragging = true
	e.hasDragged = false
	e.draggingVertex = -1
	if mode == ModeSelectFeature {
		return
	}
	if v, ok := hit.(VertexHit); ok {
		if f, _ := e.Selected(); f != nil && v.Index >= 0 && v.Index < len(f.Points) {
			e.draggingVertex = v.Index
		}
	}
}

// Move updates an in-flight gesture. Crossing the displacement threshold
// marks the gesture a drag; a vertex drag repositions the vertex in
// geographic space on every tick past the threshold, without committing.
// Below the threshold the gesture is still a click and touches nothing.
func (e *Editor) Move(mode Mode, at proj.Screen) {
	if mode == ModeReadOnly || e.projection == nil || !e.isDragging {
		return
	}
	dx := at.X - e.dragStart.X
	dy := at.Y - e.dragStart.Y
	if dx*dx+dy*dy > DragThreshold {
		e.hasDragged = true
	}
	if e.draggingVertex < 0 || !e.hasDragged || mode == ModeSelectFeature {
		return
	}
	if f, _ := e.Selected(); f != nil {
		f.ReplacePoint(e.draggingVertex, e.projection.Unproject(at))
	}
}

// Release ends the gesture. A vertex drag that crossed the threshold
// commits exactly once here; a stationary press on a vertex stays a
// click and commits nothing.
func (e *Editor) Release(mode Mode) {
	if mode == ModeReadOnly {
		return
	}
	e.isDragging = false
	wasVertexDrag := e.draggingVertex >= 0
	e.draggingVertex = -1
	if wasVertexDrag && e.hasDragged {
		e.commit()
	}
}

// Click routes a click by mode and hit target. Suppressed entirely when
// the preceding press/move crossed the drag threshold.
func (e *Editor) Click(mode Mode, hit Hit, at proj.Screen) {
	if mode == ModeReadOnly || e.projection == nil {
		return
	}
	if e.hasDragged {
		return
	}
	switch mode {
	case ModeDrawPoint:
		f := geom.New(geom.NewID(), geom.TypePoint, nil)
		f.AddPoint(e.projection.Unproject(at))
		e.features.Append(f)
		e.changeSelection(f.ID)
		e.commit()
	case ModeDrawPath, ModeDrawPolygon:
		e.clickDraw(mode, hit, at)
	default:
		e.clickSelect(mode, hit)
	}
}

func (e *Editor) clickDraw(mode Mode, hit Hit, at proj.Screen) {
	sel, _ := e.Selected()

	if v, ok := hit.(VertexHit); ok && v.Op == OpIntersect && sel != nil {
		if sel.ClosePath() {
			e.commit()
		}
		return
	}

	if sel != nil && sel.Closed {
		// drawing continues elsewhere: drop the finished selection
		e.changeSelection("")
		return
	}

	if sel != nil {
		sel.AddPoint(e.projection.Unproject(at))
		if mode == ModeDrawPath && len(sel.Points) >= 2 {
			e.commit()
		}
		return
	}

	t := geom.TypeLineString
	if mode == ModeDrawPolygon {
		t = geom.TypePolygon
	}
	f := geom.New(geom.NewID(), t, nil)
	f.AddPoint(e.projection.Unproject(at))
	e.features.Append(f)
	e.changeSelection(f.ID)
}

func (e *Editor) clickSelect(mode Mode, hit Hit) {
	fh, ok := hit.(FeatureHit)
	if !ok {
		return
	}
	f := e.features.At(fh.Index)
	if f == nil || f.ID == e.selectedID {
		return
	}
	// selection is replaceable only in select/edit modes, or when empty
	if e.selectedID == "" || mode == ModeSelectFeature || mode == ModeEditVertex {
		e.changeSelection(f.ID)
	}
}

func (e *Editor) changeSelection(id string) {
	if id == e.selectedID {
		return
	}
	e.selectedID = id
	if e.OnSelect != nil {
		e.OnSelect(id)
	}
}

func (e *Editor) commit() {
	if e.OnUpdate != nil {
		e.OnUpdate(e.features.ToGeoJSON())
	}
}
