// Package geom holds the editable feature model: geometry entities with
// identity and attributes, their vertex mutation primitives, and conversion
// to and from GeoJSON.
package geom

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Type is the geometry kind a feature was created as. It is fixed at
// creation; export derives the output kind from the live vertex state
// instead (see ToGeoJSON).
type Type string

const (
	TypePoint      Type = "Point"
	TypeLineString Type = "LineString"
	TypePolygon    Type = "Polygon"
)

// Feature is a single editable geometric entity. Points hold geographic
// coordinates, never screen coordinates. For polygons the closing vertex
// (duplicate of the first) is implicit and never stored.
type Feature struct {
	ID     string
	Type   Type
	Points []orb.Point
	Closed bool // polygons only; never true with fewer than 3 points
	Props  geojson.Properties
}

var idSeq atomic.Uint64

// NewID returns a process-unique feature id. Time-seeded so ids from
// separate runs are unlikely to collide in exported files.
func NewID() string {
	return fmt.Sprintf("f-%d-%d", time.Now().UnixNano(), idSeq.Add(1))
}

// New creates an empty feature. An empty point list is a transient state:
// the caller is expected to place the first vertex immediately.
func New(id string, t Type, props geojson.Properties) *Feature {
	if props == nil {
		props = geojson.Properties{}
	}
	return &Feature{ID: id, Type: t, Props: props}
}

// FromGeoJSON builds a feature from an interchange record. Supported
// geometries are Point, LineString and Polygon (outer ring only, trailing
// closing vertex stripped, marked closed). Anything else returns nil;
// batch callers skip nils.
func FromGeoJSON(src *geojson.Feature) *Feature {
	if src == nil || src.Geometry == nil {
		return nil
	}
	f := &Feature{Props: geojson.Properties{}}
	switch g := src.Geometry.(type) {
	case orb.Point:
		f.Type = TypePoint
		f.Points = []orb.Point{g}
	case orb.LineString:
		f.Type = TypeLineString
		f.Points = append(f.Points, g...)
	case orb.Polygon:
		if len(g) == 0 {
			return nil
		}
		f.Type = TypePolygon
		ring := g[0]
		if n := len(ring); n > 1 && ring[0] == ring[n-1] {
			ring = ring[:n-1]
		}
		f.Points = append(f.Points, ring...)
		f.Closed = len(f.Points) >= 3
	default:
		return nil
	}
	for k, v := range src.Properties {
		if k == "id" || k == "isClosed" {
			continue
		}
		f.Props[k] = v
	}
	f.ID = featureID(src)
	if f.ID == "" {
		f.ID = NewID()
	}
	return f
}

// featureID recovers a stable id from the record: the "id" property wins,
// then the GeoJSON top-level id.
func featureID(src *geojson.Feature) string {
	if s, ok := src.Properties["id"].(string); ok && s != "" {
		return s
	}
	switch id := src.ID.(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	}
	return ""
}

// AddPoint appends a vertex. Always succeeds.
func (f *Feature) AddPoint(pt orb.Point) {
	f.Points = append(f.Points, pt)
}

// RemovePoint removes the vertex at i. A closed polygon that drops below
// 3 vertices is forced open again.
func (f *Feature) RemovePoint(i int) bool {
	if i < 0 || i >= len(f.Points) {
		return false
	}
	f.Points = append(f.Points[:i], f.Points[i+1:]...)
	if f.Closed && len(f.Points) < 3 {
		f.Closed = false
	}
	return true
}

// ReplacePoint substitutes the vertex at i in place.
func (f *Feature) ReplacePoint(i int, pt orb.Point) bool {
	if i < 0 || i >= len(f.Points) {
		return false
	}
	f.Points[i] = pt
	return true
}

// InsertPoint inserts a new vertex at i, placed at the midpoint between the
// vertex currently at i and its predecessor. i == 0 wraps the predecessor
// to the last vertex, so ring segments accept insertion too. Fails when
// either endpoint does not exist.
func (f *Feature) InsertPoint(i int) bool {
	n := len(f.Points)
	if n < 2 || i < 0 || i >= n {
		return false
	}
	prev := i - 1
	if prev < 0 {
		prev = n - 1
	}
	a, b := f.Points[prev], f.Points[i]
	mid := orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
	f.Points = append(f.Points, orb.Point{})
	copy(f.Points[i+1:], f.Points[i:])
	f.Points[i] = mid
	return true
}

// ClosePath marks the ring closed. Requires at least 3 vertices; a failed
// call leaves the closed state untouched.
func (f *Feature) ClosePath() bool {
	if len(f.Points) < 3 {
		return false
	}
	f.Closed = true
	return true
}

// ToGeoJSON exports the feature. The geometry kind follows the current
// vertex state, not the creation-time type tag: under 2 vertices exports a
// point, under 3 or left open exports a line, and only a closed ring with
// 3 or more vertices exports as a polygon (closing vertex appended to the
// exported ring only).
func (f *Feature) ToGeoJSON() *geojson.Feature {
	var out *geojson.Feature
	closed := false
	switch {
	case len(f.Points) < 2:
		pt := orb.Point{}
		if len(f.Points) == 1 {
			pt = f.Points[0]
		}
		out = geojson.NewFeature(pt)
	case len(f.Points) < 3 || !f.Closed:
		ls := make(orb.LineString, len(f.Points))
		copy(ls, f.Points)
		out = geojson.NewFeature(ls)
	default:
		ring := make(orb.Ring, 0, len(f.Points)+1)
		ring = append(ring, f.Points...)
		ring = append(ring, f.Points[0])
		out = geojson.NewFeature(orb.Polygon{ring})
		closed = true
	}
	for k, v := range f.Props {
		out.Properties[k] = v
	}
	out.ID = f.ID
	out.Properties["id"] = f.ID
	if closed {
		out.Properties["isClosed"] = true
	}
	return out
}
