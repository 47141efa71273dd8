package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Collection is the working set: an ordered sequence of features. Order
// affects z-order only. The collection owns its features; callers mutate
// them through the pointers it hands out.
type Collection struct {
	feats []*Feature
}

// NewCollection builds a working set from the given features in order.
func NewCollection(feats ...*Feature) *Collection {
	return &Collection{feats: feats}
}

// CollectionFromGeoJSON hydrates a working set from an interchange
// collection, skipping records with unsupported geometry kinds.
func CollectionFromGeoJSON(fc *geojson.FeatureCollection) *Collection {
	c := &Collection{}
	if fc == nil {
		return c
	}
	for _, src := range fc.Features {
		if f := FromGeoJSON(src); f != nil {
			c.feats = append(c.feats, f)
		}
	}
	return c
}

func (c *Collection) Len() int { return len(c.feats) }

// At returns the feature at index i, or nil when out of range.
func (c *Collection) At(i int) *Feature {
	if i < 0 || i >= len(c.feats) {
		return nil
	}
	return c.feats[i]
}

// Features returns the backing slice; callers must not reorder it.
func (c *Collection) Features() []*Feature { return c.feats }

func (c *Collection) Append(f *Feature) {
	c.feats = append(c.feats, f)
}

// ReplaceAt swaps the feature at index i.
func (c *Collection) ReplaceAt(i int, f *Feature) bool {
	if i < 0 || i >= len(c.feats) {
		return false
	}
	c.feats[i] = f
	return true
}

// ByID looks a feature up by identity. Selection holds ids, not pointers,
// so a stale id simply resolves to (nil, -1).
func (c *Collection) ByID(id string) (*Feature, int) {
	if id == "" {
		return nil, -1
	}
	for i, f := range c.feats {
		if f.ID == id {
			return f, i
		}
	}
	return nil, -1
}

func (c *Collection) RemoveByID(id string) bool {
	_, i := c.ByID(id)
	if i < 0 {
		return false
	}
	c.feats = append(c.feats[:i], c.feats[i+1:]...)
	return true
}

// ToGeoJSON exports every feature in z-order.
func (c *Collection) ToGeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range c.feats {
		fc.Append(f.ToGeoJSON())
	}
	return fc
}

// Bound returns the bounding box over all vertices and whether any vertex
// exists at all.
func (c *Collection) Bound() (orb.Bound, bool) {
	var b orb.Bound
	seen := false
	for _, f := range c.feats {
		for _, pt := range f.Points {
			if !seen {
				b = orb.Bound{Min: pt, Max: pt}
				seen = true
				continue
			}
			b = b.Extend(pt)
		}
	}
	return b, seen
}
