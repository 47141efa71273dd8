package editor

import "geodraw/internal/geom"

// VertexOp says what clicking a vertex means.
type VertexOp int

const (
	// OpSet repositions the vertex.
	OpSet VertexOp = iota
	// OpIntersect closes the ring instead: the vertex is the first vertex
	// of an open polygon with more than 2 points.
	OpIntersect
)

// TargetKind tags rendered-element identity metadata.
type TargetKind int

const (
	TargetBackground TargetKind = iota
	TargetFeature
	TargetVertex
)

// Target is the identity metadata the rendering layer attaches to what it
// painted: which feature occupies a cell, or which vertex handle of the
// selected feature. It is raw identity, not yet a semantic hit.
type Target struct {
	Kind    TargetKind
	Feature int // working-set index, TargetFeature only
	Vertex  int // vertex index on the selected feature, TargetVertex only
}

// Hit is a classified gesture target.
type Hit interface{ hit() }

// Background is a hit on empty canvas.
type Background struct{}

// FeatureHit is a hit on the feature at a working-set index.
type FeatureHit struct{ Index int }

// VertexHit is a hit on a vertex handle of the selected feature.
type VertexHit struct {
	Index int
	Op    VertexOp
}

func (Background) hit() {}
func (FeatureHit) hit() {}
func (VertexHit) hit()  {}

// ClosingVertex reports whether clicking vertex i of the given feature is
// the ring-closing gesture rather than a reposition.
func ClosingVertex(f *geom.Feature, i int) bool {
	return f != nil && i == 0 && f.Type == geom.TypePolygon && !f.Closed && len(f.Points) > 2
}

// Classify resolves rendered-element identity to a semantic hit. It is a
// pure lookup: the rendering layer already decided what occupies the
// target, so no geometric hit-testing happens here. The selected feature
// is needed only to distinguish the ring-closing vertex.
func Classify(selected *geom.Feature, t Target) Hit {
	switch t.Kind {
	case TargetFeature:
		return FeatureHit{Index: t.Feature}
	case TargetVertex:
		op := OpSet
		if ClosingVertex(selected, t.Vertex) {
			op = OpIntersect
		}
		return VertexHit{Index: t.Vertex, Op: op}
	default:
		return Background{}
	}
}
