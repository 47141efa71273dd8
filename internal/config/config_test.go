package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
)

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadInlineFeatures(t *testing.T) {
	p := writeTemp(t, "geodraw.yaml", `
mode: draw-polygon
log_file: /tmp/geodraw.log
features_geojson:
  type: FeatureCollection
  features:
    - type: Feature
      properties:
        id: home
        renderType: marker
      geometry:
        type: Point
        coordinates: [13.4, 52.5]
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "draw-polygon" {
		t.Errorf("Mode = %q, want draw-polygon", cfg.Mode)
	}
	fc, err := cfg.FeatureCollection()
	if err != nil {
		t.Fatal(err)
	}
	if fc == nil || len(fc.Features) != 1 {
		t.Fatalf("features = %v, want 1", fc)
	}
	pt, ok := fc.Features[0].Geometry.(orb.Point)
	if !ok {
		t.Fatalf("geometry = %T, want orb.Point", fc.Features[0].Geometry)
	}
	if pt != (orb.Point{13.4, 52.5}) {
		t.Errorf("coords = %v", pt)
	}
	if fc.Features[0].Properties["renderType"] != "marker" {
		t.Error("properties did not survive the inline round trip")
	}
}

func TestLoadFeaturesFromFile(t *testing.T) {
	gj := writeTemp(t, "data.geojson", `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {},
     "geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]}}
  ]
}`)
	p := writeTemp(t, "geodraw.yaml", "features: "+gj+"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cfg.FeatureCollection()
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("features = %d, want 1", len(fc.Features))
	}
}

func TestPlanarHydration(t *testing.T) {
	p := writeTemp(t, "geodraw.yaml", `
size: 360
features_geojson:
  type: FeatureCollection
  features:
    - type: Feature
      properties: {}
      geometry:
        type: Point
        coordinates: [180, 180]
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cfg.FeatureCollection()
	if err != nil {
		t.Fatal(err)
	}
	pt := fc.Features[0].Geometry.(orb.Point)
	if math.Abs(pt[0]) > 1e-9 || math.Abs(pt[1]) > 1e-9 {
		t.Errorf("world center hydrated to %v, want (0, 0)", pt)
	}
}

func TestNoFeaturesConfigured(t *testing.T) {
	p := writeTemp(t, "geodraw.yaml", "mode: select\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cfg.FeatureCollection()
	if err != nil || fc != nil {
		t.Errorf("FeatureCollection() = %v, %v; want nil, nil", fc, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file did not error")
	}
}
