// Package config handles configuration loading: initial mode, logging
// destination, and the starting feature collection (inline in YAML or an
// external GeoJSON file).
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gopkg.in/yaml.v3"

	"geodraw/internal/proj"
)

// Config is the root configuration file structure.
type Config struct {
	Mode    string `yaml:"mode,omitempty"`
	LogFile string `yaml:"log_file,omitempty"`

	// Size, when set, marks feature coordinates as planar world units
	// (0..size) that get Mercator-projected into lon/lat on load.
	Size float64 `yaml:"size,omitempty"`

	// FeaturesPath points at an external .geojson file.
	FeaturesPath string `yaml:"features,omitempty"`
	// FeaturesInline embeds a GeoJSON FeatureCollection directly in the
	// config. Takes priority over FeaturesPath.
	FeaturesInline map[string]any `yaml:"features_geojson,omitempty"`
}

// Load reads and parses the YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// FeatureCollection resolves the configured starting features: inline data
// first, then the external file, else nil. Planar coordinates are
// hydrated through the Mercator helper when Size is set.
func (c *Config) FeatureCollection() (*geojson.FeatureCollection, error) {
	var fc *geojson.FeatureCollection

	switch {
	case c.FeaturesInline != nil:
		// the inline block is YAML-decoded; round-trip through JSON to
		// reuse the GeoJSON decoder
		raw, err := json.Marshal(c.FeaturesInline)
		if err != nil {
			return nil, fmt.Errorf("inline features: %w", err)
		}
		fc, err = geojson.UnmarshalFeatureCollection(raw)
		if err != nil {
			return nil, fmt.Errorf("inline features: %w", err)
		}
	case c.FeaturesPath != "":
		data, err := os.ReadFile(c.FeaturesPath)
		if err != nil {
			return nil, err
		}
		fc, err = geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", c.FeaturesPath, err)
		}
	default:
		return nil, nil
	}

	if c.Size > 0 {
		hydratePlanar(fc, c.Size)
	}
	return fc, nil
}

// hydratePlanar maps every planar coordinate to lon/lat in place.
func hydratePlanar(fc *geojson.FeatureCollection, size float64) {
	mapPt := func(pt orb.Point) orb.Point {
		lon, lat := proj.MercatorLonLat(pt[0], pt[1], size)
		return orb.Point{lon, lat}
	}
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Point:
			f.Geometry = mapPt(g)
		case orb.LineString:
			for i := range g {
				g[i] = mapPt(g[i])
			}
		case orb.Polygon:
			for _, ring := range g {
				for i := range ring {
					ring[i] = mapPt(ring[i])
				}
			}
		}
	}
}
