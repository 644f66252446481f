package domain

import (
	"encoding/json"
	"time"
)

// Earthquake is a single seismic event decoded from a USGS feature.
type Earthquake struct {
	ID        string    `json:"id"`
	Lon       float64   `json:"lon"`
	Lat       float64   `json:"lat"`
	Depth     float64   `json:"depth"` // km, negative above sea level
	Magnitude float64   `json:"magnitude"`
	Place     string    `json:"place,omitempty"`
	Time      time.Time `json:"time,omitempty"`
	URL       string    `json:"url,omitempty"`
}

// Boundary is a plate boundary line. Its geometry is kept as raw GeoJSON
// because it is only styled, never inspected.
type Boundary struct {
	Name     string          `json:"name,omitempty"`
	Geometry json.RawMessage `json:"geometry"`
}

// Variant selects which presentation rules a map is built with.
type Variant string

const (
	// VariantClassic is the single base layer map with markers and a legend.
	VariantClassic Variant = "classic"
	// VariantTectonic adds switchable base layers, a plate boundary overlay,
	// and a layer control.
	VariantTectonic Variant = "tectonic"
)

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantClassic || v == VariantTectonic
}

// NeedsBoundaries reports whether building v requires the plate boundary feed.
func (v Variant) NeedsBoundaries() bool {
	return v == VariantTectonic
}
