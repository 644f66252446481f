// Package mapview composes earthquake and plate boundary data into a map
// document: base tile layers, overlays, a legend, and a layer control. The
// document is renderer-agnostic; package render turns it into a page.
package mapview

import (
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
)

// Overlay names shown in the layer control.
const (
	OverlayEarthquakes = "Earthquakes"
	OverlayPlates      = "Tectonic Plates"
)

// LatLng is a WGS-84 coordinate in Leaflet's [lat, lng] order.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TileLayer describes a slippy-map base layer.
type TileLayer struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Attribution string   `json:"attribution,omitempty"`
	Subdomains  []string `json:"subdomains,omitempty"`
	MaxZoom     int      `json:"maxZoom,omitempty"`
	TileSize    int      `json:"tileSize,omitempty"`
	ZoomOffset  int      `json:"zoomOffset,omitempty"`
}

// MarkerStyle is the stroke and fill opacity shared by all markers of a
// variant.
type MarkerStyle struct {
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fillOpacity"`
}

// Marker is a circle marker for one earthquake.
type Marker struct {
	ID        string      `json:"id,omitempty"`
	Position  LatLng      `json:"position"`
	Radius    float64     `json:"radius"`
	FillColor string      `json:"fillColor"`
	Style     MarkerStyle `json:"style"`
	Popup     string      `json:"popup"`
}

// LineStyle is applied to every boundary in a line overlay.
type LineStyle struct {
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
}

// Overlay is a togglable layer drawn above the base layer. It holds either
// markers or boundary lines.
type Overlay struct {
	Name      string            `json:"name"`
	Enabled   bool              `json:"enabled"`
	Markers   []Marker          `json:"markers,omitempty"`
	Lines     []domain.Boundary `json:"lines,omitempty"`
	LineStyle *LineStyle        `json:"lineStyle,omitempty"`
}

// LegendEntry is one swatch in the legend.
type LegendEntry struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// Legend is a static control describing the depth color bands.
type Legend struct {
	Title    string        `json:"title"`
	Position string        `json:"position"`
	Entries  []LegendEntry `json:"entries"`
}

// LayerControl lists the switchable base layers (radio buttons) and overlays
// (checkboxes).
type LayerControl struct {
	BaseLayers []string `json:"baseLayers"`
	Overlays   []string `json:"overlays"`
	Collapsed  bool     `json:"collapsed"`
}

// Map is a fully composed map for one data snapshot.
type Map struct {
	Variant      domain.Variant `json:"variant"`
	Container    string         `json:"container"`
	Center       LatLng         `json:"center"`
	Zoom         int            `json:"zoom"`
	BaseLayers   []TileLayer    `json:"baseLayers"`
	ActiveBase   string         `json:"activeBase"`
	Overlays     []Overlay      `json:"overlays"`
	Legend       Legend         `json:"legend"`
	LayerControl *LayerControl  `json:"layerControl,omitempty"`
	GeneratedAt  time.Time      `json:"generatedAt"`
}

// Overlay returns the overlay with the given name.
func (m *Map) Overlay(name string) (*Overlay, bool) {
	for i := range m.Overlays {
		if m.Overlays[i].Name == name {
			return &m.Overlays[i], true
		}
	}
	return nil, false
}

// Markers returns every marker across all overlays.
func (m Map) Markers() []Marker {
	var markers []Marker
	for _, o := range m.Overlays {
		markers = append(markers, o.Markers...)
	}
	return markers
}

// ActiveOverlays returns the names of overlays shown on first load.
func (m Map) ActiveOverlays() []string {
	var names []string
	for _, o := range m.Overlays {
		if o.Enabled {
			names = append(names, o.Name)
		}
	}
	return names
}
