package mapview

import (
	"fmt"
	"html"
	"strconv"

	"github.com/couchcryptid/quake-map/internal/domain"
)

// DefaultContainer is the id of the page element the map attaches to.
const DefaultContainer = "map"

var (
	classicCenter  = LatLng{Lat: 65.813, Lng: -147.852}
	tectonicCenter = LatLng{Lat: 0.443182, Lng: -54.451200}
)

const defaultZoom = 5

var (
	classicMarkerStyle  = MarkerStyle{Color: "#000", Weight: 1, Opacity: 1, FillOpacity: 0.8}
	tectonicMarkerStyle = MarkerStyle{Color: "#000", Weight: 0.5, Opacity: 0.5, FillOpacity: 1}
	plateLineStyle      = LineStyle{Color: "orange", Weight: 2.5}
)

// Options configures composition. The zero value is usable.
type Options struct {
	// Container is the page element id. Empty means DefaultContainer.
	Container string
	// TectonicBaseLayers replaces the public tectonic base layers when set.
	// The first layer is the default.
	TectonicBaseLayers []TileLayer
}

func (o Options) container() string {
	if o.Container == "" {
		return DefaultContainer
	}
	return o.Container
}

func (o Options) tectonicBaseLayers() []TileLayer {
	if len(o.TectonicBaseLayers) == 0 {
		return PublicTectonicLayers()
	}
	return o.TectonicBaseLayers
}

// ComposeClassic builds the single base layer map: one marker per earthquake
// and the depth legend.
func ComposeClassic(opts Options, quakes []domain.Earthquake) Map {
	markers := make([]Marker, len(quakes))
	for i, q := range quakes {
		markers[i] = Marker{
			ID:        q.ID,
			Position:  LatLng{Lat: q.Lat, Lng: q.Lon},
			Radius:    domain.MarkerSizeClassic(q.Magnitude),
			FillColor: domain.DepthColorClassic(q.Depth),
			Style:     classicMarkerStyle,
			Popup:     classicPopup(q),
		}
	}

	base := StreetsLayer()
	return Map{
		Variant:    domain.VariantClassic,
		Container:  opts.container(),
		Center:     classicCenter,
		Zoom:       defaultZoom,
		BaseLayers: []TileLayer{base},
		ActiveBase: base.Name,
		Overlays: []Overlay{
			{Name: OverlayEarthquakes, Enabled: true, Markers: markers},
		},
		Legend:      DepthLegend(),
		GeneratedAt: domain.Now(),
	}
}

// ComposeTectonic builds the map with switchable base layers, earthquake and
// plate boundary overlays (both on by default), a layer control, and the
// depth legend.
func ComposeTectonic(opts Options, quakes []domain.Earthquake, boundaries []domain.Boundary) Map {
	markers := make([]Marker, len(quakes))
	for i, q := range quakes {
		markers[i] = Marker{
			ID:        q.ID,
			Position:  LatLng{Lat: q.Lat, Lng: q.Lon},
			Radius:    domain.MarkerSizeTectonic(q.Magnitude),
			FillColor: domain.DepthColorTectonic(q.Depth),
			Style:     tectonicMarkerStyle,
			Popup:     tectonicPopup(q),
		}
	}

	style := plateLineStyle
	bases := opts.tectonicBaseLayers()
	overlays := []Overlay{
		{Name: OverlayPlates, Enabled: true, Lines: boundaries, LineStyle: &style},
		{Name: OverlayEarthquakes, Enabled: true, Markers: markers},
	}

	return Map{
		Variant:    domain.VariantTectonic,
		Container:  opts.container(),
		Center:     tectonicCenter,
		Zoom:       defaultZoom,
		BaseLayers: bases,
		ActiveBase: bases[0].Name,
		Overlays:   overlays,
		Legend:     DepthLegend(),
		LayerControl: &LayerControl{
			BaseLayers: layerNames(bases),
			Overlays:   []string{OverlayPlates, OverlayEarthquakes},
			Collapsed:  false,
		},
		GeneratedAt: domain.Now(),
	}
}

func classicPopup(q domain.Earthquake) string {
	return fmt.Sprintf("Magnitude: %s<br>Depth: %s km", formatNumber(q.Magnitude), formatNumber(q.Depth))
}

func tectonicPopup(q domain.Earthquake) string {
	return fmt.Sprintf("<h3>Location:</h3> %s<h3>Magnitude:</h3> %s<h3>Depth:</h3> %s",
		html.EscapeString(q.Place), formatNumber(q.Magnitude), formatNumber(q.Depth))
}

// formatNumber prints the shortest representation that round-trips, e.g.
// 4.5 -> "4.5", 10 -> "10".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
