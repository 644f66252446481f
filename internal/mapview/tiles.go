package mapview

// Base layer names.
const (
	BaseStreets   = "Streets"
	BaseSatellite = "Satellite"
	BaseGrayscale = "Grayscale"
	BaseOutdoors  = "Outdoors"
)

const osmAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`

// StreetsLayer is the OpenStreetMap standard tile layer.
func StreetsLayer() TileLayer {
	return TileLayer{
		Name:        BaseStreets,
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: osmAttribution,
		MaxZoom:     19,
	}
}

// PublicTectonicLayers returns the satellite, grayscale, and outdoors layers
// served by providers that need no access token. Satellite is first and is
// the default.
func PublicTectonicLayers() []TileLayer {
	return []TileLayer{
		{
			Name:       BaseSatellite,
			URL:        "https://{s}.google.com/vt/lyrs=s&x={x}&y={y}&z={z}",
			Subdomains: []string{"mt0", "mt1", "mt2", "mt3"},
			MaxZoom:    20,
		},
		{
			Name: BaseGrayscale,
			URL:  "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
			Attribution: `Map data: ` + osmAttribution +
				`, <a href="http://viewfinderpanoramas.org">SRTM</a> | Map style: &copy; <a href="https://opentopomap.org">OpenTopoMap</a> (<a href="https://creativecommons.org/licenses/by-sa/3.0/">CC-BY-SA</a>)`,
			MaxZoom: 17,
		},
		{
			Name:        BaseOutdoors,
			URL:         "https://{s}.tile.thunderforest.com/outdoors/{z}/{x}/{y}.png",
			Attribution: `Map data ` + osmAttribution,
			MaxZoom:     22,
		},
	}
}

func layerNames(layers []TileLayer) []string {
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.Name
	}
	return names
}
