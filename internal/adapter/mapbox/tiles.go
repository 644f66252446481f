package mapbox

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/couchcryptid/quake-map/internal/mapview"
)

const attribution = `&copy; <a href="https://www.mapbox.com/about/maps/">Mapbox</a> ` +
	`&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`

// Style ids used for each tectonic base layer.
const (
	StyleSatellite = "satellite-v9"
	StyleGrayscale = "light-v11"
	StyleOutdoors  = "outdoors-v12"
)

// TectonicLayers returns the satellite, grayscale, and outdoors base layers
// served from Mapbox styles. Satellite is first and is the default.
func TectonicLayers(token string) []mapview.TileLayer {
	return []mapview.TileLayer{
		styleLayer(mapview.BaseSatellite, StyleSatellite, token),
		styleLayer(mapview.BaseGrayscale, StyleGrayscale, token),
		styleLayer(mapview.BaseOutdoors, StyleOutdoors, token),
	}
}

// styleLayer uses 512px style tiles, so Leaflet needs zoomOffset -1 to keep
// the usual 256px zoom levels.
func styleLayer(name, style, token string) mapview.TileLayer {
	return mapview.TileLayer{
		Name: name,
		URL: fmt.Sprintf("%s/styles/v1/mapbox/%s/tiles/{z}/{x}/{y}?%s",
			defaultAPIBase, style, url.Values{"access_token": {token}}.Encode()),
		Attribution: attribution,
		MaxZoom:     22,
		TileSize:    512,
		ZoomOffset:  -1,
	}
}

// ResolveTectonicLayers returns Mapbox layers when the client's token checks
// out and nil otherwise, letting composition fall back to the public layers.
// A failed check is logged, never fatal.
func ResolveTectonicLayers(ctx context.Context, c *Client, logger *slog.Logger) []mapview.TileLayer {
	if c == nil || c.token == "" {
		return nil
	}
	code, ok, err := c.CheckToken(ctx)
	if err != nil {
		logger.Warn("mapbox token check failed, using public base layers", "error", err)
		return nil
	}
	if !ok {
		logger.Warn("mapbox token rejected, using public base layers", "code", code)
		return nil
	}
	logger.Info("mapbox base layers enabled")
	return TectonicLayers(c.token)
}
