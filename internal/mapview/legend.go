package mapview

import (
	"github.com/couchcryptid/quake-map/internal/domain"
)

const (
	legendTitle    = "Earthquake Depth"
	legendPosition = "bottomright"
	// legendFloor is the lower label of the shallowest band.
	legendFloor = -10.0
)

// DepthLegend returns the legend shown by both variants. It always describes
// the classic palette, including on the tectonic map whose markers use a
// different one.
func DepthLegend() Legend {
	return legendFor(domain.ClassicDepthScale, legendFloor)
}

// legendFor labels an ascending scale's bands as "lower to upper" and the
// fallback band as "upper +".
func legendFor(scale domain.ColorScale, floor float64) Legend {
	entries := make([]LegendEntry, 0, len(scale.Bands)+1)
	lower := floor
	for _, b := range scale.Bands {
		entries = append(entries, LegendEntry{
			Color: b.Color,
			Label: formatNumber(lower) + " to " + formatNumber(b.Threshold),
		})
		lower = b.Threshold
	}
	entries = append(entries, LegendEntry{
		Color: scale.Fallback,
		Label: formatNumber(lower) + " +",
	})

	return Legend{
		Title:    legendTitle,
		Position: legendPosition,
		Entries:  entries,
	}
}
