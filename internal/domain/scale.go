package domain

// Size factors applied to magnitude to get a marker radius in pixels.
const (
	ClassicSizeFactor  = 5.0
	TectonicSizeFactor = 3.0
)

// MarkerSize scales a magnitude into a marker radius. No clamping is applied:
// negative magnitudes yield a negative radius and NaN stays NaN.
func MarkerSize(factor, magnitude float64) float64 {
	return factor * magnitude
}

// MarkerSizeClassic returns the classic variant's radius for magnitude.
func MarkerSizeClassic(magnitude float64) float64 {
	return MarkerSize(ClassicSizeFactor, magnitude)
}

// MarkerSizeTectonic returns the tectonic variant's radius for magnitude.
func MarkerSizeTectonic(magnitude float64) float64 {
	return MarkerSize(TectonicSizeFactor, magnitude)
}

// Comparison is the rule used to test a depth against a band threshold.
type Comparison int

const (
	// StrictlyBelow matches when depth < threshold. Bands are listed ascending.
	StrictlyBelow Comparison = iota
	// StrictlyAbove matches when depth > threshold. Bands are listed descending.
	StrictlyAbove
)

func (c Comparison) matches(depth, threshold float64) bool {
	switch c {
	case StrictlyBelow:
		return depth < threshold
	case StrictlyAbove:
		return depth > threshold
	default:
		return false
	}
}

// String returns the comparison operator.
func (c Comparison) String() string {
	switch c {
	case StrictlyBelow:
		return "<"
	case StrictlyAbove:
		return ">"
	default:
		return "?"
	}
}

// ColorBand pairs a depth threshold with the color used when the scale's
// comparison holds for it.
type ColorBand struct {
	Threshold float64
	Color     string
}

// ColorScale is an ordered table of bands walked first to last. The first
// band whose comparison holds wins; if none does, Fallback is returned. Every
// depth, NaN included, therefore maps to exactly one color.
type ColorScale struct {
	Compare  Comparison
	Bands    []ColorBand
	Fallback string
}

// ColorFor returns the color for depth.
func (s ColorScale) ColorFor(depth float64) string {
	for _, b := range s.Bands {
		if s.Compare.matches(depth, b.Threshold) {
			return b.Color
		}
	}
	return s.Fallback
}

// Palette returns every color the scale can produce, bands first then the
// fallback.
func (s ColorScale) Palette() []string {
	colors := make([]string, 0, len(s.Bands)+1)
	for _, b := range s.Bands {
		colors = append(colors, b.Color)
	}
	return append(colors, s.Fallback)
}

// Band returns the index into Palette that depth falls in.
func (s ColorScale) Band(depth float64) int {
	for i, b := range s.Bands {
		if s.Compare.matches(depth, b.Threshold) {
			return i
		}
	}
	return len(s.Bands)
}

// ClassicDepthScale colors depths ascending with strict "<" comparisons, so a
// depth of exactly 10 lands in the 10-30 band.
var ClassicDepthScale = ColorScale{
	Compare: StrictlyBelow,
	Bands: []ColorBand{
		{Threshold: 10, Color: "#99FF33"},
		{Threshold: 30, Color: "#CCFF66"},
		{Threshold: 50, Color: "#FFCC33"},
		{Threshold: 70, Color: "#FF9900"},
		{Threshold: 90, Color: "#FF6600"},
	},
	Fallback: "#FF0000",
}

// TectonicDepthScale colors depths descending with strict ">" comparisons, so a
// depth of exactly 90 lands in the 70-90 band.
var TectonicDepthScale = ColorScale{
	Compare: StrictlyAbove,
	Bands: []ColorBand{
		{Threshold: 90, Color: "#d73027"},
		{Threshold: 70, Color: "#fc8d59"},
		{Threshold: 50, Color: "#fee08b"},
		{Threshold: 30, Color: "#d9ef8b"},
		{Threshold: 10, Color: "#91cf60"},
	},
	Fallback: "#1a9850",
}

// DepthColorClassic returns the classic variant's fill color for depth.
func DepthColorClassic(depth float64) string {
	return ClassicDepthScale.ColorFor(depth)
}

// DepthColorTectonic returns the tectonic variant's fill color for depth.
func DepthColorTectonic(depth float64) string {
	return TectonicDepthScale.ColorFor(depth)
}

// SharedThresholds are the depths at which the two scales disagree about
// band membership.
var SharedThresholds = []float64{10, 30, 50, 70, 90}

// OnSharedThreshold reports whether depth sits exactly on one of
// SharedThresholds.
func OnSharedThreshold(depth float64) bool {
	for _, t := range SharedThresholds {
		if depth == t {
			return true
		}
	}
	return false
}
