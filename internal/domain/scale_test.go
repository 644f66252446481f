package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerSize(t *testing.T) {
	t.Run("classic uses factor 5", func(t *testing.T) {
		assert.InDelta(t, 0.0, MarkerSizeClassic(0), 1e-9)
		assert.InDelta(t, 12.5, MarkerSizeClassic(2.5), 1e-9)
		assert.InDelta(t, 35.0, MarkerSizeClassic(7), 1e-9)
	})

	t.Run("tectonic uses factor 3", func(t *testing.T) {
		assert.InDelta(t, 0.0, MarkerSizeTectonic(0), 1e-9)
		assert.InDelta(t, 7.5, MarkerSizeTectonic(2.5), 1e-9)
		assert.InDelta(t, 21.0, MarkerSizeTectonic(7), 1e-9)
	})

	t.Run("strictly increasing for non-negative magnitudes", func(t *testing.T) {
		prevClassic, prevTectonic := MarkerSizeClassic(0), MarkerSizeTectonic(0)
		for m := 0.1; m <= 10; m += 0.1 {
			c, tc := MarkerSizeClassic(m), MarkerSizeTectonic(m)
			assert.Greater(t, c, prevClassic, "classic at m=%v", m)
			assert.Greater(t, tc, prevTectonic, "tectonic at m=%v", m)
			prevClassic, prevTectonic = c, tc
		}
	})

	t.Run("no clamping", func(t *testing.T) {
		assert.InDelta(t, -5.0, MarkerSizeClassic(-1), 1e-9)
		assert.True(t, math.IsNaN(MarkerSizeTectonic(math.NaN())))
	})
}

func TestDepthColorClassic(t *testing.T) {
	tests := []struct {
		depth float64
		want  string
	}{
		{-10, "#99FF33"},
		{0, "#99FF33"},
		{9.99, "#99FF33"},
		{10, "#CCFF66"},
		{29.9, "#CCFF66"},
		{30, "#FFCC33"},
		{50, "#FF9900"},
		{70, "#FF6600"},
		{89.99, "#FF6600"},
		{90, "#FF0000"},
		{650, "#FF0000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DepthColorClassic(tt.depth), "depth %v", tt.depth)
	}
}

func TestDepthColorTectonic(t *testing.T) {
	tests := []struct {
		depth float64
		want  string
	}{
		{-3, "#1a9850"},
		{0, "#1a9850"},
		{10, "#1a9850"},
		{10.01, "#91cf60"},
		{30, "#91cf60"},
		{31, "#d9ef8b"},
		{50, "#d9ef8b"},
		{51, "#fee08b"},
		{70, "#fee08b"},
		{90, "#fc8d59"},
		{91, "#d73027"},
		{650, "#d73027"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DepthColorTectonic(tt.depth), "depth %v", tt.depth)
	}
}

func TestColorScale_ExactlyOneColorFromPalette(t *testing.T) {
	depths := []float64{math.Inf(-1), -1000, -0.5, 0, 10, 30, 50, 70, 90, 90.5, 700, math.Inf(1), math.NaN()}

	for _, scale := range []ColorScale{ClassicDepthScale, TectonicDepthScale} {
		palette := scale.Palette()
		assert.Len(t, palette, 6)
		for _, d := range depths {
			assert.Contains(t, palette, scale.ColorFor(d), "%s scale, depth %v", scale.Compare, d)
		}
	}
}

func TestColorScale_NaNUsesFallback(t *testing.T) {
	assert.Equal(t, "#FF0000", DepthColorClassic(math.NaN()))
	assert.Equal(t, "#1a9850", DepthColorTectonic(math.NaN()))
}

func TestColorScale_Band(t *testing.T) {
	assert.Equal(t, 0, ClassicDepthScale.Band(5))
	assert.Equal(t, 1, ClassicDepthScale.Band(10))
	assert.Equal(t, 5, ClassicDepthScale.Band(90))

	assert.Equal(t, 0, TectonicDepthScale.Band(91))
	assert.Equal(t, 1, TectonicDepthScale.Band(90))
	assert.Equal(t, 5, TectonicDepthScale.Band(10))
}

func TestColorScale_VariantsDisagreeOnThresholds(t *testing.T) {
	// Classic puts a threshold depth in the deeper band, tectonic in the
	// shallower one.
	for _, d := range SharedThresholds {
		assert.True(t, OnSharedThreshold(d))
		classicBand := ClassicDepthScale.Band(d)
		tectonicBand := len(TectonicDepthScale.Bands) - TectonicDepthScale.Band(d)
		assert.Equal(t, classicBand, tectonicBand+1, "depth %v", d)
	}
	assert.False(t, OnSharedThreshold(10.5))
}

func TestComparison_String(t *testing.T) {
	assert.Equal(t, "<", StrictlyBelow.String())
	assert.Equal(t, ">", StrictlyAbove.String())
	assert.Equal(t, "?", Comparison(9).String())
}
