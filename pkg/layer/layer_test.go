// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Significance HSL scaling and white temperature interpolation

package layer

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/types"
)

func hsl(c types.RGB) (float64, float64, float64) {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hsl()
}

func assertNear(t *testing.T, want, got types.RGB) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1, "R")
	assert.InDelta(t, want.G, got.G, 1, "G")
	assert.InDelta(t, want.B, got.B, 1, "B")
}

func TestApplySignificance(t *testing.T) {
	base := types.RGB{R: 0, G: 150, B: 255}

	assertNear(t, base, ApplySignificance(base, types.SignificanceNormal))

	_, baseS, baseL := hsl(base)
	levels := []types.Significance{
		types.SignificanceTrivial,
		types.SignificanceMinor,
		types.SignificanceNormal,
		types.SignificanceImportant,
		types.SignificanceCritical,
	}
	prevL := -1.0
	for _, lvl := range levels {
		_, s, l := hsl(ApplySignificance(base, lvl))
		assert.Greater(t, l, prevL, "lightness increases with significance (%s)", lvl)
		assert.LessOrEqual(t, s, 1.0)
		prevL = l
	}

	_, s, l := hsl(ApplySignificance(base, types.SignificanceTrivial))
	assert.InDelta(t, baseS*0.3, s, 0.02)
	assert.InDelta(t, baseL*0.4, l, 0.02)
}

func TestApplySignificanceClamps(t *testing.T) {
	white := types.RGB{R: 255, G: 255, B: 255}
	assert.Equal(t, white, ApplySignificance(white, types.SignificanceCritical))

	grey := types.RGB{R: 100, G: 100, B: 100}
	got := ApplySignificance(grey, types.SignificanceImportant)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, got.G, got.B)

	assert.Equal(t, grey, ApplySignificance(grey, types.Significance(42)))
}

func TestApplySignificanceToSegments(t *testing.T) {
	fg := types.RGB{R: 255, G: 50, B: 50}
	bg := types.RGB{R: 21, G: 83, B: 82}
	segs := []types.Segment{
		{Text: "a", Fg: types.Color(fg), Bg: types.Color(bg)},
		{Text: "b"},
	}

	out := ApplySignificanceToSegments(segs, types.SignificanceTrivial)
	assert.Equal(t, ApplySignificance(fg, types.SignificanceTrivial), *out[0].Fg)
	assert.Equal(t, ApplySignificance(bg, types.SignificanceTrivial), *out[0].Bg)
	assert.Nil(t, out[1].Fg)
	assert.Nil(t, out[1].Bg)
	assert.Equal(t, fg, *segs[0].Fg, "input untouched")
}

func TestWhite(t *testing.T) {
	l := New(config.LayerConfig{TemperatureIntensity: 1})

	assert.Equal(t, types.RGB{R: 255, G: 250, B: 220}, l.White(Warm, 1))
	assert.Equal(t, types.RGB{R: 220, G: 230, B: 255}, l.White(Cool, 1))
	assert.Equal(t, types.RGB{R: 255, G: 255, B: 255}, l.White(Neutral, 1))
	assert.Equal(t, types.RGB{R: 110, G: 115, B: 127}, l.White(Cool, 0.5))

	strong := New(config.LayerConfig{TemperatureIntensity: 2})
	assert.Equal(t, types.RGB{R: 255, G: 245, B: 185}, strong.White(Warm, 1))

	off := New(config.LayerConfig{TemperatureIntensity: 0})
	assert.Equal(t, off.White(Neutral, 1), off.White(Warm, 1))
	assert.Equal(t, off.White(Neutral, 1), off.White(Cool, 1))
}

func TestWhiteByDepth(t *testing.T) {
	l := New(config.LayerConfig{TemperatureIntensity: 1})

	assert.Equal(t, l.White(Warm, 1), l.WhiteByDepth(1, 5, 1))
	assert.Equal(t, l.White(Cool, 1), l.WhiteByDepth(5, 5, 1))
	assert.Equal(t, types.RGB{R: 237, G: 240, B: 237}, l.WhiteByDepth(3, 5, 1))
	assert.Equal(t, l.White(Neutral, 1.2), l.WhiteByDepth(1, 1, 1.2))
	assert.Equal(t, l.White(Neutral, 1), l.WhiteByDepth(4, 0, 1))
}

func TestInterpolateClampsProgression(t *testing.T) {
	l := New(config.LayerConfig{TemperatureIntensity: 1})

	assert.Equal(t, l.White(Warm, 1), l.Interpolate(-3, 1))
	assert.Equal(t, l.White(Cool, 1), l.Interpolate(7, 1))
}

func TestApplyTemperatureToSegments(t *testing.T) {
	base := types.NewRGB(230, 230, 230)
	red := types.NewRGB(255, 50, 50)
	white := types.NewRGB(255, 250, 220)

	segs := []types.Segment{
		{Text: "plain"},
		{Text: "grey", Fg: types.Color(base)},
		{Text: "red", Fg: types.Color(red), Bg: types.Color(base)},
	}
	out := ApplyTemperatureToSegments(segs, base, white)

	assert.Equal(t, white, *out[0].Fg)
	assert.Equal(t, white, *out[1].Fg)
	assert.Equal(t, red, *out[2].Fg)
	assert.Equal(t, base, *out[2].Bg)
	assert.Nil(t, segs[0].Fg, "input is not modified")
}

func TestBrightness(t *testing.T) {
	assert.InDelta(t, 230.0/255, Brightness(types.NewRGB(230, 230, 230)), 1e-9)
	assert.InDelta(t, 1.0, Brightness(types.NewRGB(0, 255, 0)), 1e-9)
	assert.Equal(t, 0.0, Brightness(types.RGB{}))
}

func TestTemperatureString(t *testing.T) {
	assert.Equal(t, "warm", Warm.String())
	assert.Equal(t, "neutral", Neutral.String())
	assert.Equal(t, "cool", Cool.String())
}
