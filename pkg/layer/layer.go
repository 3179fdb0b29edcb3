// Package layer adjusts colors by significance and picks white tints by
// temperature. Significance scales HSL saturation and lightness; whites
// move from warm (early in a dungeon) to cool (deep in it).
package layer

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/types"
)

// Temperature is the tint of a white
type Temperature int

const (
	Warm Temperature = iota
	Neutral
	Cool
)

func (t Temperature) String() string {
	switch t {
	case Warm:
		return "warm"
	case Cool:
		return "cool"
	default:
		return "neutral"
	}
}

// indexed by types.Significance, Trivial..Critical
var (
	lightnessMultipliers  = [...]float64{0.4, 0.6, 1.0, 1.2, 1.5}
	saturationMultipliers = [...]float64{0.3, 0.5, 1.0, 1.2, 1.4}
)

// Layer applies significance and temperature. It is immutable.
type Layer struct {
	temperatureIntensity float64
}

// New creates a layer from the [layer] settings
func New(cfg config.LayerConfig) *Layer {
	return &Layer{temperatureIntensity: cfg.TemperatureIntensity}
}

// TemperatureIntensity scales how far warm and cool whites move away from
// pure white. 0 keeps every white neutral.
func (l *Layer) TemperatureIntensity() float64 { return l.temperatureIntensity }

// ApplySignificance scales saturation and lightness of c for the level.
// Levels outside the known range leave c unchanged.
func ApplySignificance(c types.RGB, s types.Significance) types.RGB {
	if s < types.SignificanceTrivial || int(s) >= len(lightnessMultipliers) {
		return c
	}

	h, sat, light := toColorful(c).Hsl()
	sat = clamp01(sat * saturationMultipliers[s])
	light = clamp01(light * lightnessMultipliers[s])

	return fromColorful(colorful.Hsl(normalizeHue(h), sat, light))
}

// ApplySignificanceToSegments returns a copy of segs with foreground and
// background adjusted. Unset colors stay unset.
func ApplySignificanceToSegments(segs []types.Segment, s types.Significance) []types.Segment {
	out := make([]types.Segment, len(segs))
	for i, seg := range segs {
		out[i] = seg
		if seg.Fg != nil {
			out[i].Fg = types.Color(ApplySignificance(*seg.Fg, s))
		}
		if seg.Bg != nil {
			out[i].Bg = types.Color(ApplySignificance(*seg.Bg, s))
		}
	}
	return out
}

// White returns the white for a temperature, scaled by brightness
func (l *Layer) White(t Temperature, brightness float64) types.RGB {
	var r, g, b float64
	switch t {
	case Warm:
		r, g, b = l.warm()
	case Cool:
		r, g, b = l.cool()
	default:
		r, g, b = 255, 255, 255
	}
	return rgb(r, g, b).Scale(brightness)
}

// Interpolate blends from the warm white (progression 0) to the cool white
// (progression 1). Progression is clamped to [0,1].
func (l *Layer) Interpolate(progression, brightness float64) types.RGB {
	p := clamp01(progression)
	wr, wg, wb := l.warm()
	cr, cg, cb := l.cool()
	return rgb(
		wr+(cr-wr)*p,
		wg+(cg-wg)*p,
		wb+(cb-wb)*p,
	).Scale(brightness)
}

// WhiteByDepth is the white for room number room (1-based) of totalRooms.
// A dungeon with a single room is neutral.
func (l *Layer) WhiteByDepth(room, totalRooms int, brightness float64) types.RGB {
	if totalRooms <= 1 {
		return l.White(Neutral, brightness)
	}
	return l.Interpolate(float64(room-1)/float64(totalRooms-1), brightness)
}

// ApplyTemperatureToSegments returns a copy of segs where text in the
// default foreground (unset, or equal to base) is drawn in white instead.
// Explicitly colored text is left alone.
func ApplyTemperatureToSegments(segs []types.Segment, base, white types.RGB) []types.Segment {
	out := make([]types.Segment, len(segs))
	for i, seg := range segs {
		out[i] = seg
		if seg.Fg == nil || *seg.Fg == base {
			out[i].Fg = types.Color(white)
		}
	}
	return out
}

// Brightness is the brightness factor that keeps a white as bright as c,
// i.e. its strongest channel over 255
func Brightness(c types.RGB) float64 {
	return float64(max(c.R, c.G, c.B)) / 255
}

func (l *Layer) warm() (float64, float64, float64) {
	i := l.temperatureIntensity
	return 255, 255 - 5*i, 255 - 35*i
}

func (l *Layer) cool() (float64, float64, float64) {
	i := l.temperatureIntensity
	return 255 - 35*i, 255 - 25*i, 255
}

func rgb(r, g, b float64) types.RGB {
	return types.NewRGB(int(clampByte(r)), int(clampByte(g)), int(clampByte(b)))
}

func clampByte(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func toColorful(c types.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) types.RGB {
	r, g, b := c.Clamped().RGB255()
	return types.RGB{R: r, G: g, B: b}
}
