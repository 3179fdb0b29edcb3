// Package mask implements the animated brightness mask: a slow dual sine
// wave that brightens and darkens text by character position. The offset
// is shared between the animation timer (Advance) and renderers (ValueAt)
// and is safe for concurrent use.
package mask

import (
	"math"
	"sync/atomic"
	"unicode/utf8"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/types"
)

// Mask is a brightness wave. Intensity is the peak offset in percent.
type Mask struct {
	offset     atomic.Int64
	intensity  float64
	wavelength float64
}

// New creates a mask. A non-positive wavelength disables the wave.
func New(intensity, wavelength float64) *Mask {
	return &Mask{intensity: intensity, wavelength: wavelength}
}

// FromConfig creates a mask from the [mask] settings
func FromConfig(cfg config.MaskConfig) *Mask {
	return New(cfg.Intensity, cfg.Wavelength)
}

func (m *Mask) Intensity() float64  { return m.intensity }
func (m *Mask) Wavelength() float64 { return m.wavelength }

// Offset is the current phase shift
func (m *Mask) Offset() int64 {
	return m.offset.Load()
}

// Advance moves the wave by one character
func (m *Mask) Advance() {
	m.offset.Add(1)
}

// Reset puts the wave back at phase zero
func (m *Mask) Reset() {
	m.offset.Store(0)
}

// ValueAt is the brightness offset in percent for a character position.
// The result never exceeds the intensity in magnitude.
func (m *Mask) ValueAt(position, lineOffset int) float64 {
	if m.wavelength <= 0 || m.intensity == 0 {
		return 0
	}
	phase := float64(int64(position)+m.offset.Load()) + float64(lineOffset)
	primary := math.Sin(2 * math.Pi * phase / m.wavelength)
	secondary := 0.5 * math.Sin(2*math.Pi*phase/(1.5*m.wavelength))
	v := (primary + secondary) / 1.5 * m.intensity

	limit := math.Abs(m.intensity)
	return math.Max(-limit, math.Min(limit, v))
}

// Apply brightens c by the mask value at position
func (m *Mask) Apply(c types.RGB, position, lineOffset int) types.RGB {
	return c.Brighten(m.ValueAt(position, lineOffset))
}

// ApplyToSegments returns a copy of segs with every foreground shifted by
// the value sampled at the segment's first character. Positions count the
// characters of all segments. Unset foregrounds stay unset.
func (m *Mask) ApplyToSegments(segs []types.Segment, lineOffset int) []types.Segment {
	out := make([]types.Segment, len(segs))
	pos := 0
	for i, s := range segs {
		out[i] = s
		if s.Fg != nil {
			out[i].Fg = types.Color(m.Apply(*s.Fg, pos, lineOffset))
		}
		pos += utf8.RuneCountInString(s.Text)
	}
	return out
}
