package types

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// NewRGB builds an RGB from integer channels, clamping each to [0,255]
func NewRGB(r, g, b int) RGB {
	return RGB{R: ClampByte(r), G: ClampByte(g), B: ClampByte(b)}
}

// ClampByte clamps an integer channel to [0,255]
func ClampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampFloat(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Scale multiplies every channel by factor
func (c RGB) Scale(factor float64) RGB {
	return RGB{
		R: clampFloat(float64(c.R) * factor),
		G: clampFloat(float64(c.G) * factor),
		B: clampFloat(float64(c.B) * factor),
	}
}

// Brighten shifts the color by percent (-100..+100 and beyond), i.e. each
// channel is multiplied by (1 + percent/100).
func (c RGB) Brighten(percent float64) RGB {
	return c.Scale(1 + percent/100)
}

// Hex returns the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb or rrggbb
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Segment is a contiguous run of text sharing one foreground and background.
// A nil color means "whatever the sink uses by default".
type Segment struct {
	Text string
	Fg   *RGB
	Bg   *RGB
}

// Color returns a pointer to a copy of c, handy for building segments
func Color(c RGB) *RGB {
	return &c
}

// SameStyle reports whether two segments share fg and bg
func (s Segment) SameStyle(o Segment) bool {
	return equalColor(s.Fg, o.Fg) && equalColor(s.Bg, o.Bg)
}

func equalColor(a, b *RGB) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// PlainText concatenates the text of all segments
func PlainText(segments []Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
