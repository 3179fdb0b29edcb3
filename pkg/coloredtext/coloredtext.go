// Package coloredtext models a piece of caller-built text with a style
// selector and animation state. Resolution into segments happens at render
// time, so the same value can be drawn many times while its undulation
// offset moves.
package coloredtext

import (
	"math/rand"
	"unicode/utf8"

	"github.com/dfgame/logstyle/pkg/mask"
	"github.com/dfgame/logstyle/pkg/palette"
	"github.com/dfgame/logstyle/pkg/templates"
	"github.com/dfgame/logstyle/pkg/types"
)

// startOffsets bounds the random start offset of undulating text. Shaders
// reduce the offset modulo their sequence length.
const startOffsets = 64

// Styles gives access to the color tables a ColoredText resolves against.
// *markup.Parser implements it.
type Styles interface {
	Palette() *palette.Palette
	Templates() *templates.Library
}

// ColoredText is plain text plus how to color it. Code takes precedence
// over Template. The zero value renders as unstyled text.
type ColoredText struct {
	Text     string
	Template string
	Code     rune

	Undulate       bool
	UndulateOffset int

	Mask           *mask.Mask
	MaskLineOffset int
}

// Plain is text in the sink's default colors
func Plain(text string) ColoredText {
	return ColoredText{Text: text}
}

// FromColor is text in a single palette code
func FromColor(text string, code rune) ColoredText {
	return ColoredText{Text: text, Code: code}
}

// FromTemplate is text shaded by a named template. Undulating text starts
// at a random offset so neighbouring lines do not shimmer in lockstep.
func FromTemplate(text, template string, undulate bool) ColoredText {
	ct := ColoredText{Text: text, Template: template, Undulate: undulate}
	if undulate {
		ct.UndulateOffset = rand.Intn(startOffsets)
	}
	return ct
}

// WithMask returns a copy sampled through m at the given line offset
func (c ColoredText) WithMask(m *mask.Mask, lineOffset int) ColoredText {
	c.Mask = m
	c.MaskLineOffset = lineOffset
	return c
}

// AdvanceUndulation moves the shader start by one, wrapping at the
// template's sequence length. Non-undulating text is left alone.
func (c *ColoredText) AdvanceUndulation(lib *templates.Library) {
	if !c.Undulate {
		return
	}
	n := 0
	if t, ok := lib.Get(c.Template); ok {
		n = t.Len()
	}
	if n <= 1 {
		c.UndulateOffset = 0
		return
	}
	c.UndulateOffset = (c.UndulateOffset%n + 1) % n
}

// Segments resolves the text into colored segments. An unknown code or
// template falls back to the default foreground. Empty text has no
// segments.
func (c ColoredText) Segments(s Styles) []types.Segment {
	if c.Text == "" {
		return nil
	}

	p := s.Palette()
	var segs []types.Segment
	switch {
	case c.Code != 0:
		segs = []types.Segment{{Text: c.Text, Fg: types.Color(p.ColorOrDefault(c.Code))}}
	case c.Template != "":
		if t, ok := s.Templates().Get(c.Template); ok {
			offset := 0
			if c.Undulate {
				offset = c.UndulateOffset
			}
			segs = t.Segments(c.Text, offset, p)
		} else {
			segs = []types.Segment{{Text: c.Text, Fg: types.Color(p.DefaultForeground())}}
		}
	default:
		segs = []types.Segment{{Text: c.Text}}
	}

	if c.Mask != nil {
		segs = c.Mask.ApplyToSegments(segs, c.MaskLineOffset)
	}
	return segs
}

// Len is the visible width in characters
func (c ColoredText) Len() int {
	return utf8.RuneCountInString(c.Text)
}

func (c ColoredText) String() string {
	return c.Text
}
