package coloredtext

import (
	"strings"

	"github.com/dfgame/logstyle/pkg/types"
)

// Builder assembles a line out of differently styled parts
type Builder struct {
	parts []ColoredText
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends unstyled text
func (b *Builder) Add(text string) *Builder {
	return b.Append(Plain(text))
}

// AddColor appends text in a single code
func (b *Builder) AddColor(text string, code rune) *Builder {
	return b.Append(FromColor(text, code))
}

// AddTemplate appends text shaded by a template
func (b *Builder) AddTemplate(text, template string) *Builder {
	return b.Append(ColoredText{Text: text, Template: template})
}

// Append adds a prepared part
func (b *Builder) Append(parts ...ColoredText) *Builder {
	b.parts = append(b.parts, parts...)
	return b
}

// Build returns a copy of the parts
func (b *Builder) Build() []ColoredText {
	out := make([]ColoredText, len(b.parts))
	copy(out, b.parts)
	return out
}

// Segments resolves every part in order
func (b *Builder) Segments(s Styles) []types.Segment {
	return Segments(s, b.parts...)
}

// PlainText joins the parts without styling
func (b *Builder) PlainText() string {
	var sb strings.Builder
	for _, p := range b.parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Len is the visible width of all parts
func (b *Builder) Len() int {
	n := 0
	for _, p := range b.parts {
		n += p.Len()
	}
	return n
}

// Segments resolves parts in order into one segment list
func Segments(s Styles, parts ...ColoredText) []types.Segment {
	var out []types.Segment
	for _, p := range parts {
		out = append(out, p.Segments(s)...)
	}
	return out
}

// Merge joins adjacent segments that share both colors. Rendering never
// merges on its own; callers opt in when they want fewer, larger runs.
func Merge(segs []types.Segment) []types.Segment {
	if len(segs) == 0 {
		return nil
	}
	out := make([]types.Segment, 0, len(segs))
	cur := segs[0]
	for _, s := range segs[1:] {
		if s.SameStyle(cur) {
			cur.Text += s.Text
			continue
		}
		out = append(out, cur)
		cur = s
	}
	return append(out, cur)
}
