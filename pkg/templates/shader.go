package templates

import (
	"strings"
	"unicode"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/palette"
	"github.com/dfgame/logstyle/pkg/types"
)

// ShaderKind selects how a template spreads its colors over text
type ShaderKind int

const (
	// Solid colors the whole text with the first code
	Solid ShaderKind = iota
	// Sequence walks the codes one non-whitespace character at a time
	Sequence
	// Alternation alternates codes per character like Sequence; it exists
	// as a separate kind so configs can express intent.
	Alternation
)

func (k ShaderKind) String() string {
	switch k {
	case Solid:
		return config.ShaderSolid
	case Sequence:
		return config.ShaderSequence
	case Alternation:
		return config.ShaderAlternation
	default:
		return "unknown"
	}
}

// ParseShaderKind resolves a shader name (case-insensitive)
func ParseShaderKind(s string) (ShaderKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case config.ShaderSolid:
		return Solid, nil
	case config.ShaderSequence:
		return Sequence, nil
	case config.ShaderAlternation:
		return Alternation, nil
	}
	return Solid, errors.Newf(errors.ErrTemplateInvalid, "unknown shader %q", s)
}

// Template is a named shader with its ordered color codes
type Template struct {
	Name  string
	Kind  ShaderKind
	Codes []rune
}

// Run is a piece of shaded text. Code 0 means the default foreground.
type Run struct {
	Code rune
	Text string
}

// Len is the number of codes in the sequence
func (t Template) Len() int {
	return len(t.Codes)
}

// Runs applies the shader to text starting at offset. Empty text yields no
// runs; a template without codes yields the whole text in the default color.
func (t Template) Runs(text string, offset int) []Run {
	if text == "" {
		return nil
	}
	if len(t.Codes) == 0 {
		return []Run{{Text: text}}
	}

	switch t.Kind {
	case Sequence, Alternation:
		return t.perCharacter(text, offset)
	default:
		return []Run{{Code: t.Codes[0], Text: text}}
	}
}

func (t Template) perCharacter(text string, offset int) []Run {
	n := len(t.Codes)
	idx := offset % n
	if idx < 0 {
		idx += n
	}

	runs := make([]Run, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			runs = append(runs, Run{Text: string(r)})
			continue
		}
		runs = append(runs, Run{Code: t.Codes[idx], Text: string(r)})
		idx = (idx + 1) % n
	}
	return runs
}

// Segments resolves Runs against a palette. Unknown codes and whitespace
// get the default foreground; background is left unset.
func (t Template) Segments(text string, offset int, p *palette.Palette) []types.Segment {
	runs := t.Runs(text, offset)
	segs := make([]types.Segment, 0, len(runs))
	for _, r := range runs {
		fg := p.DefaultForeground()
		if r.Code != 0 {
			fg = p.ColorOrDefault(r.Code)
		}
		segs = append(segs, types.Segment{Text: r.Text, Fg: types.Color(fg)})
	}
	return segs
}

// Markup re-serializes shaded text as inline &code markup, one code per
// run so parsing it back yields the same segmentation. Runs without a code
// use defaultCode.
func (t Template) Markup(text string, offset int, defaultCode rune) string {
	var sb strings.Builder
	for _, r := range t.Runs(text, offset) {
		code := r.Code
		if code == 0 {
			code = defaultCode
		}
		sb.WriteRune('&')
		sb.WriteRune(code)
		sb.WriteString(r.Text)
	}
	return sb.String()
}
