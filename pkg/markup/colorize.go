package markup

import (
	"strings"
	"unicode/utf8"

	"github.com/dfgame/logstyle/pkg/types"
)

// Colorize wraps text in a template when style names one, or in a
// foreground code (restoring the default afterwards) when style is a
// single known code. Anything else returns text unchanged.
func (p *Parser) Colorize(text, style string) string {
	if text == "" {
		return text
	}
	if p.templates.Has(style) {
		return "{{" + strings.ToLower(strings.TrimSpace(style)) + "|" + text + "}}"
	}
	if code, ok := p.singleCode(style); ok {
		return string(ForegroundMarker) + string(code) + text +
			string(ForegroundMarker) + string(p.palette.DefaultForegroundCode())
	}
	return text
}

// ColorizeRaw sets explicit foreground and background codes around text.
// A zero rune leaves that channel alone; channels that were set are
// restored to the palette defaults afterwards.
func (p *Parser) ColorizeRaw(text string, fg, bg rune) string {
	var sb strings.Builder
	if fg != 0 && p.palette.IsCode(fg) {
		sb.WriteRune(ForegroundMarker)
		sb.WriteRune(fg)
	} else {
		fg = 0
	}
	if bg != 0 && p.palette.IsCode(bg) {
		sb.WriteRune(BackgroundMarker)
		sb.WriteRune(bg)
	} else {
		bg = 0
	}
	sb.WriteString(text)
	if fg != 0 {
		sb.WriteRune(ForegroundMarker)
		sb.WriteRune(p.palette.DefaultForegroundCode())
	}
	if bg != 0 {
		sb.WriteRune(BackgroundMarker)
		sb.WriteRune(p.palette.DefaultBackgroundCode())
	}
	return sb.String()
}

// SegmentsToMarkup writes segments back as inline codes. Colors are mapped
// to the nearest palette code; a nil foreground becomes the default code
// and a nil background emits nothing.
func (p *Parser) SegmentsToMarkup(segs []types.Segment) string {
	var (
		sb             strings.Builder
		fg, bg         rune
		haveFg, haveBg bool
	)
	for _, s := range segs {
		if s.Text == "" {
			continue
		}
		code := p.palette.DefaultForegroundCode()
		if s.Fg != nil {
			code = p.palette.CodeFor(*s.Fg)
		}
		if !haveFg || code != fg {
			sb.WriteRune(ForegroundMarker)
			sb.WriteRune(code)
			fg, haveFg = code, true
		}
		if s.Bg != nil {
			if code := p.palette.CodeFor(*s.Bg); !haveBg || code != bg {
				sb.WriteRune(BackgroundMarker)
				sb.WriteRune(code)
				bg, haveBg = code, true
			}
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func (p *Parser) singleCode(style string) (rune, bool) {
	if utf8.RuneCountInString(style) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(style)
	return r, p.palette.IsCode(r)
}
