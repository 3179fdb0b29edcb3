// Package markup parses the inline color language used throughout the
// game log:
//
//	&X               set the foreground to code X
//	^X               set the background to code X
//	{{name|content}} shade content with the template called name
//
// Templates are expanded once, left to right, and do not nest. Anything
// that is not valid markup is kept as literal text: an unknown code after
// & or ^ is printed as is, and an unknown template name leaves its content
// unstyled. Parsing never fails.
//
// Strip removes markup in a single pass and does not rescan its output.
// Removing a code pair can leave a literal marker next to a code letter,
// so "&&yR" strips to "&R", which strips again to "". A template whose
// content ends in a literal marker behaves the same way: "{{red|&}}R"
// parses to the plain text "&R" while Strip, which drops the template
// first, sees the pair and returns "". Stripping and parsing agree on
// text where no such pair is formed.
package markup

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/dfgame/logstyle/pkg/logging"
	"github.com/dfgame/logstyle/pkg/palette"
	"github.com/dfgame/logstyle/pkg/templates"
	"github.com/dfgame/logstyle/pkg/types"
)

const (
	// ForegroundMarker precedes a foreground code
	ForegroundMarker = '&'
	// BackgroundMarker precedes a background code
	BackgroundMarker = '^'
)

var templatePattern = regexp.MustCompile(`\{\{([^|]+)\|([^}]+)\}\}`)

// Parser turns markup into segments. It only reads its palette and
// template library, so one Parser can serve any number of goroutines.
type Parser struct {
	palette   *palette.Palette
	templates *templates.Library
	logger    zerolog.Logger
}

// NewParser creates a parser over the given lookup tables
func NewParser(p *palette.Palette, lib *templates.Library) *Parser {
	return &Parser{
		palette:   p,
		templates: lib,
		logger:    logging.GetLogger("markup"),
	}
}

// Palette returns the code table the parser resolves against
func (p *Parser) Palette() *palette.Palette { return p.palette }

// Templates returns the template library
func (p *Parser) Templates() *templates.Library { return p.templates }

// IsMarker reports whether r starts a code pair
func IsMarker(r rune) bool {
	return r == ForegroundMarker || r == BackgroundMarker
}

// Parse converts markup into ordered segments. Colors not set by markup
// are nil and left to the sink's defaults. Adjacent segments are never
// merged.
func (p *Parser) Parse(text string) []types.Segment {
	expanded := p.Expand(text)

	var (
		segs   []types.Segment
		cur    strings.Builder
		fg, bg *types.RGB
	)
	flush := func() {
		if cur.Len() > 0 {
			segs = append(segs, types.Segment{Text: cur.String(), Fg: fg, Bg: bg})
			cur.Reset()
		}
	}

	runes := []rune(expanded)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if IsMarker(r) && i+1 < len(runes) {
			if c, ok := p.palette.Lookup(runes[i+1]); ok {
				flush()
				if r == ForegroundMarker {
					fg = types.Color(c)
				} else {
					bg = types.Color(c)
				}
				i++
				continue
			}
		}
		cur.WriteRune(r)
	}
	flush()

	return segs
}

// Expand replaces every {{name|content}} with the shaded content written
// as inline codes, followed by a code restoring the foreground that was
// active before the template (the default foreground if none was).
func (p *Parser) Expand(text string) string {
	if !strings.Contains(text, "{{") {
		return text
	}
	matches := templatePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	defaultFg := p.palette.DefaultForegroundCode()
	active := defaultFg

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		before := text[last:m[0]]
		sb.WriteString(before)
		active = p.activeForeground(before, active)

		name, content := text[m[2]:m[3]], text[m[4]:m[5]]
		tmpl, ok := p.templates.Get(name)
		if !ok {
			p.logger.Debug().Str("template", name).Msg("Unknown template, content left unstyled")
			sb.WriteString(content)
			active = p.activeForeground(content, active)
			last = m[1]
			continue
		}

		sb.WriteString(tmpl.Markup(content, 0, defaultFg))
		sb.WriteRune(ForegroundMarker)
		sb.WriteRune(active)
		last = m[1]
	}
	sb.WriteString(text[last:])

	return sb.String()
}

// activeForeground returns the last foreground code set in text, or
// current if text sets none.
func (p *Parser) activeForeground(text string, current rune) rune {
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if !IsMarker(runes[i]) || !p.palette.IsCode(runes[i+1]) {
			continue
		}
		if runes[i] == ForegroundMarker {
			current = runes[i+1]
		}
		i++
	}
	return current
}

// Strip removes all markup: templates are replaced by their content, then
// every valid code pair is dropped.
func (p *Parser) Strip(text string) string {
	if strings.Contains(text, "{{") {
		text = templatePattern.ReplaceAllString(text, "$2")
	}
	return p.stripCodes(text)
}

func (p *Parser) stripCodes(text string) string {
	if !strings.ContainsAny(text, "&^") {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if IsMarker(runes[i]) && i+1 < len(runes) && p.palette.IsCode(runes[i+1]) {
			i++
			continue
		}
		sb.WriteRune(runes[i])
	}
	return sb.String()
}

// DisplayLength is the visible width of marked-up text, one column per
// character.
func (p *Parser) DisplayLength(text string) int {
	return utf8.RuneCountInString(p.Strip(text))
}

// HasMarkup reports whether text contains any template or valid code pair
func (p *Parser) HasMarkup(text string) bool {
	if templatePattern.MatchString(text) {
		return true
	}
	return p.stripCodes(text) != text
}
