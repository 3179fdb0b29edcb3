// Package palette holds the color code table: single characters used
// after & and ^ in markup, each mapped to an RGB color, plus the default
// foreground and background codes.
package palette

import (
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/registry"
	"github.com/dfgame/logstyle/pkg/types"
)

// Entry is one code of the table
type Entry struct {
	Code  rune
	Name  string
	Color types.RGB
}

// Palette is immutable once built and safe for concurrent use
type Palette struct {
	entries   registry.Registry[Entry]
	defaultFg rune
	defaultBg rune
}

// New builds a palette from configuration. A later entry for the same
// code replaces the earlier one.
func New(cfg config.PaletteConfig) (*Palette, error) {
	p := &Palette{entries: registry.New[Entry]()}

	for _, c := range cfg.Codes {
		code, size := utf8.DecodeRuneInString(c.Code)
		if size == 0 || size != len(c.Code) {
			return nil, errors.Newf(errors.ErrColorCodeInvalid, "color code %q must be a single character", c.Code)
		}
		rgb, err := types.ParseHex(c.Hex)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrColorCodeInvalid, "color code %q", c.Code)
		}
		if err := p.entries.Put(c.Code, Entry{Code: code, Name: c.Name, Color: rgb}); err != nil {
			return nil, err
		}
	}

	var err error
	if p.defaultFg, err = p.mustHave(cfg.DefaultForeground, "default foreground"); err != nil {
		return nil, err
	}
	if p.defaultBg, err = p.mustHave(cfg.DefaultBackground, "default background"); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Palette) mustHave(code, what string) (rune, error) {
	if !p.entries.Has(code) {
		return 0, errors.Newf(errors.ErrColorCodeInvalid, "%s %q is not a defined code", what, code)
	}
	r, _ := utf8.DecodeRuneInString(code)
	return r, nil
}

// Builtin returns the compiled-in palette
func Builtin() *Palette {
	p, err := New(config.Builtin().Palette)
	if err != nil {
		panic("builtin palette is invalid: " + err.Error())
	}
	return p
}

// Lookup returns the color for a code
func (p *Palette) Lookup(code rune) (types.RGB, bool) {
	e, err := p.entries.Get(string(code))
	if err != nil {
		return types.RGB{}, false
	}
	return e.Color, true
}

// IsCode reports whether code is defined
func (p *Palette) IsCode(code rune) bool {
	return p.entries.Has(string(code))
}

// ColorOrDefault resolves a code, falling back to the default foreground
func (p *Palette) ColorOrDefault(code rune) types.RGB {
	if c, ok := p.Lookup(code); ok {
		return c
	}
	return p.DefaultForeground()
}

func (p *Palette) DefaultForegroundCode() rune { return p.defaultFg }
func (p *Palette) DefaultBackgroundCode() rune { return p.defaultBg }

func (p *Palette) DefaultForeground() types.RGB {
	c, _ := p.Lookup(p.defaultFg)
	return c
}

func (p *Palette) DefaultBackground() types.RGB {
	c, _ := p.Lookup(p.defaultBg)
	return c
}

// Entries lists the table in definition order
func (p *Palette) Entries() []Entry {
	names := p.entries.List()
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		if e, err := p.entries.Get(n); err == nil {
			out = append(out, e)
		}
	}
	return out
}

// CodeFor finds the code for a color: an exact match in definition order,
// otherwise the perceptually closest entry (CIE Lab distance).
func (p *Palette) CodeFor(c types.RGB) rune {
	entries := p.Entries()
	for _, e := range entries {
		if e.Color == c {
			return e.Code
		}
	}

	target := toColorful(c)
	best, bestDist := p.defaultFg, -1.0
	for _, e := range entries {
		d := target.DistanceLab(toColorful(e.Color))
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.Code, d
		}
	}
	return best
}

func toColorful(c types.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
