package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/types"
)

// Shader names accepted in TemplateConfig.Shader
const (
	ShaderSolid       = "solid"
	ShaderSequence    = "sequence"
	ShaderAlternation = "alternation"
)

// Validate checks structural problems that would make the configuration
// unusable. Unknown codes referenced by templates are not an error: they
// render in the default color.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfigInvalid, "configuration is nil")
	}

	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	codes := make(map[string]bool)
	for i, c := range cfg.Palette.Codes {
		if utf8.RuneCountInString(c.Code) != 1 {
			add("palette.codes[%d]: code %q must be a single character", i, c.Code)
			continue
		}
		if _, err := types.ParseHex(c.Hex); err != nil {
			add("palette.codes[%d] (%s): %v", i, c.Code, err)
		}
		codes[c.Code] = true
	}
	if len(codes) == 0 {
		add("palette.codes: at least one color code is required")
	}
	if !codes[cfg.Palette.DefaultForeground] {
		add("palette.default_foreground %q is not a defined code", cfg.Palette.DefaultForeground)
	}
	if !codes[cfg.Palette.DefaultBackground] {
		add("palette.default_background %q is not a defined code", cfg.Palette.DefaultBackground)
	}

	for i, t := range cfg.Templates {
		if strings.TrimSpace(t.Name) == "" {
			add("templates[%d]: name is required", i)
		}
		switch strings.ToLower(t.Shader) {
		case ShaderSolid, ShaderSequence, ShaderAlternation:
		default:
			add("templates[%d] (%s): unknown shader %q", i, t.Name, t.Shader)
		}
		if t.Colors == "" {
			add("templates[%d] (%s): colors must not be empty", i, t.Name)
		}
	}

	for i, g := range cfg.Keywords.Groups {
		if strings.TrimSpace(g.Name) == "" {
			add("keywords.groups[%d]: name is required", i)
		}
		if g.Pattern == "" {
			add("keywords.groups[%d] (%s): pattern is required", i, g.Name)
		}
	}

	for i, r := range cfg.Spacing.Rules {
		if _, err := types.ParseBlockType(r.Prev); err != nil {
			add("spacing.rules[%d]: %v", i, err)
		}
		next, err := types.ParseBlockType(r.Next)
		if err != nil {
			add("spacing.rules[%d]: %v", i, err)
		} else if next == types.BlockNone {
			add("spacing.rules[%d]: next block type is required", i)
		}
		if r.Lines < 0 {
			add("spacing.rules[%d]: lines must not be negative, got %d", i, r.Lines)
		}
	}
	for _, a := range cfg.Spacing.Attached {
		if _, err := types.ParseBlockType(a); err != nil {
			add("spacing.attached: %v", err)
		}
	}

	if cfg.Mask.Wavelength < 0 {
		add("mask.wavelength must not be negative")
	}
	if cfg.Mask.IntervalMS < 0 {
		add("mask.interval_ms must not be negative")
	}

	if cfg.Pacing.DefaultMS < 0 {
		add("pacing.default_ms must not be negative")
	}
	for name, ms := range cfg.Pacing.Blocks {
		if _, err := types.ParseBlockType(name); err != nil {
			add("pacing.blocks: %v", err)
		}
		if ms < 0 {
			add("pacing.blocks.%s must not be negative", name)
		}
	}

	if len(problems) > 0 {
		return errors.Newf(errors.ErrConfigInvalid, "invalid configuration: %s", strings.Join(problems, "; ")).
			WithDetail("problems", problems)
	}
	return nil
}
