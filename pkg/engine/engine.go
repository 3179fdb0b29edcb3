// Package engine is the composition root. It builds the palette, template
// library, parser, keyword system, spacing rules and color layer once from
// a configuration and hands out writers and masks that share them.
package engine

import (
	"sync"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/display"
	"github.com/dfgame/logstyle/pkg/keywords"
	"github.com/dfgame/logstyle/pkg/layer"
	"github.com/dfgame/logstyle/pkg/logging"
	"github.com/dfgame/logstyle/pkg/markup"
	"github.com/dfgame/logstyle/pkg/mask"
	"github.com/dfgame/logstyle/pkg/palette"
	"github.com/dfgame/logstyle/pkg/spacing"
	"github.com/dfgame/logstyle/pkg/templates"
	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui"
)

// Engine holds the read-only tables built from one configuration. It is
// safe for concurrent use; per-stream state lives in the writers it makes.
type Engine struct {
	Config    *config.Config
	Palette   *palette.Palette
	Templates *templates.Library
	Parser    *markup.Parser
	Keywords  *keywords.System
	Rules     *spacing.Rules
	Layer     *layer.Layer
}

// New builds an engine from a configuration
func New(cfg *config.Config) (*Engine, error) {
	done := logging.LogOperationStart(logging.GetLogger("engine"), "build engine")
	defer done()

	pal, err := palette.New(cfg.Palette)
	if err != nil {
		return nil, err
	}
	lib, err := templates.NewLibrary(cfg.Templates)
	if err != nil {
		return nil, err
	}
	parser := markup.NewParser(pal, lib)
	kw, err := keywords.New(parser, cfg.Keywords)
	if err != nil {
		return nil, err
	}
	rules, err := spacing.NewRules(cfg.Spacing)
	if err != nil {
		return nil, err
	}

	if missing := rules.Validate(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, t := range missing {
			names[i] = t.String()
		}
		logger := logging.GetLogger("engine")
		logger.Debug().Strs("transitions", names).Msg("Spacing rules leave transitions undefined")
	}

	return &Engine{
		Config:    cfg,
		Palette:   pal,
		Templates: lib,
		Parser:    parser,
		Keywords:  kw,
		Rules:     rules,
		Layer:     layer.New(cfg.Layer),
	}, nil
}

// Load builds an engine from layered configuration. It never fails: a
// configuration that cannot be loaded or built is replaced by the
// compiled-in one.
func Load(opts config.Options) *Engine {
	e, err := New(config.LoadOrBuiltin(opts))
	if err != nil {
		logger := logging.GetLogger("engine")
		logger.Warn().Err(err).Msg("Configuration rejected, using built-in defaults")
		return Builtin()
	}
	return e
}

// Builtin builds an engine from the compiled-in configuration
func Builtin() *Engine {
	e, err := New(config.Builtin())
	if err != nil {
		panic("builtin configuration is invalid: " + err.Error())
	}
	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine, loading it on first use
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = Load(config.Options{})
	})
	return defaultEngine
}

// NewMask returns a fresh mask with the configured shape
func (e *Engine) NewMask() *mask.Mask {
	return mask.FromConfig(e.Config.Mask)
}

// NewPacer returns a pacer with the configured delays
func (e *Engine) NewPacer() *display.Pacer {
	return display.NewPacer(e.Config.Pacing)
}

// NewWriter returns a block writer with its own spacing state. When the
// mask is enabled in configuration the writer gets a fresh one; opts are
// applied after that and can replace it.
func (e *Engine) NewWriter(sink ui.Sink, opts ...display.Option) *display.BlockWriter {
	var all []display.Option
	if e.Config.Mask.Enabled {
		all = append(all, display.WithMask(e.NewMask()))
	}
	all = append(all, opts...)
	return display.NewBlockWriter(sink, e.Rules, e.Parser, all...)
}

// Segments parses markup, optionally coloring keywords first
func (e *Engine) Segments(text string, withKeywords bool) []types.Segment {
	if withKeywords {
		text = e.Keywords.Colorize(text)
	}
	return e.Parser.Parse(text)
}
