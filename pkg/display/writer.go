// Package display serializes blocks onto a sink. A BlockWriter owns the
// spacing state of one output stream: it emits the blank lines owed before
// each block, writes the block, records its type and then paces.
package display

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dfgame/logstyle/pkg/coloredtext"
	"github.com/dfgame/logstyle/pkg/keywords"
	"github.com/dfgame/logstyle/pkg/layer"
	"github.com/dfgame/logstyle/pkg/logging"
	"github.com/dfgame/logstyle/pkg/markup"
	"github.com/dfgame/logstyle/pkg/mask"
	"github.com/dfgame/logstyle/pkg/spacing"
	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui"
)

// Option configures a BlockWriter
type Option func(*BlockWriter)

// WithKeywords colors keywords in markup lines before parsing
func WithKeywords(k *keywords.System) Option {
	return func(w *BlockWriter) { w.keywords = k }
}

// WithMask shifts the brightness of every line through m. Each written
// line advances the line offset by one.
func WithMask(m *mask.Mask) Option {
	return func(w *BlockWriter) { w.mask = m }
}

// WithPacer pauses after each block
func WithPacer(p *Pacer) Option {
	return func(w *BlockWriter) { w.pacer = p }
}

// WithSignificance adjusts every line to a significance level
func WithSignificance(s types.Significance) Option {
	return func(w *BlockWriter) {
		w.significance = s
		w.hasSignificance = true
	}
}

// WithDepth tints default-colored text with the layer's white for room
// number room (1-based) of total, warm near the entrance and cool deep in
// the dungeon. SetDepth moves the writer to another room.
func WithDepth(l *layer.Layer, room, total int) Option {
	return func(w *BlockWriter) {
		w.layer = l
		w.room, w.totalRooms = room, total
	}
}

// BlockWriter writes blocks to one sink. It is safe for concurrent use;
// blocks are written whole and in the order their calls acquire the writer.
type BlockWriter struct {
	mu      sync.Mutex
	sink    ui.Sink
	tracker *spacing.Tracker
	parser  *markup.Parser

	keywords        *keywords.System
	mask            *mask.Mask
	pacer           *Pacer
	significance    types.Significance
	hasSignificance bool
	layer           *layer.Layer
	room            int
	totalRooms      int

	line   int
	logger zerolog.Logger
}

// NewBlockWriter creates a writer with fresh spacing state
func NewBlockWriter(sink ui.Sink, rules *spacing.Rules, parser *markup.Parser, opts ...Option) *BlockWriter {
	w := &BlockWriter{
		sink:    sink,
		tracker: spacing.NewTracker(rules),
		parser:  parser,
		logger:  logging.GetLogger("display"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Pacer returns the writer's pacer, nil when output is not paced
func (w *BlockWriter) Pacer() *Pacer {
	return w.pacer
}

// WriteBlock writes one block made of already resolved lines
func (w *BlockWriter) WriteBlock(ctx context.Context, bt types.BlockType, lines ...[]types.Segment) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	blank := w.tracker.Before(bt)
	w.logger.Debug().
		Str("block", bt.String()).
		Str("previous", w.tracker.Last().String()).
		Int("blank_lines", blank).
		Int("lines", len(lines)).
		Msg("Writing block")

	if err := w.sink.BlankLines(blank); err != nil {
		return err
	}
	for _, segs := range lines {
		if err := w.sink.RenderLine(w.decorate(segs)); err != nil {
			return err
		}
	}
	w.tracker.Record(bt)

	if w.pacer != nil {
		return w.pacer.Wait(ctx, bt)
	}
	return nil
}

// WriteMarkup writes one block with a line per markup string
func (w *BlockWriter) WriteMarkup(ctx context.Context, bt types.BlockType, lines ...string) error {
	segs := make([][]types.Segment, 0, len(lines))
	for _, l := range lines {
		if w.keywords != nil {
			l = w.keywords.Colorize(l)
		}
		segs = append(segs, w.parser.Parse(l))
	}
	return w.WriteBlock(ctx, bt, segs...)
}

// WriteColored writes a single line block built from colored parts
func (w *BlockWriter) WriteColored(ctx context.Context, bt types.BlockType, parts ...coloredtext.ColoredText) error {
	return w.WriteBlock(ctx, bt, coloredtext.Segments(w.parser, parts...))
}

// Reset forgets the previous block; call it when an encounter or session
// starts
func (w *BlockWriter) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tracker.Reset()
	w.line = 0
}

// SetDepth moves a writer built with WithDepth to room number room of
// total. Writers without a layer ignore it.
func (w *BlockWriter) SetDepth(room, total int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.room, w.totalRooms = room, total
}

// Last is the type of the most recent non-attached block
func (w *BlockWriter) Last() types.BlockType {
	return w.tracker.Last()
}

func (w *BlockWriter) decorate(segs []types.Segment) []types.Segment {
	if w.layer != nil {
		base := w.parser.Palette().DefaultForeground()
		white := w.layer.WhiteByDepth(w.room, w.totalRooms, layer.Brightness(base))
		segs = layer.ApplyTemperatureToSegments(segs, base, white)
	}
	if w.hasSignificance {
		segs = layer.ApplySignificanceToSegments(segs, w.significance)
	}
	if w.mask != nil {
		segs = w.mask.ApplyToSegments(segs, w.line)
	}
	w.line++
	return segs
}
