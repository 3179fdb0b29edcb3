// Package ui provides the display sinks segments are rendered to. Every
// backend implements the same capability: render an ordered line of
// (text, optional fg, optional bg) segments, and emit blank lines.
package ui

import (
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/registry"
	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui/canvas"
	"github.com/dfgame/logstyle/pkg/ui/console"
	"github.com/dfgame/logstyle/pkg/ui/json"
	"github.com/dfgame/logstyle/pkg/ui/text"
	"github.com/dfgame/logstyle/pkg/ui/xml"
)

// Sink is the common interface for all output backends. A nil color means
// the backend's default.
type Sink interface {
	// RenderLine draws one line made of segments
	RenderLine(segs []types.Segment) error

	// BlankLines emits n empty lines
	BlankLines(n int) error
}

// Factory builds a sink writing to w
type Factory func(w io.Writer) (Sink, error)

var sinks = registry.New[Factory]()

func init() {
	registry.MustRegister(sinks, FormatTerminal.String(), func(w io.Writer) (Sink, error) {
		return console.New(w, termenv.ANSI), nil
	})
	registry.MustRegister(sinks, FormatCanvas.String(), func(io.Writer) (Sink, error) {
		return canvas.NewTerminal()
	})
	registry.MustRegister(sinks, FormatText.String(), func(w io.Writer) (Sink, error) {
		return text.New(w), nil
	})
	registry.MustRegister(sinks, FormatJSON.String(), func(w io.Writer) (Sink, error) {
		return json.New(w), nil
	})
	registry.MustRegister(sinks, FormatXML.String(), func(w io.Writer) (Sink, error) {
		return xml.New(w), nil
	})
}

// NewSink creates a sink for the format. Auto picks terminal or text
// output depending on what w is attached to.
func NewSink(format Format, w io.Writer) (Sink, error) {
	if format == FormatAuto {
		if file, ok := w.(*os.File); ok {
			return NewSink(DetectFormat(file), w)
		}
		// If not a file, default to terminal format
		return NewSink(FormatTerminal, w)
	}

	factory, err := sinks.Get(format.String())
	if err != nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
	return factory(w)
}

// Close releases a sink that holds resources, such as a screen or a
// buffered document. Other sinks are left alone.
func Close(s Sink) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
