// Package console renders segments as ANSI colored terminal lines. Colors
// are degraded to the writer's color profile; the basic 16 color palette is
// the default.
package console

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/types"
)

// Sink writes styled lines through a lipgloss renderer
type Sink struct {
	mu       sync.Mutex
	output   io.Writer
	renderer *lipgloss.Renderer
}

// New creates a console sink with a fixed color profile. termenv.ANSI maps
// every RGB to the nearest basic palette entry; termenv.Ascii drops color.
func New(output io.Writer, profile termenv.Profile) *Sink {
	r := lipgloss.NewRenderer(output)
	r.SetColorProfile(profile)
	return &Sink{output: output, renderer: r}
}

// Style returns the lipgloss style for a segment
func (s *Sink) Style(seg types.Segment) lipgloss.Style {
	style := s.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if seg.Fg != nil {
		style = style.Foreground(lipgloss.Color(seg.Fg.Hex()))
	}
	if seg.Bg != nil {
		style = style.Background(lipgloss.Color(seg.Bg.Hex()))
	}
	return style
}

// RenderLine writes all segments followed by a newline
func (s *Sink) RenderLine(segs []types.Segment) error {
	var sb strings.Builder
	for _, seg := range segs {
		if seg.Fg == nil && seg.Bg == nil {
			sb.WriteString(seg.Text)
			continue
		}
		sb.WriteString(s.Style(seg).Render(seg.Text))
	}
	sb.WriteByte('\n')
	return s.write(sb.String())
}

// BlankLines writes n newlines
func (s *Sink) BlankLines(n int) error {
	if n <= 0 {
		return nil
	}
	return s.write(strings.Repeat("\n", n))
}

func (s *Sink) write(str string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.output, str); err != nil {
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to write console line")
	}
	return nil
}
