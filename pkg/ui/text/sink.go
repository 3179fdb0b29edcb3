// Package text provides plain text output without any styling
package text

import (
	"io"
	"strings"
	"sync"

	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/types"
)

// Sink writes the plain projection of every line
type Sink struct {
	mu     sync.Mutex
	output io.Writer
}

// New creates a new text sink
func New(output io.Writer) *Sink {
	return &Sink{output: output}
}

// RenderLine writes the segment texts followed by a newline
func (s *Sink) RenderLine(segs []types.Segment) error {
	return s.write(types.PlainText(segs) + "\n")
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
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to write text line")
	}
	return nil
}
