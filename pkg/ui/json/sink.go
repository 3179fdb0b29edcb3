// Package json provides machine-readable output, one JSON object per line
package json

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/types"
)

// Line is the encoded form of one rendered line. Blank lines have no
// segments.
type Line struct {
	Segments []Segment `json:"segments"`
}

// Segment is the encoded form of a colored segment. Colors are hex strings
// and are omitted when the backend default applies.
type Segment struct {
	Text string `json:"text"`
	Fg   string `json:"fg,omitempty"`
	Bg   string `json:"bg,omitempty"`
}

// Sink encodes lines as a JSON stream
type Sink struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

// New creates a new JSON sink
func New(output io.Writer) *Sink {
	return &Sink{encoder: json.NewEncoder(output)}
}

// RenderLine encodes one line
func (s *Sink) RenderLine(segs []types.Segment) error {
	line := Line{Segments: make([]Segment, 0, len(segs))}
	for _, seg := range segs {
		out := Segment{Text: seg.Text}
		if seg.Fg != nil {
			out.Fg = seg.Fg.Hex()
		}
		if seg.Bg != nil {
			out.Bg = seg.Bg.Hex()
		}
		line.Segments = append(line.Segments, out)
	}
	return s.encode(line)
}

// BlankLines encodes n empty lines
func (s *Sink) BlankLines(n int) error {
	for i := 0; i < n; i++ {
		if err := s.encode(Line{Segments: []Segment{}}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sink) encode(line Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.encoder.Encode(line); err != nil {
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to encode line")
	}
	return nil
}
