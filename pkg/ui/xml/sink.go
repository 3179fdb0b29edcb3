// Package xml collects rendered lines into an XML segment document. The
// document is written when the sink is closed.
//
//	<log>
//	<line><seg fg="#ff3232">fire</seg><seg> ball</seg></line>
//	<line/>
//	</log>
package xml

import (
	"io"
	"sync"

	"github.com/beevik/etree"

	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/types"
)

// Sink builds the document in memory
type Sink struct {
	mu     sync.Mutex
	output io.Writer
	doc    *etree.Document
	root   *etree.Element
	closed bool
}

// New creates an XML sink writing to output on Close
func New(output io.Writer) *Sink {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateCharData("\n")
	root := doc.CreateElement("log")
	root.CreateCharData("\n")
	return &Sink{output: output, doc: doc, root: root}
}

// RenderLine appends a line element
func (s *Sink) RenderLine(segs []types.Segment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New(errors.ErrSinkWrite, "xml sink is closed")
	}

	line := s.root.CreateElement("line")
	for _, seg := range segs {
		el := line.CreateElement("seg")
		if seg.Fg != nil {
			el.CreateAttr("fg", seg.Fg.Hex())
		}
		if seg.Bg != nil {
			el.CreateAttr("bg", seg.Bg.Hex())
		}
		el.SetText(seg.Text)
	}
	s.root.CreateCharData("\n")
	return nil
}

// BlankLines appends n empty line elements
func (s *Sink) BlankLines(n int) error {
	for i := 0; i < n; i++ {
		if err := s.RenderLine(nil); err != nil {
			return err
		}
	}
	return nil
}

// Document exposes the document built so far
func (s *Sink) Document() *etree.Document {
	return s.doc
}

// Close writes the document. Later calls do nothing.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.doc.CreateCharData("\n")
	if _, err := s.doc.WriteTo(s.output); err != nil {
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to write xml document")
	}
	return nil
}
