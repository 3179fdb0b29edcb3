// Package canvas draws segments on a tcell screen using their RGB colors
// directly. The canvas keeps a scrollback of rendered lines and always shows
// the newest rows, wrapping lines wider than the screen.
package canvas

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/types"
)

// DefaultScrollback is the number of lines kept when none is given
const DefaultScrollback = 1000

type cell struct {
	r     rune
	width int
	style tcell.Style
}

// Sink owns a screen and the lines drawn on it
type Sink struct {
	mu         sync.Mutex
	screen     tcell.Screen
	lines      [][]types.Segment
	scrollback int
	ownScreen  bool
}

// New draws on an initialized screen. The caller keeps ownership of it.
func New(screen tcell.Screen) *Sink {
	return &Sink{screen: screen, scrollback: DefaultScrollback}
}

// NewTerminal opens the controlling terminal as a screen. Close releases it.
func NewTerminal() (*Sink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSinkWrite, "failed to open terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, errors.ErrSinkWrite, "failed to initialize terminal screen")
	}
	s := New(screen)
	s.ownScreen = true
	return s, nil
}

// SetScrollback limits how many lines are remembered
func (s *Sink) SetScrollback(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	s.scrollback = n
	s.trim()
}

// Screen returns the underlying screen
func (s *Sink) Screen() tcell.Screen {
	return s.screen
}

// RenderLine adds a line and redraws
func (s *Sink) RenderLine(segs []types.Segment) error {
	line := make([]types.Segment, len(segs))
	copy(line, segs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	s.trim()
	s.draw()
	return nil
}

// BlankLines adds n empty lines and redraws
func (s *Sink) BlankLines(n int) error {
	if n <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.lines = append(s.lines, nil)
	}
	s.trim()
	s.draw()
	return nil
}

// Redraw lays the lines out again, e.g. after a resize
func (s *Sink) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draw()
}

// Close finalizes the screen if the sink opened it. Later calls do
// nothing.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ownScreen {
		s.ownScreen = false
		s.screen.Fini()
	}
	return nil
}

func (s *Sink) trim() {
	if over := len(s.lines) - s.scrollback; over > 0 {
		s.lines = s.lines[over:]
	}
}

func (s *Sink) draw() {
	width, height := s.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	var rows [][]cell
	for _, line := range s.lines {
		rows = append(rows, layout(line, width)...)
	}
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}

	s.screen.Clear()
	for y, row := range rows {
		x := 0
		for _, c := range row {
			s.screen.SetContent(x, y, c.r, nil, c.style)
			x += c.width
		}
	}
	s.screen.Show()
}

// layout splits a line into screen rows of at most width columns. Embedded
// newlines start a new row.
func layout(line []types.Segment, width int) [][]cell {
	rows := [][]cell{nil}
	col := 0
	for _, seg := range line {
		style := Style(seg)
		for _, r := range seg.Text {
			if r == '\n' {
				rows = append(rows, nil)
				col = 0
				continue
			}
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if col+w > width {
				rows = append(rows, nil)
				col = 0
			}
			rows[len(rows)-1] = append(rows[len(rows)-1], cell{r: r, width: w, style: style})
			col += w
		}
	}
	return rows
}

// Style converts segment colors to a tcell style
func Style(seg types.Segment) tcell.Style {
	style := tcell.StyleDefault
	if seg.Fg != nil {
		style = style.Foreground(rgb(*seg.Fg))
	}
	if seg.Bg != nil {
		style = style.Background(rgb(*seg.Bg))
	}
	return style
}

func rgb(c types.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
