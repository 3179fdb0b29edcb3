// TEST TYPE: Unit Test
// DEPENDENCIES: tcell simulation screen
// PURPOSE: RGB cells, wrapping and scrolling on the canvas sink

package canvas_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui/canvas"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y, n int) string {
	out := make([]rune, 0, n)
	for x := 0; x < n; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestRGBCells(t *testing.T) {
	screen := newScreen(t, 20, 5)
	s := canvas.New(screen)

	require.NoError(t, s.RenderLine([]types.Segment{
		{Text: "fire", Fg: types.Color(types.NewRGB(255, 50, 50))},
		{Text: " ball", Bg: types.Color(types.NewRGB(0, 0, 64))},
	}))

	assert.Equal(t, "fire ball", rowText(screen, 0, 9))

	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 50, 50), fg)

	_, _, style, _ = screen.GetContent(5, 0)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorDefault, fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 64), bg)
}

func TestWrapsLongLines(t *testing.T) {
	screen := newScreen(t, 10, 5)
	s := canvas.New(screen)

	require.NoError(t, s.RenderLine([]types.Segment{{Text: "abcdefghijKLM"}}))
	assert.Equal(t, "abcdefghij", rowText(screen, 0, 10))
	assert.Equal(t, "KLM", rowText(screen, 1, 3))
}

func TestScrollsToNewest(t *testing.T) {
	screen := newScreen(t, 10, 3)
	s := canvas.New(screen)

	for _, l := range []string{"one", "two", "three"} {
		require.NoError(t, s.RenderLine([]types.Segment{{Text: l}}))
	}
	require.NoError(t, s.BlankLines(1))
	require.NoError(t, s.RenderLine([]types.Segment{{Text: "four"}}))

	assert.Equal(t, "three", rowText(screen, 0, 5))
	r, _, _, _ := screen.GetContent(0, 1)
	assert.Equal(t, ' ', r)
	assert.Equal(t, "four", rowText(screen, 2, 4))
}

func TestScrollback(t *testing.T) {
	screen := newScreen(t, 10, 5)
	s := canvas.New(screen)
	s.SetScrollback(2)

	for _, l := range []string{"a", "b", "c"} {
		require.NoError(t, s.RenderLine([]types.Segment{{Text: l}}))
	}
	assert.Equal(t, "b", rowText(screen, 0, 1))
	assert.Equal(t, "c", rowText(screen, 1, 1))
}

func TestStyle(t *testing.T) {
	fg, bg, _ := canvas.Style(types.Segment{Text: "x"}).Decompose()
	assert.Equal(t, tcell.ColorDefault, fg)
	assert.Equal(t, tcell.ColorDefault, bg)
}
