package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui/console"
)

var red = types.Color(types.NewRGB(255, 50, 50))

func render(t *testing.T, profile termenv.Profile, segs []types.Segment) string {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, console.New(buf, profile).RenderLine(segs))
	return buf.String()
}

func TestAsciiProfileDropsColor(t *testing.T) {
	out := render(t, termenv.Ascii, []types.Segment{{Text: "fire", Fg: red}, {Text: " ball\t!"}})
	assert.Equal(t, "fire ball\t!\n", out)
}

func TestANSIProfile(t *testing.T) {
	out := render(t, termenv.ANSI, []types.Segment{{Text: "fire", Fg: red}, {Text: " ball"}})
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "38;2;", "basic palette only")
	assert.True(t, strings.HasSuffix(out, " ball\n"))
}

func TestTrueColorProfile(t *testing.T) {
	out := render(t, termenv.TrueColor, []types.Segment{{Text: "fire", Fg: red, Bg: types.Color(types.NewRGB(0, 0, 0))}})
	assert.Contains(t, out, "38;2;255;50;50")
	assert.Contains(t, out, "48;2;0;0;0")
}

func TestWhitespaceKept(t *testing.T) {
	out := render(t, termenv.Ascii, []types.Segment{{Text: "  a ", Fg: red}, {Text: " "}})
	assert.Equal(t, "  a  \n", out)
}

func TestBlankLines(t *testing.T) {
	buf := &bytes.Buffer{}
	s := console.New(buf, termenv.ANSI)
	require.NoError(t, s.BlankLines(2))
	require.NoError(t, s.BlankLines(0))
	assert.Equal(t, "\n\n", buf.String())
}
