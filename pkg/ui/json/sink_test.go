package json_test

import (
	"bytes"
	encjson "encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui/json"
)

func TestRenderLine(t *testing.T) {
	buf := &bytes.Buffer{}
	s := json.New(buf)
	require.NoError(t, s.RenderLine([]types.Segment{
		{Text: "fire", Fg: types.Color(types.NewRGB(255, 50, 50))},
		{Text: " ball", Bg: types.Color(types.NewRGB(0, 0, 0))},
	}))
	require.NoError(t, s.BlankLines(1))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first json.Line
	require.NoError(t, encjson.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, []json.Segment{
		{Text: "fire", Fg: "#ff3232"},
		{Text: " ball", Bg: "#000000"},
	}, first.Segments)

	assert.Equal(t, `{"segments":[]}`, lines[1])
}
