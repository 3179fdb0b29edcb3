// TEST TYPE: Integration Test
// DEPENDENCIES: XDG isolation, temp files
// PURPOSE: Commands end to end through the cobra root

package logstyle

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfgame/logstyle/pkg/errors"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "etc"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("LOGSTYLE_CONFIG", "")
	t.Setenv("NO_COLOR", "1")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderText(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "render", "--format", "text", "&RHello {{fiery|world}}", "&Wsecond")
	require.NoError(t, err)
	assert.Equal(t, "Hello world\nsecond\n", out)
}

func TestRenderReadsStdin(t *testing.T) {
	isolate(t)

	out, err := run(t, "one\n&Rtwo\n", "render", "-f", "text")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", out)
}

func TestRenderNoInput(t *testing.T) {
	isolate(t)

	_, err := run(t, "", "render", "-f", "text")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRenderJSON(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "render", "-f", "json", "&RHot&y cold")
	require.NoError(t, err)

	var line struct {
		Segments []struct {
			Text string `json:"text"`
			Fg   string `json:"fg"`
		} `json:"segments"`
	}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &line))
	require.Len(t, line.Segments, 2)
	assert.Equal(t, "Hot", line.Segments[0].Text)
	assert.Equal(t, "#ff3232", line.Segments[0].Fg)
	assert.Equal(t, " cold", line.Segments[1].Text)
	assert.Equal(t, "#e6e6e6", line.Segments[1].Fg)
}

func TestRenderXML(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "render", "-f", "xml", "&Wgold")
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))
	segs := doc.FindElements("/log/line/seg")
	require.Len(t, segs, 1)
	assert.Equal(t, "gold", segs[0].Text())
	assert.Equal(t, "#ffff00", segs[0].SelectAttrValue("fg", ""))
}

func TestRenderFlagErrors(t *testing.T) {
	isolate(t)

	_, err := run(t, "", "render", "-f", "text", "--block", "Nope", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrBlockTypeUnknown))

	_, err = run(t, "", "render", "-f", "text", "--significance", "huge", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = run(t, "", "render", "-f", "paper", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = run(t, "", "--set", "novalue", "render", "-f", "text", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRenderDepth(t *testing.T) {
	isolate(t)

	decode := func(out string) string {
		var line struct {
			Segments []struct {
				Fg string `json:"fg"`
			} `json:"segments"`
		}
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &line))
		require.Len(t, line.Segments, 1)
		return line.Segments[0].Fg
	}

	out, err := run(t, "", "render", "-f", "json", "--depth", "1/5", "plain")
	require.NoError(t, err)
	warm := decode(out)

	out, err = run(t, "", "render", "-f", "json", "--depth", "5/5", "plain")
	require.NoError(t, err)
	cool := decode(out)

	assert.NotEmpty(t, warm)
	assert.NotEqual(t, warm, cool)

	out, err = run(t, "", "--set", "layer.temperature_intensity=0", "render", "-f", "json", "--depth", "1/5", "plain")
	require.NoError(t, err)
	neutral := decode(out)
	require.Len(t, neutral, 7)
	assert.Equal(t, neutral[1:3], neutral[3:5], "no tint without intensity")
	assert.Equal(t, neutral[3:5], neutral[5:7], "no tint without intensity")

	for _, bad := range []string{"3", "0/5", "6/5", "a/b"} {
		_, err = run(t, "", "render", "-f", "text", "--depth", bad, "x")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}
}

func TestParseDepth(t *testing.T) {
	room, total, err := parseDepth(" 3 / 10 ")
	require.NoError(t, err)
	assert.Equal(t, 3, room)
	assert.Equal(t, 10, total)
}

func TestStrip(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "strip", "&RHello {{fiery|world}}")
	require.NoError(t, err)
	assert.Equal(t, "Hello world\n", out)

	out, err = run(t, "", "strip", "--length", "&RHello {{fiery|world}}")
	require.NoError(t, err)
	assert.Equal(t, "11\n", out)
}

func TestKeywords(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "keywords", "The fire spreads")
	require.NoError(t, err)
	assert.Equal(t, "The {{fiery|fire}} spreads\n", out)

	out, err = run(t, "", "keywords", "--group", "frost", "fire and ice")
	require.NoError(t, err)
	assert.Equal(t, "fire and {{icy|ice}}\n", out)

	out, err = run(t, "", "keywords", "--name", "Thorin=W", "Thorin strikes")
	require.NoError(t, err)
	assert.Contains(t, out, "&WThorin")

	_, err = run(t, "", "keywords", "--name", "Thorin", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSpacing(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "spacing", "CombatAction", "CombatAction", "Narrative")
	require.NoError(t, err)

	var last string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "Narrative") {
			last = strings.TrimSpace(l)
		}
	}
	assert.True(t, strings.HasSuffix(last, "1"), "got %q", last)

	_, err = run(t, "", "spacing", "Bogus")
	assert.True(t, errors.IsErrorCode(err, errors.ErrBlockTypeUnknown))
}

func TestTemplatesAndPalette(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "templates", "--sample", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "fiery")
	assert.Contains(t, out, "ROWYWOR")
	assert.Contains(t, out, "alternation")

	out, err = run(t, "", "palette")
	require.NoError(t, err)
	assert.Contains(t, out, "#ff3232")
	assert.Contains(t, out, "(default fg)")
}

func TestConfigDump(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "--set", "mask.intensity=8", "config", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "intensity = 8")

	out, err = run(t, "", "config", "dump", "--as", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "palette:")

	_, err = run(t, "", "config", "dump", "--as", "ini")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "out", "config.toml")

	out, err := run(t, "", "config", "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = run(t, "", "config", "init", "--path", path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	_, err = run(t, "", "config", "init", "--path", path, "--force")
	assert.NoError(t, err)
}

func TestAnimate(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "animate", "-f", "text", "--frames", "3", "--interval", "1ms", "--template", "bee", "buzz")
	require.NoError(t, err)
	assert.Equal(t, "buzz\nbuzz\nbuzz\n", out)

	out, err = run(t, "", "animate", "-f", "text", "--frames", "2", "--interval", "1ms", "&Rglow")
	require.NoError(t, err)
	assert.Equal(t, "glow\nglow\n", out)

	_, err = run(t, "", "animate", "--template", "nope", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestVersionAndHelpTopics(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "logstyle version dev")

	out, err = run(t, "", "help", "block-spacing")
	require.NoError(t, err)
	assert.Contains(t, out, "blank")

	out, err = run(t, "", "help", "format")
	require.NoError(t, err)
	assert.Contains(t, out, "json")
}
