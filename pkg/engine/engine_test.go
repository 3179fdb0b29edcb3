// TEST TYPE: Integration Test
// DEPENDENCIES: XDG isolation
// PURPOSE: Engine construction, fallback and shared state

package engine_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/engine"
	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui/text"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "etc"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestNewFromBuiltin(t *testing.T) {
	e, err := engine.New(config.Builtin())
	require.NoError(t, err)

	assert.True(t, e.Templates.Has("fiery"))
	assert.True(t, e.Palette.IsCode('R'))
	assert.Equal(t, 1, e.Rules.Lines(types.BlockCombatAction, types.BlockNarrative))

	segs := e.Segments("&Rfire&y ball", false)
	assert.Equal(t, "fire ball", types.PlainText(segs))
}

func TestNewRejectsBadTables(t *testing.T) {
	cfg := config.Builtin()
	cfg.Palette.Codes = append(cfg.Palette.Codes, config.CodeConfig{Code: "xx", Hex: "#000000"})
	_, err := engine.New(cfg)
	assert.True(t, errors.IsErrorCode(err, errors.ErrColorCodeInvalid))

	cfg = config.Builtin()
	cfg.Spacing.Rules = append(cfg.Spacing.Rules, config.RuleConfig{Prev: "Nope", Next: "Narrative"})
	_, err = engine.New(cfg)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBlockTypeUnknown))
}

func TestLoadFallsBack(t *testing.T) {
	dir := isolate(t)
	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[palette\n"), 0644))

	e := engine.Load(config.Options{Path: broken})
	require.NotNil(t, e)
	assert.Equal(t, config.Builtin(), e.Config)
}

func TestLoadUserTemplate(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "logstyle.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[templates]]
name = "ember"
shader = "sequence"
colors = "rR"
`), 0644))

	e := engine.Load(config.Options{Path: path, NoEnv: true})
	assert.True(t, e.Templates.Has("ember"))
	assert.True(t, e.Templates.Has("fiery"), "builtins kept")
}

func TestDefaultIsShared(t *testing.T) {
	isolate(t)
	assert.Same(t, engine.Default(), engine.Default())
}

func TestNewWriterAndMask(t *testing.T) {
	cfg := config.Builtin()
	cfg.Mask.Enabled = true
	cfg.Mask.Intensity = 5
	e, err := engine.New(cfg)
	require.NoError(t, err)

	m := e.NewMask()
	assert.Equal(t, 5.0, m.Intensity())
	assert.NotSame(t, m, e.NewMask())

	buf := &bytes.Buffer{}
	w := e.NewWriter(text.New(buf))
	ctx := context.Background()
	require.NoError(t, w.WriteMarkup(ctx, types.BlockCombatAction, "{{fiery|Flames}} lick the walls"))
	require.NoError(t, w.WriteMarkup(ctx, types.BlockNarrative, "Smoke fills the room."))
	assert.Equal(t, "Flames lick the walls\n\nSmoke fills the room.\n", buf.String())

	assert.Greater(t, e.NewPacer().Delay(types.BlockNarrative), e.NewPacer().Delay(types.BlockMenuBlock))
}

func TestSegmentsWithKeywords(t *testing.T) {
	e := engine.Builtin()
	plain := e.Segments("A frost giant", false)
	colored := e.Segments("A frost giant", true)
	assert.Len(t, plain, 1)
	assert.Greater(t, len(colored), len(plain))
	assert.Equal(t, types.PlainText(plain), types.PlainText(colored))
}
