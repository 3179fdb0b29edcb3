// TEST TYPE: Integration Test
// DEPENDENCIES: Temp files, environment variables
// PURPOSE: Layered configuration loading and builtin fallback

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfgame/logstyle/pkg/errors"
)

// isolate points XDG config lookups at an empty directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	t.Setenv(EnvConfigPath, "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{NoUserFile: true, NoEnv: true})
	require.NoError(t, err)
	assert.Equal(t, Builtin(), cfg)
}

func TestBuiltinIsValid(t *testing.T) {
	require.NoError(t, Validate(Builtin()))

	cfg := Builtin()
	assert.Len(t, cfg.Palette.Codes, 18)
	assert.Equal(t, "y", cfg.Palette.DefaultForeground)
	assert.Equal(t, "K", cfg.Palette.DefaultBackground)
	assert.Contains(t, cfg.Spacing.Attached, "CriticalMissNarrative")
}

func TestLoadUserFileAppendsLists(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[mask]
intensity = 25.0

[[templates]]
name = "sunset"
shader = "sequence"
colors = "RORW"

[[keywords.groups]]
name = "names"
pattern = "M"
words = ["Mira"]
`)

	cfg, err := Load(Options{Path: path, NoEnv: true})
	require.NoError(t, err)

	assert.Equal(t, 25.0, cfg.Mask.Intensity)
	assert.Equal(t, 8.0, cfg.Mask.Wavelength, "untouched values keep defaults")

	builtin := Builtin()
	require.Len(t, cfg.Templates, len(builtin.Templates)+1)
	assert.Equal(t, TemplateConfig{Name: "sunset", Shader: "sequence", Colors: "RORW"}, cfg.Templates[len(cfg.Templates)-1])

	last := cfg.Keywords.Groups[len(cfg.Keywords.Groups)-1]
	assert.Equal(t, "names", last.Name)
	assert.Equal(t, []string{"Mira"}, last.Words)
}

func TestLoadYAMLUserFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
layer:
  temperature_intensity: 0.5
pacing:
  default_ms: 20
  blocks:
    Narrative: 900
`)

	cfg, err := Load(Options{Path: path, NoEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Layer.TemperatureIntensity)
	assert.Equal(t, 20, cfg.Pacing.DefaultMS)
	assert.Equal(t, 900, cfg.Pacing.Blocks["Narrative"])
	assert.Equal(t, 400, cfg.Pacing.Blocks["CombatAction"])
}

func TestLoadSearchesXDGConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "logstyle", "config.toml"), "[mask]\nenabled = true\n")

	cfg, err := Load(Options{NoEnv: true})
	require.NoError(t, err)
	assert.True(t, cfg.Mask.Enabled)
}

func TestLoadEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("LOGSTYLE_MASK__INTERVAL_MS", "250")
	t.Setenv("LOGSTYLE_MASK__ENABLED", "true")

	cfg, err := Load(Options{NoUserFile: true})
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Mask.IntervalMS)
	assert.True(t, cfg.Mask.Enabled)
}

func TestLoadEnvironmentPacingBlocks(t *testing.T) {
	isolate(t)
	t.Setenv("LOGSTYLE_PACING__BLOCKS__COMBATACTION", "5")

	for i := 0; i < 20; i++ {
		cfg, err := Load(Options{
			NoUserFile: true,
			Overrides:  map[string]interface{}{"pacing.blocks.narrative": 7},
		})
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Pacing.Blocks["CombatAction"])
		assert.Equal(t, 7, cfg.Pacing.Blocks["Narrative"])
		assert.NotContains(t, cfg.Pacing.Blocks, "combataction")
		assert.NotContains(t, cfg.Pacing.Blocks, "narrative")
	}
}

func TestCanonicalizeBlockKeys(t *testing.T) {
	layer := map[string]interface{}{
		"pacing": map[string]interface{}{
			"blocks": map[string]interface{}{
				"combataction": 5,
				"NARRATIVE":    7,
				"Bogus":        1,
			},
		},
	}
	canonicalizeBlockKeys(layer)

	blocks := layer["pacing"].(map[string]interface{})["blocks"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{
		"CombatAction": 5,
		"Narrative":    7,
		"Bogus":        1,
	}, blocks)

	canonicalizeBlockKeys(map[string]interface{}{"pacing": "oops"})
}

func TestLoadOverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("LOGSTYLE_MASK__INTENSITY", "30")

	cfg, err := Load(Options{
		NoUserFile: true,
		Overrides:  map[string]interface{}{"mask.intensity": 5.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Mask.Intensity)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(Options{Path: filepath.Join(dir, "nope.toml"), NoEnv: true})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		writeFile(t, path, "[mask\nintensity = ")
		_, err := Load(Options{Path: path, NoEnv: true})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.toml")
		writeFile(t, path, "[[spacing.rules]]\nprev = \"none\"\nnext = \"Cutscene\"\nlines = 1\n")
		_, err := Load(Options{Path: path, NoEnv: true})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})
}

func TestLoadOrBuiltinFallsBack(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	writeFile(t, path, "[[palette.codes]]\ncode = \"xx\"\nhex = \"#000000\"\n")

	cfg := LoadOrBuiltin(Options{Path: path, NoEnv: true})
	assert.Equal(t, Builtin(), cfg)
}

func TestMergeMaps(t *testing.T) {
	dest := map[string]interface{}{
		"mask":  map[string]interface{}{"intensity": 10, "wavelength": 8},
		"words": []interface{}{"a"},
		"name":  "x",
	}
	src := map[string]interface{}{
		"mask":  map[string]interface{}{"intensity": 20},
		"words": []string{"b"},
		"name":  "y",
		"extra": true,
	}

	mergeMaps(dest, src)

	assert.Equal(t, map[string]interface{}{"intensity": 20, "wavelength": 8}, dest["mask"])
	assert.Equal(t, []interface{}{"a", "b"}, dest["words"])
	assert.Equal(t, "y", dest["name"])
	assert.Equal(t, true, dest["extra"])
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "mask.interval_ms", envKey("LOGSTYLE_MASK__INTERVAL_MS"))
	assert.Equal(t, "pacing.blocks.narrative", envKey("LOGSTYLE_PACING__BLOCKS__NARRATIVE"))
}
