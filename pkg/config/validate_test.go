// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Configuration validation, dump and generated template

package config

import (
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dfgame/logstyle/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"builtin is valid", func(c *Config) {}, ""},
		{"multi-char code", func(c *Config) { c.Palette.Codes[0].Code = "rr" }, "single character"},
		{"bad hex", func(c *Config) { c.Palette.Codes[0].Hex = "#zz0000" }, "invalid hex"},
		{"undefined default fg", func(c *Config) { c.Palette.DefaultForeground = "q" }, "default_foreground"},
		{"unknown shader", func(c *Config) { c.Templates[0].Shader = "plasma" }, "unknown shader"},
		{"empty template colors", func(c *Config) { c.Templates[0].Colors = "" }, "colors must not be empty"},
		{"group without pattern", func(c *Config) { c.Keywords.Groups[0].Pattern = "" }, "pattern is required"},
		{"negative lines", func(c *Config) { c.Spacing.Rules[0].Lines = -1 }, "must not be negative"},
		{"unknown block", func(c *Config) { c.Spacing.Rules[0].Prev = "Cutscene" }, "unknown block type"},
		{"none as next", func(c *Config) { c.Spacing.Rules[0].Next = "none" }, "next block type is required"},
		{"unknown pacing block", func(c *Config) { c.Pacing.Blocks["Cutscene"] = 10 }, "pacing.blocks"},
		{"negative interval", func(c *Config) { c.Mask.IntervalMS = -5 }, "interval_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Builtin()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.True(t, errors.IsErrorCode(Validate(nil), errors.ErrConfigInvalid))
}

func TestMarshal(t *testing.T) {
	cfg := Builtin()

	t.Run("toml", func(t *testing.T) {
		out, err := Marshal(cfg, "toml")
		require.NoError(t, err)

		var back Config
		require.NoError(t, toml.Unmarshal(out, &back))
		assert.Equal(t, cfg.Templates, back.Templates)
		assert.Equal(t, cfg.Spacing.Rules, back.Spacing.Rules)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := Marshal(cfg, "yaml")
		require.NoError(t, err)
		assert.Contains(t, string(out), "default_foreground:")

		var back Config
		require.NoError(t, yaml.Unmarshal(out, &back))
		assert.Equal(t, cfg.Palette, back.Palette)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Marshal(cfg, "json")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "[["),
			"only plain table headers stay uncommented: %q", line)
	}

	var parsed map[string]interface{}
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed), "generated file is valid TOML")
}
