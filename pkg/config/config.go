package config

// Config is the complete logstyle configuration
type Config struct {
	Palette   PaletteConfig    `koanf:"palette" toml:"palette" yaml:"palette"`
	Templates []TemplateConfig `koanf:"templates" toml:"templates" yaml:"templates"`
	Keywords  KeywordsConfig   `koanf:"keywords" toml:"keywords" yaml:"keywords"`
	Spacing   SpacingConfig    `koanf:"spacing" toml:"spacing" yaml:"spacing"`
	Mask      MaskConfig       `koanf:"mask" toml:"mask" yaml:"mask"`
	Layer     LayerConfig      `koanf:"layer" toml:"layer" yaml:"layer"`
	Pacing    PacingConfig     `koanf:"pacing" toml:"pacing" yaml:"pacing"`
}

// PaletteConfig is the color code table
type PaletteConfig struct {
	DefaultForeground string       `koanf:"default_foreground" toml:"default_foreground" yaml:"default_foreground"`
	DefaultBackground string       `koanf:"default_background" toml:"default_background" yaml:"default_background"`
	Codes             []CodeConfig `koanf:"codes" toml:"codes" yaml:"codes"`
}

// CodeConfig maps one code character to a color
type CodeConfig struct {
	Code string `koanf:"code" toml:"code" yaml:"code"`
	Name string `koanf:"name" toml:"name" yaml:"name"`
	Hex  string `koanf:"hex" toml:"hex" yaml:"hex"`
}

// TemplateConfig describes a named color template. Colors is a string of
// code characters, e.g. "ROWYWOR".
type TemplateConfig struct {
	Name   string `koanf:"name" toml:"name" yaml:"name"`
	Shader string `koanf:"shader" toml:"shader" yaml:"shader"`
	Colors string `koanf:"colors" toml:"colors" yaml:"colors"`
}

type KeywordsConfig struct {
	StopWords []string      `koanf:"stop_words" toml:"stop_words" yaml:"stop_words"`
	Groups    []GroupConfig `koanf:"groups" toml:"groups" yaml:"groups"`
}

// GroupConfig is a keyword group. Pattern is either a template name or a
// single color code.
type GroupConfig struct {
	Name          string   `koanf:"name" toml:"name" yaml:"name"`
	Pattern       string   `koanf:"pattern" toml:"pattern" yaml:"pattern"`
	CaseSensitive bool     `koanf:"case_sensitive" toml:"case_sensitive" yaml:"case_sensitive"`
	Words         []string `koanf:"words" toml:"words" yaml:"words"`
}

type SpacingConfig struct {
	// Attached block types are folded into the previous block and never
	// become the "last" block.
	Attached []string     `koanf:"attached" toml:"attached" yaml:"attached"`
	Rules    []RuleConfig `koanf:"rules" toml:"rules" yaml:"rules"`
}

// RuleConfig is one spacing transition. Prev "none" matches the start of
// a session and is also the wildcard fallback.
type RuleConfig struct {
	Prev  string `koanf:"prev" toml:"prev" yaml:"prev"`
	Next  string `koanf:"next" toml:"next" yaml:"next"`
	Lines int    `koanf:"lines" toml:"lines" yaml:"lines"`
}

type MaskConfig struct {
	Enabled    bool    `koanf:"enabled" toml:"enabled" yaml:"enabled"`
	Intensity  float64 `koanf:"intensity" toml:"intensity" yaml:"intensity"`
	Wavelength float64 `koanf:"wavelength" toml:"wavelength" yaml:"wavelength"`
	IntervalMS int     `koanf:"interval_ms" toml:"interval_ms" yaml:"interval_ms"`
}

type LayerConfig struct {
	TemperatureIntensity float64 `koanf:"temperature_intensity" toml:"temperature_intensity" yaml:"temperature_intensity"`
}

// PacingConfig holds delays written after each block, in milliseconds
type PacingConfig struct {
	DefaultMS int            `koanf:"default_ms" toml:"default_ms" yaml:"default_ms"`
	Blocks    map[string]int `koanf:"blocks" toml:"blocks" yaml:"blocks"`
}
