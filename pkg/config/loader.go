package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/logging"
	"github.com/dfgame/logstyle/pkg/types"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "LOGSTYLE_"

	// EnvConfigPath names an explicit config file when no path is given
	EnvConfigPath = "LOGSTYLE_CONFIG"

	userConfigRelPath = "logstyle/config.toml"
)

// Options controls which layers Load applies
type Options struct {
	// Path is an explicit user config file. Empty means LOGSTYLE_CONFIG,
	// then the XDG config search path.
	Path string

	// NoUserFile skips the user file layer entirely
	NoUserFile bool

	// NoEnv skips environment variables
	NoEnv bool

	// Overrides are dotted keys applied last, e.g. "mask.intensity": 8
	Overrides map[string]interface{}
}

// Load builds the configuration from all layers and validates it
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	done := logging.LogOperationStart(logger, "config.load")
	defer done()

	// 1. Embedded defaults
	base, err := parseLayer(&rawBytesProvider{bytes: defaultConfig}, toml.Parser())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 2. User file
	if !opts.NoUserFile {
		path, explicit := resolveUserConfigPath(opts.Path)
		if path != "" {
			if _, statErr := os.Stat(path); statErr == nil {
				userLayer, err := parseLayer(file.Provider(path), parserFor(path))
				if err != nil {
					return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
						WithDetail("path", path)
				}
				mergeMaps(base, userLayer)
				logger.Debug().Str("path", path).Msg("Loaded user config")
			} else if explicit {
				return nil, errors.Wrapf(statErr, errors.ErrConfigLoad, "config file %s not found", path).
					WithDetail("path", path)
			}
		}
	}

	// 3. Environment
	if !opts.NoEnv {
		envLayer, err := parseLayer(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
		mergeMaps(base, envLayer)
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		overrideLayer, err := parseLayer(confmap.Provider(opts.Overrides, "."), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
		mergeMaps(base, overrideLayer)
	}

	cfg, err := decode(base)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrBuiltin is Load that never fails: any error is logged as a
// warning and the compiled-in configuration is returned instead.
func LoadOrBuiltin(opts Options) *Config {
	cfg, err := Load(opts)
	if err != nil {
		logger := logging.GetLogger("config")
		logger.Warn().
			Err(err).
			Str("path", opts.Path).
			Msg("Failed to load configuration, using built-in defaults")
		return Builtin()
	}
	return cfg
}

func parseLayer(p koanf.Provider, parser koanf.Parser) (map[string]interface{}, error) {
	k := koanf.New(".")
	if err := k.Load(p, parser); err != nil {
		return nil, err
	}
	raw := k.Raw()
	canonicalizeBlockKeys(raw)
	return raw, nil
}

// canonicalizeBlockKeys renames pacing.blocks keys to their block type
// names, so "combataction" from the environment and "CombatAction" from a
// file are one key and the later layer wins on merge. Unknown names are
// left for Validate to report.
func canonicalizeBlockKeys(layer map[string]interface{}) {
	pacing, ok := layer["pacing"].(map[string]interface{})
	if !ok {
		return
	}
	blocks, ok := pacing["blocks"].(map[string]interface{})
	if !ok {
		return
	}

	names := make([]string, 0, len(blocks))
	for name := range blocks {
		names = append(names, name)
	}
	sort.Strings(names)

	canonical := make(map[string]interface{}, len(blocks))
	for _, name := range names {
		key := name
		if bt, err := types.ParseBlockType(name); err == nil && bt != types.BlockNone {
			key = string(bt)
		}
		canonical[key] = blocks[name]
	}
	pacing["blocks"] = canonical
}

func decode(data map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(data, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load merged config")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// resolveUserConfigPath returns the file to load and whether the caller
// asked for it explicitly (a missing explicit file is an error).
func resolveUserConfigPath(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, true
	}
	found, err := xdg.SearchConfigFile(userConfigRelPath)
	if err != nil {
		return "", false
	}
	return found, false
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps LOGSTYLE_MASK__INTERVAL_MS to mask.interval_ms
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func mergeMaps(dest, src map[string]interface{}) {
	for key, srcVal := range src {
		destVal, destOk := dest[key]
		if !destOk {
			dest[key] = srcVal
			continue
		}

		// Merge maps
		if srcMap, srcOk := srcVal.(map[string]interface{}); srcOk {
			if destMap, destOk := destVal.(map[string]interface{}); destOk {
				mergeMaps(destMap, srcMap)
				continue
			}
		}

		// Append slices
		if isSlice(srcVal) && isSlice(destVal) {
			dest[key] = append(toInterfaceSlice(destVal), toInterfaceSlice(srcVal)...)
			continue
		}

		// Otherwise, overwrite
		dest[key] = srcVal
	}
}

func isSlice(v interface{}) bool {
	switch v.(type) {
	case []interface{}, []string, []map[string]interface{}:
		return true
	default:
		return false
	}
}

func toInterfaceSlice(v interface{}) []interface{} {
	switch s := v.(type) {
	case []interface{}:
		return s
	case []string:
		result := make([]interface{}, len(s))
		for i, v := range s {
			result[i] = v
		}
		return result
	case []map[string]interface{}:
		result := make([]interface{}, len(s))
		for i, v := range s {
			result[i] = v
		}
		return result
	default:
		return []interface{}{}
	}
}
