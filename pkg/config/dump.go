package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dfgame/logstyle/pkg/errors"
)

// Marshal renders cfg as "toml" or "yaml"
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml", "":
		out, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal toml")
		}
		return out, nil
	case "yaml", "yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal yaml")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported format %q (use toml or yaml)", format)
	}
}
