// Package config loads logstyle configuration: the color code table,
// color templates, keyword groups, spacing rules and animation/pacing
// settings.
//
// Layers are applied in order, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a user file (explicit path, or logstyle/config.toml in the XDG
//     config dirs), TOML or YAML by extension
//  3. LOGSTYLE_ environment variables, "__" separating nesting levels
//  4. explicit overrides (the CLI --set flag)
//
// Lists are appended across layers rather than replaced; consumers treat a
// later entry with the same key as a replacement. When anything fails,
// LoadOrBuiltin logs a warning and returns Builtin().
package config
