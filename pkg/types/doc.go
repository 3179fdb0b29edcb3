// Package types defines the value types shared across logstyle: RGB
// colors, colored segments, output block types and significance levels.
// Everything here is a plain value and safe to copy.
package types
