// Package registry provides a generic, type-safe registry for named
// items such as color templates, keyword groups and output sinks.
// Names keep their registration order, which callers rely on when
// order carries meaning (keyword groups are applied in that order).
package registry
