package types

import (
	"strings"

	"github.com/dfgame/logstyle/pkg/errors"
)

// Significance is the importance of a piece of text. Higher levels are
// more saturated and brighter.
type Significance int

const (
	SignificanceTrivial Significance = iota
	SignificanceMinor
	SignificanceNormal
	SignificanceImportant
	SignificanceCritical
)

var significanceNames = []string{"trivial", "minor", "normal", "important", "critical"}

func (s Significance) String() string {
	if s < SignificanceTrivial || s > SignificanceCritical {
		return "unknown"
	}
	return significanceNames[s]
}

// ParseSignificance resolves a level by name (case-insensitive)
func ParseSignificance(s string) (Significance, error) {
	for i, n := range significanceNames {
		if strings.EqualFold(n, s) {
			return Significance(i), nil
		}
	}
	return SignificanceNormal, errors.Newf(errors.ErrInvalidInput, "unknown significance %q", s)
}
