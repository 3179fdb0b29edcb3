package spacing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	noSpaceAfter  = "!?.,:;[({\n\r"
	noSpaceBefore = "!?.,:;])}'\n\r"
)

// ShouldAddSpaceBetween reports whether joining prev and next needs a
// space. With checkWordBoundary, a letter or digit meeting a letter or
// digit is treated as one word split across segments (as produced by
// per-character templates) unless either fragment contains whitespace.
func ShouldAddSpaceBetween(prev, next string, checkWordBoundary bool) bool {
	if strings.TrimSpace(prev) == "" || strings.TrimSpace(next) == "" {
		return false
	}

	last, _ := utf8.DecodeLastRuneInString(prev)
	first, _ := utf8.DecodeRuneInString(next)

	if checkWordBoundary && isWordChar(last) && isWordChar(first) &&
		!strings.ContainsFunc(prev, unicode.IsSpace) && !strings.ContainsFunc(next, unicode.IsSpace) {
		return false
	}

	if strings.ContainsRune(noSpaceAfter, last) || unicode.IsSpace(last) {
		return false
	}
	if strings.ContainsRune(noSpaceBefore, first) || unicode.IsSpace(first) {
		return false
	}
	return true
}

// NormalizeSpacing collapses runs of spaces into one and trims the ends.
// Other whitespace such as newlines is kept.
func NormalizeSpacing(text string) string {
	if text == "" {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}

// JoinWithSpacing normalizes each part and joins the non-empty ones with
// single spaces.
func JoinWithSpacing(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := NormalizeSpacing(p); n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
