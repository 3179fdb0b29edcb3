// Package keywords wraps whole-word keyword matches in color markup.
//
// Keywords come in named groups, each with a pattern that is either a
// template name or a single color code. Character names can be registered
// separately and always take precedence over groups. Text that is already
// colored (inside a template or right after a code) is never wrapped
// again, so running Colorize twice is safe.
//
// Overlaps are resolved by order: character names first, then groups in
// registration order, longer keywords before shorter ones within a group.
// The first wrap wins and protects its span from later keywords.
package keywords

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/logging"
	"github.com/dfgame/logstyle/pkg/markup"
	"github.com/dfgame/logstyle/pkg/registry"
)

var templateSpan = regexp.MustCompile(`\{\{[^|]+\|[^}]+\}\}`)

// Group is a named keyword set sharing one pattern
type Group struct {
	Name          string
	Pattern       string
	CaseSensitive bool
	Words         []string
}

// System holds keyword groups and character names. Colorize may run
// concurrently with itself; registration takes a write lock.
type System struct {
	mu        sync.RWMutex
	parser    *markup.Parser
	groups    registry.Registry[Group]
	names     registry.Registry[string]
	stopWords map[string]bool
	logger    zerolog.Logger
}

// New builds a keyword system from configuration
func New(parser *markup.Parser, cfg config.KeywordsConfig) (*System, error) {
	s := &System{
		parser:    parser,
		groups:    registry.New[Group](),
		names:     registry.New[string](),
		stopWords: make(map[string]bool, len(cfg.StopWords)),
		logger:    logging.GetLogger("keywords"),
	}
	for _, w := range cfg.StopWords {
		s.stopWords[strings.ToLower(w)] = true
	}
	for _, g := range cfg.Groups {
		if err := s.AddGroup(Group{
			Name:          g.Name,
			Pattern:       g.Pattern,
			CaseSensitive: g.CaseSensitive,
			Words:         g.Words,
		}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddGroup registers a group, replacing any group with the same name in
// place. Words are normalized to lower case unless the group is case
// sensitive.
func (s *System) AddGroup(g Group) error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.New(errors.ErrKeywordGroupInvalid, "keyword group name cannot be empty")
	}
	if g.Pattern == "" {
		return errors.Newf(errors.ErrKeywordGroupInvalid, "keyword group %q has no pattern", g.Name)
	}

	words := make([]string, 0, len(g.Words))
	seen := make(map[string]bool, len(g.Words))
	for _, w := range g.Words {
		w = strings.TrimSpace(w)
		if !g.CaseSensitive {
			w = strings.ToLower(w)
		}
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	g.Words = words

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups.Put(g.Name, g)
}

// RemoveGroup drops a group by name
func (s *System) RemoveGroup(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups.Remove(name)
}

// Group returns a registered group
func (s *System) Group(name string) (Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, err := s.groups.Get(name)
	return g, err == nil
}

// Groups lists group names in registration order
func (s *System) Groups() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groups.List()
}

// RegisterName colors a character name (one or more words, matched case
// insensitively) with pattern. Names win over every keyword group.
func (s *System) RegisterName(name, pattern string) error {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "character name cannot be empty")
	}
	if pattern == "" {
		return errors.Newf(errors.ErrInvalidInput, "character name %q has no pattern", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.names.Put(strings.ToLower(name), pattern)
}

// ClearNames forgets all character names
func (s *System) ClearNames() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names.Clear()
}

// IsStopWord reports whether word is never colored
func (s *System) IsStopWord(word string) bool {
	return s.stopWords[strings.ToLower(word)]
}

type keyword struct {
	word          string
	pattern       string
	caseSensitive bool
}

// plan lists keywords in application order: names (longest first), then
// each group in registration order with its longest words first.
func (s *System) plan(groupNames []string) []keyword {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []keyword

	if len(groupNames) == 0 {
		var names []keyword
		for _, n := range s.names.List() {
			pattern, _ := s.names.Get(n)
			names = append(names, keyword{word: n, pattern: pattern})
		}
		sortLongestFirst(names)
		out = append(out, names...)
		groupNames = s.groups.List()
	}

	for _, gn := range groupNames {
		g, err := s.groups.Get(gn)
		if err != nil {
			s.logger.Debug().Str("group", gn).Msg("Unknown keyword group skipped")
			continue
		}
		var words []keyword
		for _, w := range g.Words {
			if s.stopWords[strings.ToLower(w)] {
				continue
			}
			words = append(words, keyword{word: w, pattern: g.Pattern, caseSensitive: g.CaseSensitive})
		}
		sortLongestFirst(words)
		out = append(out, words...)
	}
	return out
}

func sortLongestFirst(ks []keyword) {
	sort.SliceStable(ks, func(i, j int) bool {
		return utf8.RuneCountInString(ks[i].word) > utf8.RuneCountInString(ks[j].word)
	})
}

// Colorize wraps keyword matches in markup. With no group names every
// character name and group applies; otherwise only the listed groups do.
// Existing markup is preserved and never wrapped twice.
func (s *System) Colorize(text string, groupNames ...string) string {
	if text == "" {
		return text
	}
	for _, kw := range s.plan(groupNames) {
		text = s.apply(text, kw)
	}
	return text
}

func (s *System) apply(text string, kw keyword) string {
	lib := s.parser.Templates()
	pal := s.parser.Palette()

	isTemplate := lib.Has(kw.pattern)
	var code rune
	if !isTemplate {
		r, size := utf8.DecodeRuneInString(kw.pattern)
		if size != len(kw.pattern) || !pal.IsCode(r) {
			s.logger.Debug().Str("pattern", kw.pattern).Str("keyword", kw.word).Msg("Keyword pattern is neither a template nor a code")
			return text
		}
		code = r
	}

	matches := s.findMatches(text, kw)
	if len(matches) == 0 {
		return text
	}

	// wrap right to left so earlier offsets stay valid
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][0], matches[i][1]
		word := text[start:end]
		var wrapped string
		if isTemplate {
			wrapped = "{{" + strings.ToLower(strings.TrimSpace(kw.pattern)) + "|" + word + "}}"
		} else {
			restore := s.activeForeground(text[:start])
			wrapped = string(markup.ForegroundMarker) + string(code) + word +
				string(markup.ForegroundMarker) + string(restore)
		}
		text = text[:start] + wrapped + text[end:]
	}
	return text
}

// findMatches returns byte ranges of whole-word, unprotected occurrences
func (s *System) findMatches(text string, kw keyword) [][2]int {
	protected := s.protectedRanges(text)
	n := len(kw.word)

	var out [][2]int
	for i := 0; i+n <= len(text); {
		candidate := text[i : i+n]
		var hit bool
		if kw.caseSensitive {
			hit = candidate == kw.word
		} else {
			hit = strings.EqualFold(candidate, kw.word)
		}
		if hit && isBoundary(text, i, i+n) && !overlaps(protected, i, i+n) {
			out = append(out, [2]int{i, i + n})
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return out
}

// protectedRanges covers template spans, code pairs, the character that
// immediately follows a code pair, and any text colored by a non-default
// foreground code.
func (s *System) protectedRanges(text string) [][2]int {
	pal := s.parser.Palette()
	defaultFg := pal.DefaultForegroundCode()

	var out [][2]int
	for _, r := range templateSpan.FindAllStringIndex(text, -1) {
		out = append(out, [2]int{r[0], r[1]})
	}

	colored := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !markup.IsMarker(r) || i+size >= len(text) {
			i += size
			continue
		}
		c, csize := utf8.DecodeRuneInString(text[i+size:])
		if !pal.IsCode(c) {
			i += size
			continue
		}

		end := i + size + csize
		guard := end
		if guard < len(text) {
			_, next := utf8.DecodeRuneInString(text[guard:])
			guard += next
		}
		out = append(out, [2]int{i, guard})

		if r == markup.ForegroundMarker {
			if colored >= 0 {
				out = append(out, [2]int{colored, i})
				colored = -1
			}
			if c != defaultFg {
				colored = end
			}
		}
		i = end
	}
	if colored >= 0 {
		out = append(out, [2]int{colored, len(text)})
	}
	return out
}

func (s *System) activeForeground(prefix string) rune {
	pal := s.parser.Palette()
	active := pal.DefaultForegroundCode()
	runes := []rune(prefix)
	for i := 0; i < len(runes)-1; i++ {
		if markup.IsMarker(runes[i]) && pal.IsCode(runes[i+1]) {
			if runes[i] == markup.ForegroundMarker {
				active = runes[i+1]
			}
			i++
		}
	}
	return active
}

func overlaps(ranges [][2]int, start, end int) bool {
	for _, r := range ranges {
		if start < r[1] && end > r[0] {
			return true
		}
	}
	return false
}

func isBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
