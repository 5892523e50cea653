// Package normalize cleans credential display names with configurable
// rules: dropping a trailing parenthetical group and stripping known
// prefixes and suffixes.
package normalize

import (
	"regexp"
	"sort"
	"strings"
)

// Rules configures name normalization. The zero value leaves names unchanged.
// Build populated rules with NewRules: Normalize relies on its longest-first
// ordering of the lists.
type Rules struct {
	// StripParenthetical removes one trailing "(...)" group.
	StripParenthetical bool
	// Prefixes are stripped from the start of the name, longest match first.
	Prefixes []string
	// Suffixes are stripped from the end of the name, longest match first.
	Suffixes []string
}

// NewRules builds a rule set from raw lists. Empty and duplicate entries
// are dropped, entries are otherwise kept verbatim, and each list is
// ordered longest first.
func NewRules(stripParenthetical bool, prefixes, suffixes []string) Rules {
	return Rules{
		StripParenthetical: stripParenthetical,
		Prefixes:           longestFirst(CleanList(prefixes)),
		Suffixes:           longestFirst(CleanList(suffixes)),
	}
}

// IsZero reports whether the rules leave every name unchanged.
func (r Rules) IsZero() bool {
	return !r.StripParenthetical && len(r.Prefixes) == 0 && len(r.Suffixes) == 0
}

// Normalize applies the rules to name: the parenthetical group first, then
// prefixes, then suffixes. A name may be reduced to the empty string.
func Normalize(name string, rules Rules) string {
	if rules.StripParenthetical {
		name = StripParenthetical(name)
	}
	if len(rules.Prefixes) > 0 {
		name = stripPrefixes(name, rules.Prefixes)
	}
	if len(rules.Suffixes) > 0 {
		name = stripSuffixes(name, rules.Suffixes)
	}
	return name
}

// reTrailingParens matches a final parenthesized group without nested
// parentheses, with the whitespace around it.
var reTrailingParens = regexp.MustCompile(`\s*\([^()]*\)\s*$`)

// StripParenthetical removes a single trailing "(...)" group and trims the
// result: "Example (user@mail.com)" becomes "Example". Groups that are not
// at the end of the name are kept.
func StripParenthetical(name string) string {
	loc := reTrailingParens.FindStringIndex(name)
	if loc == nil {
		return name
	}
	return strings.TrimSpace(name[:loc[0]])
}

// StripPrefixes removes matching prefixes from name until none matches.
// On each pass the longest matching prefix is removed. prefixes may be in
// any order.
func StripPrefixes(name string, prefixes []string) string {
	return stripPrefixes(name, longestFirst(prefixes))
}

// stripPrefixes expects candidates ordered longest first.
func stripPrefixes(name string, candidates []string) string {
	for name != "" {
		p, ok := firstMatch(candidates, func(c string) bool { return strings.HasPrefix(name, c) })
		if !ok {
			break
		}
		name = name[len(p):]
	}
	return name
}

// StripSuffixes removes matching suffixes from name until none matches.
// On each pass the longest matching suffix is removed. suffixes may be in
// any order.
func StripSuffixes(name string, suffixes []string) string {
	return stripSuffixes(name, longestFirst(suffixes))
}

// stripSuffixes expects candidates ordered longest first.
func stripSuffixes(name string, candidates []string) string {
	for name != "" {
		s, ok := firstMatch(candidates, func(c string) bool { return strings.HasSuffix(name, c) })
		if !ok {
			break
		}
		name = name[:len(name)-len(s)]
	}
	return name
}

// firstMatch returns the first non-empty candidate accepted by match.
func firstMatch(candidates []string, match func(string) bool) (string, bool) {
	for _, c := range candidates {
		if c != "" && match(c) {
			return c, true
		}
	}
	return "", false
}

// longestFirst returns a copy of items ordered by descending length.
// Items of equal length keep their relative order.
func longestFirst(items []string) []string {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	return sorted
}
