package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower lowercases s with language-neutral Unicode rules. Characters keep
// their count: "Straße" stays "straße" and does not match "strasse".
// No other normalization is applied.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr always matches.
func ContainsFold(s, substr string) bool {
	return NewMatcher(substr).In(s)
}

// Matcher tests many strings against one lowercased needle.
type Matcher struct {
	needle string
}

// NewMatcher lowercases needle once.
func NewMatcher(needle string) Matcher {
	return Matcher{needle: Lower(needle)}
}

// Empty reports whether the needle is empty and therefore matches everything.
func (m Matcher) Empty() bool { return m.needle == "" }

// In reports whether the needle is contained in s, ignoring case.
func (m Matcher) In(s string) bool {
	if m.needle == "" {
		return true
	}
	return strings.Contains(Lower(s), m.needle)
}
