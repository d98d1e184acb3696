// Package textmatch implements the dashboard's free-text filter.
package textmatch

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/selection"
)

// Pattern is a compiled text filter over record descriptions.
// Plain text matches as a case-folded substring; text wrapped in slashes
// ("/fast.*light/") is a case-insensitive regular expression. A regular
// expression that does not compile falls back to substring matching of
// the raw text so typing never errors.
type Pattern struct {
	re     *regexp.Regexp
	folder cases.Caser
	raw    string
	folded string
}

// Compile builds a pattern from user input.
func Compile(text string) Pattern {
	raw := strings.TrimSpace(text)
	p := Pattern{raw: raw, folder: cases.Fold()}

	if len(raw) >= 2 && strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") {
		if re, err := regexp.Compile("(?i)" + raw[1:len(raw)-1]); err == nil {
			p.re = re
			return p
		}
	}

	p.folded = p.folder.String(raw)
	return p
}

// String returns the trimmed pattern text.
func (p Pattern) String() string { return p.raw }

// Empty reports whether the pattern matches everything.
func (p Pattern) Empty() bool { return p.raw == "" }

// Matches reports whether a description satisfies the pattern.
func (p Pattern) Matches(description string) bool {
	if p.Empty() {
		return true
	}
	if p.re != nil {
		return p.re.MatchString(description)
	}
	return strings.Contains(p.folder.String(description), p.folded)
}

// Predicate returns a record predicate, or nil for the empty pattern.
func (p Pattern) Predicate() selection.Predicate {
	if p.Empty() {
		return nil
	}
	return func(r model.Record) bool {
		return p.Matches(r.Description)
	}
}
