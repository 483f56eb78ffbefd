package common

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Currency normalizes an ISO currency code: trimmed and upper-cased.
func Currency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// County title-cases every word of a county name and collapses whitespace,
// so "east  SUSSEX" becomes "East Sussex".
func County(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	// Casers keep state between calls, a fresh one per call is safe for concurrent use.
	return cases.Title(language.BritishEnglish).String(strings.Join(words, " "))
}
