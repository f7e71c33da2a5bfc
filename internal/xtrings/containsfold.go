package xtrings

import (
	"strings"
	"unicode/utf8"
)

// ContainsFold reports whether substr is within s, ignoring case. The empty
// string is contained in everything.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}

	n := utf8.RuneCountInString(substr)
	for i := range s {
		end := i
		for j := 0; j < n && end < len(s); j++ {
			_, w := utf8.DecodeRuneInString(s[end:])
			end += w
		}

		if strings.EqualFold(s[i:end], substr) {
			return true
		}
	}
	return false
}

// ContainsAllFold reports whether every one of the words is within s,
// ignoring case.
func ContainsAllFold(s string, words ...string) bool {
	for _, w := range words {
		if !ContainsFold(s, w) {
			return false
		}
	}
	return true
}
