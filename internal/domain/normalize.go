package domain

import (
	"strings"
)

// CompactSpaces trims leading/trailing whitespace and compresses runs of
// spaces into one. Case is preserved.
func CompactSpaces(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
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
		b.WriteRune(r)
	}
	return b.String()
}

// SearchTerm trims raw search input. Inner text is kept as typed so it
// matches literally. Returns nil when nothing is left to search for, which
// callers treat as "list everything".
func SearchTerm(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}
