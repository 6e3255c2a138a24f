// Package text provides the string normalization primitives used when
// extracting tags from free-form titles and when rendering templates.
//
// All transforms are pure and idempotent: applying any of them twice to
// its own output yields the same string. The fixpoint transforms
// (RemoveEmptyBracketPairs, CollapseWhitespace) loop until the input no
// longer changes, because one removal can expose another, e.g.
// "(<>)" -> "()" -> "".
package text

import (
	"strings"
	"unicode/utf8"
)

const (
	openingBrackets = "([{<【"
	closingBrackets = ")]}>】"
)

// emptyPairs are the adjacent matched pairs deleted by
// RemoveEmptyBracketPairs. The CJK corner brackets are not included:
// they only appear as genre markers and never end up empty.
var emptyPairs = []string{"()", "[]", "{}", "<>"}

// RemoveSubstring removes every occurrence of needle from s and trims
// the result. Removing an absent needle is not an error.
func RemoveSubstring(s, needle string) string {
	if needle != "" {
		s = strings.ReplaceAll(s, needle, "")
	}
	return strings.TrimSpace(s)
}

// TrimBrackets trims s, then strips at most one leading opening bracket
// and one trailing closing bracket, then trims again.
//
// Only the outer edges are inspected; the pair does not have to match
// and no balancing is attempted:
//
//	TrimBrackets("[Club Remix]") // "Club Remix"
//	TrimBrackets("(2024")        // "2024"
func TrimBrackets(s string) string {
	s = strings.TrimSpace(s)
	if r, size := utf8.DecodeRuneInString(s); size > 0 && strings.ContainsRune(openingBrackets, r) {
		s = s[size:]
	}
	if r, size := utf8.DecodeLastRuneInString(s); size > 0 && strings.ContainsRune(closingBrackets, r) {
		s = s[:len(s)-size]
	}
	return strings.TrimSpace(s)
}

// RemoveEmptyBracketPairs deletes every adjacent matched bracket pair
// with nothing between it, rescanning from scratch until none is found.
func RemoveEmptyBracketPairs(s string) string {
	for {
		removed := s
		for _, pair := range emptyPairs {
			removed = strings.ReplaceAll(removed, pair, "")
		}
		if removed == s {
			return s
		}
		s = removed
	}
}

// CollapseWhitespace deletes a space that is immediately followed by
// another space, repeatedly, so that gaps of any width collapse to a
// single space.
func CollapseWhitespace(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
