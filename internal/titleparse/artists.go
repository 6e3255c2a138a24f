package titleparse

import (
	"regexp"
	"strings"
)

// artistDelims matches every way two artist names get glued together in
// the wild: " x ", " and ", the featuring words, "w/" (and its
// full-width slash variant), "&", and plain or full-width commas.
// "featuring" must come before "feat" before "ft" so the longest
// spelling wins.
var artistDelims = regexp.MustCompile(`(?i) x | and |\b(?:featuring|feat\.?|ft\.?)|w/|w⧸|&|,|，`)

// SplitArtists splits a free-form artist/feature string into the
// individual artist names, in order. Fragments are trimmed and empty
// fragments discarded, so a leading separator never produces a leading
// empty artist.
//
//	SplitArtists("A & B feat. C") // ["A", "B", "C"]
func SplitArtists(s string) []string {
	var artists []string
	for _, part := range artistDelims.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			artists = append(artists, part)
		}
	}
	return artists
}
