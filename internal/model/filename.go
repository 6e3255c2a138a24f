package model

import (
	"regexp"
	"strings"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots         = regexp.MustCompile(`\.+$`)
	runsOfSpace          = regexp.MustCompile(`\s+`)
)

// SanitizeFilename removes or replaces characters that are invalid in
// file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	SanitizeFilename("Song: Part 1/2") // Returns "Song_ Part 1_2"
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = runsOfSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
