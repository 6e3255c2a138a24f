package titleparse

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jmelchers/titletag/internal/model"
	"github.com/jmelchers/titletag/internal/text"
)

const (
	opening = `[\[({<【]`
	closing = `[\])}>】]`
	// Characters that end a bare (unbracketed) clause.
	inner = `[^\[\](){}<>【】]`
	// Words that introduce a featured-artist clause. Boundaries keep
	// "band" or "draft" from triggering a split.
	connector = `\b(?:and\b|featuring\b|feat\b\.?|ft\b\.?|w/)`
)

// catchAll picks decorations out of the working title one at a time.
// Exactly one of the named groups captures per match; the alternatives
// are ordered so a clause that is both, say, a year and bracketed text
// is claimed by the earlier group.
var catchAll = regexp.MustCompile(`(?i)` +
	`(?P<feat>` + opening + `\s*` + connector + inner + `*` + closing + `|` + connector + `\s+` + inner + `+)` +
	`|(?P<year>\(\d{4}\)|\d{4})` +
	`|(?P<remix>` + opening + inner + `*\b(?:cut|edit|extend(?:ed)?(?:\s+mix)?|(?:re)?mix|remaster|bootleg|instrumental)\b` + inner + `*` + closing + `)` +
	`|(?P<album>` + opening + inner + `*F[^A-Za-z]C` + inner + `*` + closing + `)` +
	`|(?P<strip>` + opening + inner + `*\b(?:full\s+version|(?:official\s+)?(?:(?:music\s+)?video|audio)|m/?v|hq|hd)\b` + inner + `*` + closing + `)`)

var (
	catchAllNames = catchAll.SubexpNames()
	leadConnector = regexp.MustCompile(`(?i)^\s*(?:and|featuring|feat\.?|ft\.?|w/)\s*`)
	albumMarker   = regexp.MustCompile(`(?i)F[^A-Za-z]C`)
)

// extract repeatedly matches catchAll against title, records each find
// on prop, and removes the matched text from the title until nothing is
// left to claim. The stripped-down title is returned.
func extract(prop *model.Proposal, title string, debug io.Writer) string {
	for {
		m := catchAll.FindStringSubmatchIndex(title)
		if m == nil {
			return title
		}
		for i, name := range catchAllNames {
			if name == "" || m[2*i] < 0 {
				continue
			}
			val := title[m[2*i]:m[2*i+1]]
			if debug != nil {
				fmt.Fprintf(debug, "  %s: %q\n", name, val)
			}
			title = text.RemoveSubstring(title, val)
			switch name {
			case "feat":
				clause := leadConnector.ReplaceAllString(text.TrimBrackets(val), "")
				prop.Feature(SplitArtists(clause))
			case "year":
				if err := prop.SetYearText(text.TrimBrackets(val)); err != nil && debug != nil {
					fmt.Fprintf(debug, "not a year, discarding: %s\n", val)
				}
			case "remix":
				remix := text.TrimBrackets(val)
				if !strings.EqualFold(remix, "original mix") {
					prop.Remix = remix
				}
			case "album":
				album := text.TrimBrackets(val)
				if marker := albumMarker.FindString(album); marker != "" {
					album = text.RemoveSubstring(album, marker)
				}
				prop.Album = album
			case "strip":
				// Removed from the title, nothing to keep.
			}
		}
	}
}
