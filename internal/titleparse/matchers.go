package titleparse

import (
	"regexp"
	"strings"

	"github.com/jmelchers/titletag/internal/model"
)

// formatPatterns describe whole-title layouts, tried in order. The
// first one whose submatches carry any content decides the split into
// artists, title, and the optional track/genre fields; whatever it
// leaves over becomes the working title for the catch-all pass.
var formatPatterns = []*regexp.Regexp{
	// 「GENRE」[A & B] Title
	regexp.MustCompile(`^「(?P<genre>[^」]*)」\s*\[(?P<artists>[^\]]*)\]\s*(?P<title>.*)$`),
	// Artist 'Title' trailing, with straight or curly quotes
	regexp.MustCompile(`^(?P<artists>[^'‘’]+?)\s*['‘](?P<title>[^'‘’]*)['’](?P<extra>.*)$`),
	// 04. Artists - Title, with -, _, ~ or ｜ as the separator
	regexp.MustCompile(`^(?P<track>\d+\.)?(?P<artists>[^-_~｜]+)[-_~｜](?P<title>.*)$`),
}

// matchFormat runs the title through formatPatterns and fills prop from
// the first match that yields content. It returns the remaining working
// title, or the input unchanged when no pattern applies.
func matchFormat(prop *model.Proposal, title string) string {
	for _, re := range formatPatterns {
		m := re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		var working string
		any := false
		for i, name := range re.SubexpNames() {
			val := strings.TrimSpace(m[i])
			if i == 0 || val == "" {
				continue
			}
			any = true
			switch name {
			case "track":
				// Not a number means no track, nothing more.
				_ = prop.SetTrackText(strings.TrimSuffix(val, "."))
			case "genre":
				prop.Genre = val
			case "artists":
				prop.Feature(SplitArtists(val))
			case "title":
				working = val
			case "extra":
				working += " " + val
			}
		}
		if any {
			return strings.TrimSpace(working)
		}
	}
	return title
}
