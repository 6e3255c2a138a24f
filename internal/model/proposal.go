package model

import (
	"strconv"
	"strings"

	"github.com/jmelchers/titletag/internal/text"
)

// Proposal accumulates the tag values proposed for one audio file.
//
// A Proposal is created by the title parser (or empty) and mutated by
// Feature calls and by edits from the interactive loop. Artists is the
// only artist-related source of truth: Artist is derived from it on
// every Update. FinalTitle and Filename are likewise derived fields and
// must never be set directly.
//
// The zero value of every field means "unset"; unset fields render as
// empty strings in templates.
//
// Example:
//
//	p := &model.Proposal{Title: "Song"}
//	p.Feature([]string{"A", "B"})
//	p.Update(model.DefaultTitleTemplate, model.DefaultFilenameTemplate)
//	// p.Artist == "A", p.FinalTitle == "Song (B)", p.Filename == "A - Song (B)"
type Proposal struct {
	// Album is the album title, extracted or edited. Never derived.
	Album string

	// AlbumArtist is the album artist, only ever set by an edit.
	AlbumArtist string

	// Genre is the genre, extracted from a 「genre」 marker or edited.
	Genre string

	// Remix is the remix/edit label without its brackets, e.g. "Club Remix".
	Remix string

	// Title is the base title with all recognized decorations stripped.
	Title string

	// Artists holds every distinct artist discovered so far, in
	// first-seen order. Use Feature to grow it; it never contains
	// duplicates or empty strings.
	Artists []string

	// Artist is Artists[0] after Update, "" when no artists are known.
	Artist string

	// Track is the parsed track number, 0 when unset.
	Track int

	// Year is the parsed year, 0 when unset.
	Year int

	// FinalTitle is the rendered title template. Derived by Update.
	FinalTitle string

	// Filename is the rendered, sanitized filename template (without
	// extension). Derived by Update.
	Filename string

	artistIndex map[string]struct{}
}

// Default templates used when configuration does not override them.
const (
	DefaultTitleTemplate    = "{title} ({feat}) [{remix}]"
	DefaultFilenameTemplate = "{artist} - {title}"
)

// Feature merges newArtists into Artists, preserving first-seen order.
// Names already present (by exact string match) and empty names are
// skipped.
func (p *Proposal) Feature(newArtists []string) {
	if p.artistIndex == nil {
		p.artistIndex = make(map[string]struct{}, len(newArtists))
		for _, a := range p.Artists {
			p.artistIndex[a] = struct{}{}
		}
	}

	for _, a := range newArtists {
		if a == "" {
			continue
		}
		if _, ok := p.artistIndex[a]; ok {
			continue
		}
		p.Artists = append(p.Artists, a)
		p.artistIndex[a] = struct{}{}
	}
}

// ClearArtists empties the artist list. The next Update leaves Artist
// unset.
func (p *Proposal) ClearArtists() {
	p.Artists = nil
	p.artistIndex = nil
}

// SetTrackText parses s as an unsigned track number. The caller decides
// what to do on failure; the stored value is left untouched then.
func (p *Proposal) SetTrackText(s string) error {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return err
	}
	p.Track = int(n)
	return nil
}

// SetYearText parses s as a year. As with SetTrackText, failures leave
// the prior value in place.
func (p *Proposal) SetYearText(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	p.Year = n
	return nil
}

// Update derives Artist, FinalTitle and Filename from the current field
// values and the two templates. It caches nothing and is idempotent
// given the same fields; call it after every mutation and before every
// presentation.
func (p *Proposal) Update(titleTemplate, filenameTemplate string) {
	p.Artist = ""
	if len(p.Artists) > 0 {
		p.Artist = p.Artists[0]
	}

	feat := featClause(p.Artists)
	p.FinalTitle = p.render(titleTemplate, p.Title, feat)
	p.Filename = SanitizeFilename(p.render(filenameTemplate, p.FinalTitle, feat))
}

// featClause joins the secondary artists with ", ", replacing the final
// separator with " & ": ["A", "B", "C", "D"] renders as "B, C & D".
func featClause(artists []string) string {
	if len(artists) < 2 {
		return ""
	}
	rest := artists[1:]
	if len(rest) == 1 {
		return rest[0]
	}
	return strings.Join(rest[:len(rest)-1], ", ") + " & " + rest[len(rest)-1]
}

// render substitutes every recognized token, then removes the bracket
// artifacts and double spaces the substitution may have left behind.
// Cleanup must run after substitution: an unset field can turn "[{remix}]"
// into "[]", and removing that can create a new double space.
func (p *Proposal) render(template, title, feat string) string {
	s := template
	s = strings.ReplaceAll(s, "{artist}", p.Artist)
	s = strings.ReplaceAll(s, "{feat}", feat)
	s = strings.ReplaceAll(s, "{title}", title)
	s = strings.ReplaceAll(s, "{remix}", p.Remix)
	s = strings.ReplaceAll(s, "{album}", p.Album)
	s = strings.ReplaceAll(s, "{album_artist}", p.AlbumArtist)
	s = strings.ReplaceAll(s, "{genre}", p.Genre)
	s = strings.ReplaceAll(s, "{track}", NumText(p.Track))
	s = strings.ReplaceAll(s, "{year}", NumText(p.Year))

	s = text.RemoveEmptyBracketPairs(s)
	s = text.CollapseWhitespace(s)
	return strings.TrimSpace(s)
}

// NumText renders an integer field as plain decimal, empty when unset.
// TRACK and YEAR proposals use it everywhere they are shown or written.
func NumText(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
