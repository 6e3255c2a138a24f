package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmelchers/titletag/internal/audio"
	"github.com/jmelchers/titletag/internal/model"
)

// Decision is the outcome of reviewing a single proposal.
type Decision int

const (
	// DecisionReject leaves the file untouched.
	DecisionReject Decision = iota

	// DecisionAccept applies the proposal to the file.
	DecisionAccept

	// DecisionAcceptAll applies this proposal and every following one
	// without asking again.
	DecisionAcceptAll
)

var (
	tagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	oldValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
	newValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// Session reviews one tag proposal interactively: it shows the
// proposed values next to what the file currently carries, then lets
// the user accept, reject, or edit until they settle on a decision.
type Session struct {
	Proposal *model.Proposal

	// Existing is what the file carries now; it is only displayed.
	Existing audio.Tags

	// OldFilename is the file's current base name without extension,
	// shown against the proposed one.
	OldFilename string

	TitleTemplate    string
	FilenameTemplate string

	// Default is the preselected answer of the accept prompt.
	Default Choice

	In  *bufio.Reader
	Out io.Writer
}

// Run presents the proposal and loops on edit rounds until the user
// accepts or rejects it. The proposal's derived fields are up to date
// when Run returns.
func (s *Session) Run() (Decision, error) {
	for {
		s.Proposal.Update(s.TitleTemplate, s.FilenameTemplate)
		s.present()
		choice, err := Select(s.In, s.Out, "Apply these tags?", []Choice{ChoiceYes, ChoiceNo, ChoiceEdit, ChoiceAll}, s.Default)
		if err != nil {
			return DecisionReject, err
		}
		switch choice {
		case ChoiceYes:
			return DecisionAccept, nil
		case ChoiceAll:
			return DecisionAcceptAll, nil
		case ChoiceNo:
			return DecisionReject, nil
		case ChoiceEdit:
			edits, err := CollectEdits(s.In, s.Out)
			if err != nil {
				return DecisionReject, err
			}
			s.applyEdits(edits)
		}
	}
}

func (s *Session) present() {
	p := s.Proposal
	s.line("ARTIST", s.Existing.Artist, p.Artist)
	s.line("ALBUM_ARTIST", s.Existing.AlbumArtist, p.AlbumArtist)
	s.line("ALBUM", s.Existing.Album, p.Album)
	s.line("GENRE", s.Existing.Genre, p.Genre)
	s.line("TITLE", s.Existing.Title, p.FinalTitle)
	s.line("TRACK", model.NumText(s.Existing.Track), model.NumText(p.Track))
	s.line("YEAR", model.NumText(s.Existing.Year), model.NumText(p.Year))
	s.line("FILENAME", s.OldFilename, p.Filename)
}

// line prints one row of the proposal diff:
//
//	TITLE          Old Name -> New Name
//	ALBUM          unchanged
func (s *Session) line(tag, old, proposed string) {
	fmt.Fprintf(s.Out, "%s ", tagStyle.Render(fmt.Sprintf("%-15s", tag)))
	if old == proposed {
		fmt.Fprintln(s.Out, unchangedStyle.Render("unchanged"))
		return
	}
	if old == "" {
		old = "N/A"
	}
	fmt.Fprintf(s.Out, "%s -> %s\n", oldValueStyle.Render(old), newValueStyle.Render(proposed))
}

func (s *Session) applyEdits(edits []Edit) {
	for _, e := range edits {
		if err := ApplyEdit(s.Proposal, e); err != nil {
			fmt.Fprintf(s.Out, "%s must be a number, ignoring %q\n", e.Tag, e.Value)
		}
	}
}

// ApplyEdit applies a single edit to the proposal. An edit without a
// value clears the tag. TRACK and YEAR reject non-numeric values and
// leave the proposal untouched.
func ApplyEdit(p *model.Proposal, e Edit) error {
	switch e.Tag {
	case "ARTIST":
		p.ClearArtists()
		if e.HasValue {
			p.Feature(splitEditedArtists(e.Value))
		}
	case "ALBUM":
		p.Album = e.Value
	case "ALBUM_ARTIST":
		p.AlbumArtist = e.Value
	case "GENRE":
		p.Genre = e.Value
	case "TITLE":
		p.Title = e.Value
	case "TRACK":
		if !e.HasValue {
			p.Track = 0
			return nil
		}
		return p.SetTrackText(e.Value)
	case "YEAR":
		if !e.HasValue {
			p.Year = 0
			return nil
		}
		return p.SetYearText(e.Value)
	}
	return nil
}

// splitEditedArtists splits an ARTIST edit on semicolons, so names
// containing commas or "&" survive manual entry intact.
func splitEditedArtists(s string) []string {
	var artists []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			artists = append(artists, part)
		}
	}
	return artists
}
