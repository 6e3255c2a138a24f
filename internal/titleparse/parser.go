package titleparse

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmelchers/titletag/internal/model"
)

// Parser turns free-form media titles into tag proposals. The zero
// value is not usable; construct one with New.
type Parser struct {
	// Verbose makes the parser narrate what it captures on Out.
	Verbose bool
	Out     io.Writer
}

// New returns a Parser. Diagnostics go to out, or to stdout when out is
// nil.
func New(verbose bool, out io.Writer) *Parser {
	if out == nil {
		out = os.Stdout
	}
	return &Parser{Verbose: verbose, Out: out}
}

// Parse extracts artists, title, remix, year, album, genre and track
// from a raw title string. The layout patterns run first and split off
// artists and track; the catch-all pass then peels decorations off
// whatever remains. Parse returns nil for an empty input.
func (p *Parser) Parse(title string) *model.Proposal {
	if title == "" {
		return nil
	}
	if p.Verbose {
		fmt.Fprintf(p.Out, "Parsing %q\n", title)
	}
	var debug io.Writer
	if p.Verbose {
		debug = p.Out
	}

	prop := &model.Proposal{}
	working := matchFormat(prop, title)
	working = extract(prop, working, debug)
	prop.Title = strings.TrimSpace(working)
	if p.Verbose {
		fmt.Fprintf(p.Out, "  title: %q\n", prop.Title)
	}
	return prop
}
