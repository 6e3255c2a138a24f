package library

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmelchers/titletag/internal/audio"
	"github.com/jmelchers/titletag/internal/config"
	"github.com/jmelchers/titletag/internal/model"
	"github.com/jmelchers/titletag/internal/session"
	"github.com/jmelchers/titletag/internal/titleparse"
)

// errStopped signals that the user ended the interactive input, which
// finishes the current pass without being a failure.
var errStopped = errors.New("input closed")

// audioExts are the file extensions the tagging pass considers.
var audioExts = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
	".opus": true,
}

// Processor runs library passes: downloading new files, proposing and
// applying tags, depositing tagged files into the library, and
// cleaning up after.
type Processor struct {
	Settings *config.Settings
	Parser   *titleparse.Parser

	In  *bufio.Reader
	Out io.Writer

	// acceptAll is set once the user answers a review prompt with
	// "all"; remaining proposals in the pass apply without asking.
	acceptAll bool
}

// NewProcessor wires a Processor for the given settings, reading
// decisions from in and reporting on out.
func NewProcessor(settings *config.Settings, in io.Reader, out io.Writer) *Processor {
	return &Processor{
		Settings: settings,
		Parser:   titleparse.New(settings.Verbose, out),
		In:       bufio.NewReader(in),
		Out:      out,
	}
}

// Run executes the configured steps in order.
func (p *Processor) Run(ctx context.Context) error {
	for _, step := range p.Settings.Steps {
		step = strings.TrimSpace(step)
		var err error
		switch step {
		case "download":
			err = p.Download(ctx)
		case "tag":
			err = p.Tag()
		case "deposit":
			err = p.Deposit()
		case "clean":
			err = p.Clean()
		default:
			err = fmt.Errorf("unknown step %q", step)
		}
		if err != nil {
			return fmt.Errorf("step %s: %w", step, err)
		}
	}
	return nil
}

// Tag reviews every audio file in the input directory. Each file's
// title tag is parsed into a proposal, reviewed interactively (or
// auto-accepted), and on acceptance written back and the file renamed.
func (p *Processor) Tag() error {
	entries, err := os.ReadDir(p.Settings.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, e := range entries {
		if e.IsDir() || !audioExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		err := p.tagFile(filepath.Join(p.Settings.InputDir, e.Name()))
		if errors.Is(err, errStopped) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) tagFile(path string) error {
	tags, err := audio.ReadTags(path)
	if err != nil {
		return p.persistFailure(path, err)
	}
	if tags.Title == "" {
		fmt.Fprintf(p.Out, "No title in %s, skipping\n", filepath.Base(path))
		return nil
	}

	prop := p.Parser.Parse(tags.Title)
	if prop == nil {
		return nil
	}
	if p.Settings.KeepExistingArtist && tags.Artist != "" {
		parsed := prop.Artists
		prop.ClearArtists()
		prop.Feature([]string{tags.Artist})
		prop.Feature(parsed)
	}

	decision, err := p.review(path, tags, prop)
	if err != nil {
		return err
	}
	if decision == session.DecisionReject {
		return nil
	}
	return p.persist(path, prop)
}

func (p *Processor) review(path string, tags audio.Tags, prop *model.Proposal) (session.Decision, error) {
	if p.acceptAll || p.Settings.AutoAccept {
		prop.Update(p.Settings.TitleTemplate, p.Settings.FilenameTemplate)
		return session.DecisionAccept, nil
	}

	base := filepath.Base(path)
	fmt.Fprintf(p.Out, "\n%s\n", base)
	s := &session.Session{
		Proposal:         prop,
		Existing:         tags,
		OldFilename:      strings.TrimSuffix(base, filepath.Ext(base)),
		TitleTemplate:    p.Settings.TitleTemplate,
		FilenameTemplate: p.Settings.FilenameTemplate,
		Default:          session.ChoiceYes,
		In:               p.In,
		Out:              p.Out,
	}
	decision, err := s.Run()
	if err != nil {
		if err == io.EOF {
			return session.DecisionReject, errStopped
		}
		return session.DecisionReject, err
	}
	if decision == session.DecisionAcceptAll {
		p.acceptAll = true
		decision = session.DecisionAccept
	}
	return decision, nil
}

// persist writes the accepted tags and renames the file. Tag frames are
// only written for MP3s; other formats still get their new name.
func (p *Processor) persist(path string, prop *model.Proposal) error {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if err := audio.WriteTags(path, prop); err != nil {
			return p.persistFailure(path, err)
		}
	}
	if _, err := audio.Rename(path, prop.Filename); err != nil {
		return p.persistFailure(path, err)
	}
	return nil
}

func (p *Processor) persistFailure(path string, err error) error {
	if p.Settings.OnPersistError == config.OnPersistErrorAbort {
		return err
	}
	fmt.Fprintf(p.Out, "Skipping %s: %v\n", filepath.Base(path), err)
	return nil
}
