package library

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/jmelchers/titletag/internal/audio"
	"github.com/jmelchers/titletag/internal/config"
	"github.com/jmelchers/titletag/internal/session"
)

// Deposit moves files from the input directory into the target
// directory, organized according to the configured mode: flat, by
// artist under A-Z letter shelves, or by modification date (DATE).
func (p *Processor) Deposit() error {
	entries, err := os.ReadDir(p.Settings.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := p.depositFile(e); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) depositFile(e os.DirEntry) error {
	src := filepath.Join(p.Settings.InputDir, e.Name())

	destDir := p.Settings.TargetDir
	switch p.Settings.Organize {
	case config.OrganizeAZ:
		destDir = filepath.Join(append([]string{destDir}, shelfPath(src)...)...)
	case config.OrganizeDate:
		info, err := e.Info()
		if err != nil {
			return err
		}
		destDir = filepath.Join(destDir, info.ModTime().Format("2006"), info.ModTime().Format("01"))
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	dest := filepath.Join(destDir, e.Name())
	if src == dest {
		return nil
	}
	if _, err := os.Stat(dest); err == nil {
		choice, err := session.Select(p.In, p.Out,
			fmt.Sprintf("%s exists in the library, overwrite?", e.Name()),
			[]session.Choice{session.ChoiceYes, session.ChoiceNo}, session.ChoiceNo)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if choice == session.ChoiceNo {
			return nil
		}
	}
	return os.Rename(src, dest)
}

// shelfPath builds the A-Z shelf for one file: letter, artist, and
// album when the tags carry one. The artist comes from the file's tags,
// falling back to the "Artist - Title" filename convention; a file with
// neither lands directly on its letter shelf.
func shelfPath(path string) []string {
	var artist, album string
	if tags, err := audio.ReadTags(path); err == nil {
		artist, album = tags.Artist, tags.Album
	}
	if artist == "" {
		base := filepath.Base(path)
		if before, _, ok := strings.Cut(base, " - "); ok {
			artist = strings.TrimSpace(before)
		}
	}
	if artist == "" {
		return []string{letterFor(filepath.Base(path))}
	}
	parts := []string{letterFor(artist), artist}
	if album != "" {
		parts = append(parts, album)
	}
	return parts
}

// letterFor returns the A-Z shelf a name belongs on. Names that do not
// start with a letter go on the "0-9#" shelf.
func letterFor(name string) string {
	for _, r := range name {
		if r >= 'a' && r <= 'z' {
			r = unicode.ToUpper(r)
		}
		if r >= 'A' && r <= 'Z' {
			return string(r)
		}
		break
	}
	return "0-9#"
}
