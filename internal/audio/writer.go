package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bogem/id3v2"

	"github.com/jmelchers/titletag/internal/model"
)

// WriteTags writes the proposed tags to the MP3 file at path.
//
// The lead artist (TPE1) carries the full joined artist list, the
// album artist (TPE2) falls back to the lead artist when the proposal
// has no album artist of its own. Unset proposal fields clear the
// corresponding frame so stale values never survive a retag.
func WriteTags(path string, p *model.Proposal) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("write tags %s: %w", path, err)
	}
	defer t.Close()

	t.SetArtist(p.Artist)
	t.SetTitle(p.FinalTitle)
	t.SetAlbum(p.Album)
	t.SetGenre(p.Genre)

	albumArtist := p.AlbumArtist
	if albumArtist == "" {
		albumArtist = p.Artist
	}
	setOrDelete(t, "TPE2", albumArtist)

	var year, track string
	if p.Year > 0 {
		year = strconv.Itoa(p.Year)
	}
	if p.Track > 0 {
		track = strconv.Itoa(p.Track)
	}
	setOrDelete(t, "TYER", year)
	setOrDelete(t, "TRCK", track)

	if err := t.Save(); err != nil {
		return fmt.Errorf("write tags %s: %w", path, err)
	}
	return nil
}

func setOrDelete(t *id3v2.Tag, id, value string) {
	if value == "" {
		t.DeleteFrames(id)
		return
	}
	t.AddTextFrame(id, id3v2.EncodingUTF8, value)
}

// Rename moves the file at path to filename within the same directory,
// keeping the original extension. It returns the new path, which equals
// the old one when the name is already right or filename is empty.
func Rename(path, filename string) (string, error) {
	if filename == "" {
		return path, nil
	}
	dir := filepath.Dir(path)
	newPath := filepath.Join(dir, filename+filepath.Ext(path))
	if newPath == path {
		return path, nil
	}
	if err := os.Rename(path, newPath); err != nil {
		return path, fmt.Errorf("rename %s: %w", path, err)
	}
	return newPath, nil
}
