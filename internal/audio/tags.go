package audio

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// Tags is a read-only view of the metadata already present in an audio
// file. A zero Tags means the file carried no readable metadata.
type Tags struct {
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	Title       string
	Track       int
	Year        int
}

// ReadTags reads the existing metadata from the file at path.
//
// Files without any recognizable metadata yield zero Tags and no
// error; only I/O failures are reported.
func ReadTags(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tags{}, fmt.Errorf("read tags: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if err == tag.ErrNoTagsFound {
			return Tags{}, nil
		}
		return Tags{}, fmt.Errorf("read tags %s: %w", path, err)
	}

	track, _ := m.Track()
	return Tags{
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Genre:       m.Genre(),
		Title:       m.Title(),
		Track:       track,
		Year:        m.Year(),
	}, nil
}
