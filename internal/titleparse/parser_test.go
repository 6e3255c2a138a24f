package titleparse

import (
	"reflect"
	"testing"
)

func TestSplitArtists(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"A", []string{"A"}},
		{"A & B", []string{"A", "B"}},
		{"A, B", []string{"A", "B"}},
		{"A，B", []string{"A", "B"}},
		{"A and B", []string{"A", "B"}},
		{"A x B", []string{"A", "B"}},
		{"A feat. B", []string{"A", "B"}},
		{"A featuring B", []string{"A", "B"}},
		{"A ft B", []string{"A", "B"}},
		{"A FT. B", []string{"A", "B"}},
		{"A w/ B", []string{"A", "B"}},
		{"A W/ B", []string{"A", "B"}},
		{"A, B and C", []string{"A", "B", "C"}},
		// "x" and "and" only split when surrounded by spaces.
		{"AxB", []string{"AxB"}},
		{"Sandra", []string{"Sandra"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tt := range tests {
		if got := SplitArtists(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitArtists(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		artists []string
		title   string
		remix   string
		album   string
		genre   string
		year    int
		track   int
	}{
		{name: "plain", in: "Band - Song", artists: []string{"Band"}, title: "Song"},
		{name: "tight hyphen", in: "Band-Song", artists: []string{"Band"}, title: "Song"},
		{name: "left spaced", in: "Band -Song", artists: []string{"Band"}, title: "Song"},
		{name: "right spaced", in: "Band- Song", artists: []string{"Band"}, title: "Song"},
		{name: "underscore", in: "Band _ Song", artists: []string{"Band"}, title: "Song"},
		{name: "tilde", in: "Band ~ Song", artists: []string{"Band"}, title: "Song"},
		{name: "fullwidth bar", in: "Band ｜ Song", artists: []string{"Band"}, title: "Song"},
		{name: "track number", in: "04. Band - Song", artists: []string{"Band"}, title: "Song", track: 4},
		{name: "two artists", in: "A & B - Song", artists: []string{"A", "B"}, title: "Song"},
		{name: "three artists", in: "A, B and C - Song", artists: []string{"A", "B", "C"}, title: "Song"},
		{name: "bracketed feat", in: "Band - Song (feat. C)", artists: []string{"Band", "C"}, title: "Song"},
		{name: "bare feat", in: "Band - Song ft. C", artists: []string{"Band", "C"}, title: "Song"},
		{name: "with clause", in: "Band - Song [w/ C]", artists: []string{"Band", "C"}, title: "Song"},
		{name: "paren year", in: "Band - Song (2024)", artists: []string{"Band"}, title: "Song", year: 2024},
		{name: "bare year", in: "Band - Song 2024", artists: []string{"Band"}, title: "Song", year: 2024},
		{name: "radio edit", in: "Band - Song (Radio Edit)", artists: []string{"Band"}, title: "Song", remix: "Radio Edit"},
		{name: "extended mix", in: "Band - Song [Extended Mix]", artists: []string{"Band"}, title: "Song", remix: "Extended Mix"},
		{name: "remaster", in: "Band - Song (HQ REMASTER)", artists: []string{"Band"}, title: "Song", remix: "HQ REMASTER"},
		{name: "original mix dropped", in: "Band - Song (Original Mix)", artists: []string{"Band"}, title: "Song"},
		{name: "official video stripped", in: "Band - Song (Official Music Video)", artists: []string{"Band"}, title: "Song"},
		{name: "hq stripped", in: "Band - Song [HQ]", artists: []string{"Band"}, title: "Song"},
		{name: "mv stripped", in: "Band - Song 【MV】", artists: []string{"Band"}, title: "Song"},
		{name: "album slash marker", in: "Band - Song [Cool Album F/C]", artists: []string{"Band"}, title: "Song", album: "Cool Album"},
		{name: "album leading marker", in: "Band - Song (F.C Cool Album)", artists: []string{"Band"}, title: "Song", album: "Cool Album"},
		{name: "genre layout", in: "「EDM」[A & B] Song", artists: []string{"A", "B"}, title: "Song", genre: "EDM"},
		{name: "quoted layout", in: "Artist 'Song' (2024)", artists: []string{"Artist"}, title: "Song", year: 2024},
		{name: "curly quotes", in: "Artist ‘Song’", artists: []string{"Artist"}, title: "Song"},
		{name: "no layout", in: "Song", title: "Song"},
		{
			name:    "everything",
			in:      "04. A & B - Song (feat. C) (2024) [Radio Edit] (Official Video)",
			artists: []string{"A", "B", "C"},
			title:   "Song",
			remix:   "Radio Edit",
			year:    2024,
			track:   4,
		},
	}
	p := New(false, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.in)
			if got == nil {
				t.Fatal("Parse returned nil")
			}
			if !reflect.DeepEqual(got.Artists, tt.artists) {
				t.Errorf("Artists = %v, want %v", got.Artists, tt.artists)
			}
			if got.Title != tt.title {
				t.Errorf("Title = %q, want %q", got.Title, tt.title)
			}
			if got.Remix != tt.remix {
				t.Errorf("Remix = %q, want %q", got.Remix, tt.remix)
			}
			if got.Album != tt.album {
				t.Errorf("Album = %q, want %q", got.Album, tt.album)
			}
			if got.Genre != tt.genre {
				t.Errorf("Genre = %q, want %q", got.Genre, tt.genre)
			}
			if got.Year != tt.year {
				t.Errorf("Year = %d, want %d", got.Year, tt.year)
			}
			if got.Track != tt.track {
				t.Errorf("Track = %d, want %d", got.Track, tt.track)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	if got := New(false, nil).Parse(""); got != nil {
		t.Errorf("Parse(\"\") = %v, want nil", got)
	}
}
