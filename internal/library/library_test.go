package library

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmelchers/titletag/internal/config"
)

func newTestProcessor(t *testing.T, input string) (*Processor, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	s := config.DefaultSettings()
	s.LibraryPath = root
	s.InputDir = filepath.Join(root, "IN")
	s.TargetDir = root
	s.InputFilePath = filepath.Join(root, ".titletag", "input.txt")
	s.YtDlpConfigPath = filepath.Join(root, ".titletag", "yt-dlp.conf")
	if err := os.MkdirAll(s.InputDir, 0755); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	return NewProcessor(s, strings.NewReader(input), &out), &out
}

func TestLetterFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Band - Song.mp3", "B"},
		{"band - song.mp3", "B"},
		{"09 track.mp3", "0-9#"},
		{"#hashtag.mp3", "0-9#"},
		{"Éowyn.mp3", "0-9#"},
		{"", "0-9#"},
	}
	for _, tt := range tests {
		if got := letterFor(tt.name); got != tt.want {
			t.Errorf("letterFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAddAndReadInputTargets(t *testing.T) {
	p, _ := newTestProcessor(t, "")
	if err := os.MkdirAll(filepath.Dir(p.Settings.InputFilePath), 0755); err != nil {
		t.Fatal(err)
	}
	err := p.Add([]string{
		"https://example.com/watch?v=1",
		"some artist some song",
		"https://example.com/watch?v=1", // duplicate, dropped on read
		"",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	targets, err := p.readInputTargets()
	if err != nil {
		t.Fatalf("readInputTargets: %v", err)
	}
	want := []string{
		"https://example.com/watch?v=1",
		`ytsearch:"some artist some song"`,
	}
	if len(targets) != len(want) {
		t.Fatalf("targets = %v, want %v", targets, want)
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Errorf("target %d = %q, want %q", i, targets[i], want[i])
		}
	}
}

func TestReadInputTargetsSkipsComments(t *testing.T) {
	p, _ := newTestProcessor(t, "")
	if err := os.MkdirAll(filepath.Dir(p.Settings.InputFilePath), 0755); err != nil {
		t.Fatal(err)
	}
	content := "# queued last week\nhttps://example.com/a\n\nhttps://example.com/b\n"
	if err := os.WriteFile(p.Settings.InputFilePath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	targets, err := p.readInputTargets()
	if err != nil {
		t.Fatalf("readInputTargets: %v", err)
	}
	if len(targets) != 2 {
		t.Errorf("targets = %v, want 2 entries", targets)
	}
}

func TestDepositFlat(t *testing.T) {
	p, _ := newTestProcessor(t, "")
	src := filepath.Join(p.Settings.InputDir, "Band - Song.mp3")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.Deposit(); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if _, err := os.Stat(filepath.Join(p.Settings.TargetDir, "Band - Song.mp3")); err != nil {
		t.Errorf("file not deposited: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source still present")
	}
}

func TestDepositAZ(t *testing.T) {
	p, _ := newTestProcessor(t, "")
	p.Settings.Organize = config.OrganizeAZ
	for _, name := range []string{"Band - Song.mp3", "09 Intro.mp3"} {
		if err := os.WriteFile(filepath.Join(p.Settings.InputDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.Deposit(); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	// Neither file carries tags, so the artist comes from the
	// "Artist - Title" filename convention where present.
	for _, want := range []string{
		filepath.Join("B", "Band", "Band - Song.mp3"),
		filepath.Join("0-9#", "09 Intro.mp3"),
	} {
		if _, err := os.Stat(filepath.Join(p.Settings.TargetDir, want)); err != nil {
			t.Errorf("missing %s: %v", want, err)
		}
	}
}

func TestDepositOverwriteDeclined(t *testing.T) {
	p, _ := newTestProcessor(t, "n\n")
	src := filepath.Join(p.Settings.InputDir, "Song.mp3")
	dest := filepath.Join(p.Settings.TargetDir, "Song.mp3")
	if err := os.WriteFile(src, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dest, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.Deposit(); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "old" {
		t.Errorf("destination overwritten: %q, %v", data, err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Error("declined source should remain")
	}
}

func TestClean(t *testing.T) {
	p, _ := newTestProcessor(t, "")
	root := p.Settings.LibraryPath

	empty := filepath.Join(root, "A", "empty")
	if err := os.MkdirAll(empty, 0755); err != nil {
		t.Fatal(err)
	}
	full := filepath.Join(root, "B")
	if err := os.MkdirAll(full, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(full, "keep.mp3"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(p.Settings.ConfigDir(), 0755); err != nil {
		t.Fatal(err)
	}

	if err := p.Clean(); err != nil {
		t.Fatalf("Clean: %v", err)
	}

	// A/empty and then A itself are gone, B stays, config dir stays.
	if _, err := os.Stat(filepath.Join(root, "A")); !os.IsNotExist(err) {
		t.Error("empty tree not removed")
	}
	if _, err := os.Stat(full); err != nil {
		t.Error("non-empty directory removed")
	}
	if _, err := os.Stat(p.Settings.ConfigDir()); err != nil {
		t.Error("config directory removed")
	}
}
