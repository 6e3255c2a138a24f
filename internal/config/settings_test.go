package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := DefaultSettings()
	if s.OnPersistError != d.OnPersistError || s.TitleTemplate != d.TitleTemplate {
		t.Errorf("Load on missing file = %+v, want defaults", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	s := DefaultSettings()
	s.Organize = OrganizeAZ
	s.AutoAccept = true
	s.Steps = []string{"tag"}
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Organize != OrganizeAZ || !got.AutoAccept {
		t.Errorf("round trip lost values: %+v", got)
	}
	if len(got.Steps) != 1 || got.Steps[0] != "tag" {
		t.Errorf("Steps = %v", got.Steps)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"auto_accept": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.AutoAccept {
		t.Error("auto_accept not applied")
	}
	if s.OnPersistError != OnPersistErrorSkip {
		t.Errorf("OnPersistError = %q, want default", s.OnPersistError)
	}
}
