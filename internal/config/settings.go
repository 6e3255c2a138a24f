package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jmelchers/titletag/internal/model"
)

// Organization modes for deposit.
const (
	OrganizeFlat = ""
	OrganizeAZ   = "A-Z"
	OrganizeDate = "DATE"
)

// Persist-failure policies for the processing loop.
const (
	OnPersistErrorSkip  = "skip"
	OnPersistErrorAbort = "abort"
)

// Settings holds all configuration options for a library.
type Settings struct {
	// Library layout
	LibraryPath string `json:"library_path"`
	InputDir    string `json:"input_dir"`
	TargetDir   string `json:"target_dir"`

	// Deposit settings
	Organize string `json:"organize"` // "", A-Z, DATE

	// Processing settings
	Steps              []string `json:"steps"`
	ClearInput         bool     `json:"clear_input"`
	KeepExistingArtist bool     `json:"keep_existing_artist"`
	AutoAccept         bool     `json:"auto_accept"`
	OnPersistError     string   `json:"on_persist_error"` // skip, abort
	Verbose            bool     `json:"verbose"`

	// Templates
	TitleTemplate    string `json:"title_template"`
	FilenameTemplate string `json:"filename_template"`

	// Download settings
	YtDlpConfigPath      string `json:"yt_dlp_config_path"`
	InputFilePath        string `json:"input_file_path"`
	MaxConcurrentFetches int    `json:"max_concurrent_fetches"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	library := filepath.Join(homeDir, "Music")
	return &Settings{
		LibraryPath: library,
		InputDir:    filepath.Join(library, "IN"),
		TargetDir:   library,

		Organize: OrganizeFlat,

		Steps:              []string{"download", "tag", "deposit"},
		ClearInput:         true,
		KeepExistingArtist: false,
		AutoAccept:         false,
		OnPersistError:     OnPersistErrorSkip,
		Verbose:            false,

		TitleTemplate:    model.DefaultTitleTemplate,
		FilenameTemplate: model.DefaultFilenameTemplate,

		YtDlpConfigPath:      filepath.Join(library, "yt-dlp.conf"),
		InputFilePath:        filepath.Join(library, "input.txt"),
		MaxConcurrentFetches: 4,
	}
}

// Load reads settings from a JSON file.
//
// A missing file yields the defaults; the file only needs to list the
// options it overrides.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ConfigDir returns the directory holding the library's own files
// (settings, yt-dlp config, input list), which maintenance commands
// must leave alone.
func (s *Settings) ConfigDir() string {
	return filepath.Join(s.LibraryPath, ".titletag")
}
