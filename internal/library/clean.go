package library

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Clean removes empty directories under the library path. The library
// root and the configuration directory are left alone.
func (p *Processor) Clean() error {
	root := p.Settings.LibraryPath
	configDir := p.Settings.ConfigDir()

	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path == configDir {
			return filepath.SkipDir
		}
		if path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Deepest first, so a directory that only held empty directories
	// goes too.
	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err != nil || len(entries) > 0 {
			continue
		}
		if strings.HasPrefix(configDir, dirs[i]+string(filepath.Separator)) {
			continue
		}
		os.Remove(dirs[i])
	}
	return nil
}
