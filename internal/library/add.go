package library

import (
	"fmt"
	"os"
	"strings"
)

// Add appends targets to the input file for the next download run.
// URLs are recorded as-is; anything else becomes a yt-dlp search
// query.
func (p *Processor) Add(targets []string) error {
	if len(targets) == 0 {
		return nil
	}

	f, err := os.OpenFile(p.Settings.InputFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, target := range targets {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		if !strings.Contains(target, "://") {
			target = fmt.Sprintf("ytsearch:%q", target)
		}
		if _, err := fmt.Fprintln(f, target); err != nil {
			return err
		}
	}
	return nil
}
