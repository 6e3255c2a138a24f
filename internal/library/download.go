package library

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Download fetches every target listed in the input file using yt-dlp
// with the library's yt-dlp configuration. Targets are fetched
// concurrently up to the configured limit; a target that fails is
// reported and the rest keep going. With clear_input set, the input
// file is emptied after a run where every target succeeded.
func (p *Processor) Download(ctx context.Context) error {
	targets, err := p.readInputTargets()
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return nil
	}
	if err := os.MkdirAll(p.Settings.InputDir, 0755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	limit := p.Settings.MaxConcurrentFetches
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	var outMu sync.Mutex
	report := func(format string, args ...any) {
		outMu.Lock()
		defer outMu.Unlock()
		fmt.Fprintf(p.Out, format, args...)
	}

	// Only point yt-dlp at the library config when it exists; yt-dlp
	// refuses to start on a missing --config-location.
	var configArgs []string
	if _, err := os.Stat(p.Settings.YtDlpConfigPath); err == nil {
		configArgs = []string{"--config-location", p.Settings.YtDlpConfigPath}
	}

	failed := make([]bool, len(targets))
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			report("Fetching %s\n", target)
			cmd := exec.CommandContext(ctx, "yt-dlp", append(append([]string{}, configArgs...), target)...)
			cmd.Dir = p.Settings.InputDir
			if out, err := cmd.CombinedOutput(); err != nil {
				failed[i] = true
				report("Error fetching %s: %v\n%s", target, err, out)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, f := range failed {
		if f {
			return nil
		}
	}
	if p.Settings.ClearInput {
		return os.WriteFile(p.Settings.InputFilePath, nil, 0644)
	}
	return nil
}

// readInputTargets reads the input file and returns its targets in
// order, without blanks, comments, or duplicates.
func (p *Processor) readInputTargets() ([]string, error) {
	data, err := os.ReadFile(p.Settings.InputFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var targets []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		targets = append(targets, line)
	}
	return targets, nil
}
