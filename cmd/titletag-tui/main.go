package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmelchers/titletag/internal/config"
	"github.com/jmelchers/titletag/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "path to the settings file")
	libraryFlag := flag.String("library", "", "library path (overrides config)")
	flag.Parse()

	configPath := *configFlag
	if configPath == "" && *libraryFlag != "" {
		configPath = filepath.Join(*libraryFlag, ".titletag", "settings.json")
	}
	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *libraryFlag != "" {
		settings.LibraryPath = *libraryFlag
		settings.InputDir = filepath.Join(*libraryFlag, "IN")
		settings.TargetDir = *libraryFlag
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
