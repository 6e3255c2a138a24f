package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jmelchers/titletag/internal/config"
	"github.com/jmelchers/titletag/internal/library"
)

func usage() {
	fmt.Println("titletag - turn messy media titles into clean tags and filenames")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  titletag [options] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  add <target>...   queue URLs or search terms for the next download")
	fmt.Println("  download          fetch queued targets with yt-dlp")
	fmt.Println("  tag               review and apply tag proposals for the input files")
	fmt.Println("  deposit           move tagged files into the library")
	fmt.Println("  clean             remove empty directories from the library")
	fmt.Println("  process [steps]   run the configured steps, or a comma-separated list")
	fmt.Println("  show              print the active settings")
	fmt.Println()
	fmt.Println("For interactive review, use: titletag-tui")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	var (
		configFlag  = flag.String("config", "", "path to the settings file")
		libraryFlag = flag.String("library", "", "library path (overrides config)")
		verboseFlag = flag.Bool("verbose", false, "verbose output")
		autoFlag    = flag.Bool("yes", false, "accept every proposal without asking")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	settings, err := loadSettings(*configFlag, *libraryFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *verboseFlag {
		settings.Verbose = true
	}
	if *autoFlag {
		settings.AutoAccept = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	p := library.NewProcessor(settings, os.Stdin, os.Stdout)

	switch cmd := flag.Arg(0); cmd {
	case "add":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "add needs at least one URL or search term")
			os.Exit(1)
		}
		err = p.Add(flag.Args()[1:])
	case "download":
		err = p.Download(ctx)
	case "tag":
		err = p.Tag()
	case "deposit":
		err = p.Deposit()
	case "clean":
		err = p.Clean()
	case "process":
		if flag.NArg() > 1 {
			settings.Steps = strings.Split(flag.Arg(1), ",")
		}
		err = p.Run(ctx)
	case "show":
		fmt.Printf("library:  %s\n", settings.LibraryPath)
		fmt.Printf("input:    %s\n", settings.InputDir)
		fmt.Printf("target:   %s\n", settings.TargetDir)
		fmt.Printf("organize: %s\n", organizeName(settings.Organize))
		fmt.Printf("steps:    %v\n", settings.Steps)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", cmd)
		usage()
		os.Exit(1)
	}
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nCancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings(configPath, libraryPath string) (*config.Settings, error) {
	if configPath == "" && libraryPath != "" {
		configPath = filepath.Join(libraryPath, ".titletag", "settings.json")
	}
	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}
	if libraryPath != "" {
		settings.LibraryPath = libraryPath
		settings.InputDir = filepath.Join(libraryPath, "IN")
		settings.TargetDir = libraryPath
	}
	return settings, nil
}

func organizeName(mode string) string {
	if mode == config.OrganizeFlat {
		return "flat"
	}
	return mode
}
