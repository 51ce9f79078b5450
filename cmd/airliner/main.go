// Package main is the entry point for the airliner editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/kwpeters/airliner/internal/app"
	"github.com/kwpeters/airliner/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.readOnly {
		cfg.ReadOnly = true
	}

	path, text := "", ""
	if args := flag.Args(); len(args) > 0 {
		path = args[0]
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = string(data)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	if err := app.New(screen, cfg, path, text).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	readOnly   bool
}

func parseFlags() options {
	var opts options
	var writeConfig string
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.readOnly, "readonly", false, "Open files in read-only mode")
	flag.BoolVar(&opts.readOnly, "R", false, "Open files in read-only mode (shorthand)")
	flag.StringVar(&writeConfig, "write-config", "", "Write the default configuration to a file and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Airliner - whitespace-aware text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: airliner [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Backspace   delete whitespace run / previous character\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+K      cut to end of line (consecutive cuts accrue)\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Q      quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Airliner %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if writeConfig != "" {
		if err := config.WriteDefault(writeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	return opts
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "airliner.json"
	}
	return filepath.Join(dir, "airliner", "config.json")
}
