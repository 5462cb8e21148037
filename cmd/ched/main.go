// Package main is the entry point for the ched line editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/kvlevich/ched/internal/config"
	"github.com/kvlevich/ched/internal/diag"
	"github.com/kvlevich/ched/internal/dispatcher"
	"github.com/kvlevich/ched/internal/engine/buffer"
	"github.com/kvlevich/ched/internal/engine/history"
	"github.com/kvlevich/ched/internal/engine/nav"
	"github.com/kvlevich/ched/internal/input"
	"github.com/kvlevich/ched/internal/output"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath  string
	tracePath   string
	showVersion bool
	showHelp    bool
}

func run() int {
	opts := parseFlags()

	if opts.showHelp {
		flag.Usage()
		return 0
	}
	if opts.showVersion {
		fmt.Printf("ched %s (%s)\n", version, commit)
		return 0
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ched: failed to load configuration: %v\n", err)
		return 1
	}
	if opts.tracePath != "" {
		settings.TracePath = opts.tracePath
	}

	var trace *diag.Recorder
	if settings.TracePath != "" {
		f, err := os.Create(settings.TracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ched: failed to open trace file: %v\n", err)
			return 1
		}
		defer f.Close()
		trace = diag.New(f)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "ched: reading commands from terminal, end with q or Ctrl-D")
	}

	buf := buffer.New(buffer.WithBlockSize(settings.BufferBlockSize))
	tl := history.New()
	navEngine := nav.New(buf, tl)
	parser := input.NewParser(os.Stdin)
	writer := output.New(os.Stdout)

	d := dispatcher.New(buf, tl, navEngine, parser, writer, trace)
	if err := d.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ched: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.tracePath, "trace", "", "Write a JSON-lines diagnostic trace to this path")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version information")
	flag.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&opts.showHelp, "help", false, "Show help message")
	flag.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ched - a line-addressable text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ched [options] < commands\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}
