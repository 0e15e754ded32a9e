// Package main is the entry point for the meow editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/meow/internal/app"
	"github.com/dshills/meow/internal/clipboard"
	"github.com/dshills/meow/internal/config"
	"github.com/dshills/meow/internal/fileio"
	"github.com/dshills/meow/internal/renderer/backend"
	"github.com/dshills/meow/internal/renderer/highlight"
	"github.com/dshills/meow/internal/watcher"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logFile    string
	logLevel   string
	fileName   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := app.NullLogger
	if opts.logFile != "" {
		l, closer, err := app.OpenLogFile(opts.logFile, app.ParseLogLevel(opts.logLevel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer closeQuietly(closer)
		logger = l
	}
	logger.Info("meow %s starting", version)

	// Settings problems are not fatal: continue with defaults.
	var message string
	cfgOpts := config.Options{Path: opts.configPath}
	settings, err := config.Load(cfgOpts)
	if err != nil {
		logger.Warn("config: %v", err)
		message = fmt.Sprintf("Config error, using defaults: %v", err)
	}
	themeFile, err := config.ResolveTheme(cfgOpts, settings)
	if err != nil {
		logger.Warn("theme: %v", err)
		message = fmt.Sprintf("Theme error: %v", err)
	}
	theme, err := highlight.NewTheme(settings.Editor.Theme, themeFile)
	if err != nil {
		logger.Warn("theme: %v", err)
		message = fmt.Sprintf("Theme error: %v", err)
	}

	editor, err := app.New(app.Options{
		FileName:  opts.fileName,
		Settings:  settings,
		Theme:     theme,
		Files:     fileio.New(nil),
		Clipboard: clipboard.New(),
		Logger:    logger,
		Message:   message,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	if opts.fileName != "" {
		fw, err := watcher.New(opts.fileName, func(ev watcher.Event) {
			_ = term.PostEvent(backend.InterruptEvent(ev))
		}, watcher.WithErrorHandler(func(err error) {
			logger.Warn("watcher: %v", err)
		}))
		if err != nil {
			logger.Warn("not watching %s: %v", opts.fileName, err)
		} else {
			defer closeQuietly(fw)
		}
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			_ = app.Stop(term)
		}
	}()

	if err := editor.Run(term); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "meow - a small modal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: meow [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  meow                        Open an empty document\n")
		fmt.Fprintf(os.Stderr, "  meow main.rs                Open a file\n")
		fmt.Fprintf(os.Stderr, "  meow -log-file meow.log x   Log to meow.log\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("meow %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.logLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.fileName = flag.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "Error: only one file can be opened\n")
		os.Exit(1)
	}

	return opts
}
