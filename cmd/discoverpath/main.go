// Package main provides the discoverpath command. It prints the on-disk
// casing of each path given on the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Cyclone1070/discoverpath/internal/config"
	"github.com/Cyclone1070/discoverpath/internal/tool/service/fs"
	"github.com/Cyclone1070/discoverpath/internal/tool/service/path"
	"github.com/Cyclone1070/discoverpath/internal/ui"
	"github.com/Cyclone1070/discoverpath/internal/ui/services"
	"github.com/Cyclone1070/discoverpath/internal/ui/views"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const reportWidth = 80

// Dependencies holds the components required to resolve and report paths.
type Dependencies struct {
	Config   *config.Config
	Log      zerolog.Logger
	Resolver *path.Resolver
	Renderer services.MarkdownRenderer
	// Picker chooses between ambiguous suggestions. Nil disables picking.
	Picker func(choices []string) (string, error)
	Getwd  func() (string, error)
	Stdout io.Writer
	Stderr io.Writer
}

func newLogger(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}

	out := w
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func createLister(cfg *config.Config) path.Lister {
	if cfg.Resolve.Backend == "billy" {
		return fs.NewOSBillyFileSystem()
	}
	return fs.NewOSFileSystem()
}

func createDependencies(cfg *config.Config, log zerolog.Logger, pick bool) Dependencies {
	deps := Dependencies{
		Config:   cfg,
		Log:      log,
		Resolver: path.NewResolver(createLister(cfg), path.WithLogger(log)),
		Getwd:    os.Getwd,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
	if cfg.UI.Markdown {
		deps.Renderer = services.NewGlamourRenderer(cfg.UI.GlamourStyle)
	}
	if pick && isatty.IsTerminal(os.Stdin.Fd()) {
		deps.Picker = func(choices []string) (string, error) {
			return ui.RunPicker(choices, cfg.UI, os.Stdin, os.Stderr)
		}
	}
	return deps
}

func printUsage(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: discoverpath [flags] PATH...\n\n")
	fmt.Fprintf(w, "Prints each PATH with the letter casing it has on disk.\n\n")
	flags.SetOutput(w)
	flags.PrintDefaults()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("discoverpath", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	pick := flags.Bool("pick", false, "Choose interactively when a path is ambiguous")
	verbose := flags.Bool("verbose", false, "Log every segment decision")
	jsonLogs := flags.Bool("json", false, "Write logs as JSON")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout, flags)
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage(os.Stderr, flags)
		return 2
	}
	if flags.NArg() == 0 {
		printUsage(os.Stderr, flags)
		return 2
	}

	// Load configuration (defaults + ~/.config/discoverpath/config.json + env)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *jsonLogs {
		cfg.Log.Format = "json"
	}

	log := newLogger(cfg.Log, os.Stderr)
	return resolveAll(createDependencies(cfg, log, *pick), flags.Args())
}

// resolveAll prints the resolved form of every target and returns the exit
// status: 0 when all resolved, 1 otherwise.
func resolveAll(deps Dependencies, targets []string) int {
	status := 0
	for _, target := range targets {
		resolved, err := resolveOne(deps, target)
		if err != nil {
			deps.Log.Debug().Err(err).Str("target", target).Msg("resolution failed")
			fmt.Fprintln(deps.Stderr, views.RenderError(err, views.NewStyles(deps.Config.UI), deps.Renderer, reportWidth))
			status = 1
			continue
		}
		fmt.Fprintln(deps.Stdout, resolved)
	}
	return status
}

func resolveOne(deps Dependencies, target string) (string, error) {
	abs, err := absolute(deps, target)
	if err != nil {
		return "", err
	}

	resolved, err := deps.Resolver.Discover(abs)
	var notFound *path.PathNotFoundError
	if err != nil && deps.Picker != nil && errors.As(err, &notFound) && notFound.Ambiguous() {
		return deps.Picker(notFound.Suggestions)
	}
	return resolved, err
}

// absolute anchors relative targets at the working directory.
func absolute(deps Dependencies, target string) (string, error) {
	if target == "" || path.ConventionFor(target).IsAbs(target) {
		return target, nil
	}
	wd, err := deps.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, target), nil
}
