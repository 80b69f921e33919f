// Package app wires the brick Application from configuration.
package app

import (
	"io"
	"os"

	"github.com/brickyard-dev/brick/internal/config"
	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/git"
	"github.com/brickyard-dev/brick/internal/log"
	"github.com/brickyard-dev/brick/internal/paths"
	"github.com/brickyard-dev/brick/internal/registry"
	"github.com/brickyard-dev/brick/internal/store"
	"github.com/brickyard-dev/brick/internal/ui"
	"github.com/brickyard-dev/brick/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	Version string
	Config  config.Config
	DBPath  string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Style options
	StyleEnabled bool

	// Interactive enables prompts; it needs a terminal on both ends.
	Interactive bool

	// ConfigErr is a config.toml problem. Config then holds the defaults
	// and New logs a warning instead of failing.
	ConfigErr error
}

// DefaultOptions reads config.toml and inspects the process streams.
func DefaultOptions(version string) Options {
	cfg, err := config.LoadDefault()
	if err != nil {
		cfg = config.Defaults()
	}

	stdoutTTY := ui.IsTerminal(os.Stdout)
	return Options{
		Version:      version,
		Config:       cfg,
		DBPath:       paths.DBPath(),
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		StyleEnabled: stdoutTTY && !cfg.NoColor,
		Interactive:  stdoutTTY && ui.IsTerminal(os.Stdin),
		ConfigErr:    err,
	}
}

// New creates a new Application with all dependencies wired up. The
// registry client it acquires is released by the command runner; the rest
// is released by Close. The store opens its database on first use.
func New(opts Options) (*domain.Application, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}

	level := log.ParseLevel(opts.Config.LogLevel)
	var logger domain.Logger = log.New(opts.Stderr, level)
	if opts.Config.LogFile != "" {
		l, err := log.NewWithFile(opts.Stderr, opts.Config.LogFile, level)
		if err != nil {
			logger.Warn("could not open log file: %v", err)
		} else {
			logger = l
		}
	}

	if opts.ConfigErr != nil {
		logger.Warn("ignoring config, using defaults: %v", opts.ConfigErr)
	}

	style.Init(opts.StyleEnabled)

	return &domain.Application{
		Version:     opts.Version,
		Config:      opts.Config,
		Logger:      logger,
		Stdin:       opts.Stdin,
		Output:      ui.NewWriterTo(opts.Stdout),
		Errors:      ui.NewWriterTo(opts.Stderr, ui.WithPagerDisabled()),
		Styler:      style.NewStyler(),
		Registry:    registry.New(opts.Config.RegistryURL, logger),
		Store:       store.NewLazy(opts.DBPath),
		Git:         git.NewProvider(logger),
		Interactive: opts.Interactive,
	}, nil
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app == nil {
		return nil
	}
	if app.Store != nil {
		_ = app.Store.Close()
	}
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	return nil
}
