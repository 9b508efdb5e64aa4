// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the pokedex command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/janderssonse/pokedex/internal/adapters/network"
	"github.com/janderssonse/pokedex/internal/catalog"
	"github.com/janderssonse/pokedex/internal/config"
	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/janderssonse/pokedex/internal/logging"
	"github.com/janderssonse/pokedex/internal/tui"
	"github.com/janderssonse/pokedex/internal/tui/models"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	flagConfig   = "config"
	flagEnvFile  = "env-file"
	flagAPIURL   = "api-url"
	flagTimeout  = "timeout"
	flagLogFile  = "log-file"
	flagLogLevel = "log-level"
	flagVerbose  = "verbose"
	flagJSON     = "json"
	flagFormat   = "format"
)

// ErrUnknownCommand is returned when the first argument names no command.
var ErrUnknownCommand = errors.New("unknown command")

// SourceFactory builds the catalog source from the effective config.
type SourceFactory func(cfg *config.Config) (domain.CatalogSource, error)

// Launcher starts the interactive browser.
type Launcher func(ctx context.Context, loader models.CatalogLoader, logger *zap.Logger) error

// CLI holds the command tree and the dependencies its commands share.
type CLI struct {
	app *cli.Command

	stdout io.Writer
	stderr io.Writer

	newSource SourceFactory
	launch    Launcher
	prompter  Prompter

	verbose bool
	cfgPath string
	cfg     *config.Config
	logger  *zap.Logger
	loader  *catalog.Loader
}

// Option customises a CLI.
type Option func(*CLI)

// WithOutput redirects command output.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *CLI) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// WithSourceFactory replaces the HTTP catalog source.
func WithSourceFactory(factory SourceFactory) Option {
	return func(c *CLI) {
		c.newSource = factory
	}
}

// WithLauncher replaces the TUI launcher.
func WithLauncher(launch Launcher) Option {
	return func(c *CLI) {
		c.launch = launch
	}
}

// WithPrompter replaces the interactive prompts.
func WithPrompter(prompter Prompter) Option {
	return func(c *CLI) {
		c.prompter = prompter
	}
}

// NewCLI creates the command tree.
func NewCLI(opts ...Option) *CLI {
	app := &CLI{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newSource: httpSource,
		launch:    tui.Launch,
		prompter:  huhPrompter{},
	}

	for _, opt := range opts {
		opt(app)
	}

	app.app = &cli.Command{
		Name:  "pokedex",
		Usage: "Browse the Pokémon catalog from your terminal",
		Description: `Runs an interactive catalog browser when started without a command.

EXAMPLES:
  pokedex                     Browse page by page
  pokedex page --page 3       Print the third page
  pokedex show pikachu        Print one Pokémon in detail
  pokedex config init         Write a starter config file`,
		Writer:    app.stdout,
		ErrWriter: app.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagConfig,
				Usage: "path to the TOML config file",
				Value: config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:  flagEnvFile,
				Usage: "optional .env file with POKEDEX_* settings",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  flagAPIURL,
				Usage: "catalog API root",
			},
			&cli.DurationFlag{
				Name:  flagTimeout,
				Usage: "timeout per API request (0 = no timeout)",
			},
			&cli.StringFlag{
				Name:  flagLogFile,
				Usage: "write logs to this file",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "log level: debug, info, warn, error",
			},
			&cli.BoolFlag{
				Name:        flagVerbose,
				Usage:       "show technical error details and log at debug level",
				Destination: &app.verbose,
			},
		},
		Before:       app.initConfig,
		After:        app.shutdown,
		Action:       app.defaultAction,
		OnUsageError: app.usageError,
		Commands: []*cli.Command{
			app.createTUICommand(),
			app.createPageCommand(),
			app.createShowCommand(),
			app.createConfigCommand(),
			app.createVersionCommand(),
		},
	}

	return app
}

// App returns the root command ready to run.
func App() *cli.Command {
	return NewCLI().app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// initConfig resolves settings, then builds the logger and the loader.
func (app *CLI) initConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	app.cfgPath = cmd.String(flagConfig)

	cfg, err := config.Resolve(app.cfgPath, cmd.String(flagEnvFile))
	if err != nil {
		return ctx, domain.NewExitError(domain.ExitConfigError, "Failed to load configuration", err)
	}

	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return ctx, domain.NewExitError(domain.ExitConfigError, err.Error(), nil)
	}

	app.cfg = cfg

	logger, err := logging.New(logging.Options{
		File:    cfg.Logging.File,
		Level:   cfg.Logging.Level,
		Verbose: app.verbose,
	})
	if err != nil {
		return ctx, domain.NewExitError(domain.ExitConfigError, "Failed to open log file", err)
	}

	app.logger = logger

	source, err := app.newSource(cfg)
	if err != nil {
		return ctx, domain.NewExitError(domain.ExitConfigError, "Failed to configure catalog source", err)
	}

	app.loader = catalog.NewLoader(source, logger)

	logger.Debug("configuration resolved",
		zap.String("config", app.cfgPath),
		zap.String("api_url", cfg.API.BaseURL),
		zap.Duration("timeout", cfg.TimeoutDuration()))

	return ctx, nil
}

// applyFlags overrides cfg with flags given on the command line.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet(flagAPIURL) {
		cfg.API.BaseURL = cmd.String(flagAPIURL)
	}

	if cmd.IsSet(flagTimeout) {
		cfg.API.Timeout = config.Duration(cmd.Duration(flagTimeout))
	}

	if cmd.IsSet(flagLogFile) {
		cfg.Logging.File = cmd.String(flagLogFile)
	}

	if cmd.IsSet(flagLogLevel) {
		cfg.Logging.Level = cmd.String(flagLogLevel)
	}
}

func (app *CLI) shutdown(_ context.Context, _ *cli.Command) error {
	if app.logger != nil {
		_ = app.logger.Sync()
	}

	return nil
}

func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return domain.NewExitError(domain.ExitUsageError,
			fmt.Sprintf("'%s' is not a command. Run 'pokedex --help' to see available commands.", cmd.Args().First()),
			ErrUnknownCommand)
	}

	return app.runTUI(ctx)
}

func (app *CLI) usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return domain.NewExitError(domain.ExitUsageError, err.Error(), err)
}

// failure converts a loader error into an ExitError carrying a user-facing message.
func (app *CLI) failure(err error, key string) error {
	message := domain.FormatErrorMessage(err, key, app.verbose)

	return domain.NewExitError(domain.ExitCodeFor(err), message, err)
}

func httpSource(cfg *config.Config) (domain.CatalogSource, error) {
	timeout := time.Duration(cfg.API.Timeout)

	client, err := network.NewHTTPClient(cfg.API.BaseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return client, nil
}
