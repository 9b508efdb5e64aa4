// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/huh"
	cliAdapter "github.com/janderssonse/pokedex/internal/adapters/cli"
	"github.com/janderssonse/pokedex/internal/catalog"
	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=v1.2.3".
var Version = ""

func (app *CLI) createTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Launch the interactive catalog browser",
		Description: `Browse the catalog twelve entries at a time.

Navigation:
- Arrow keys or h/j/k/l move between cards, enter opens one
- n/p change page, 1-3 jump to a numbered page button
- / searches by name or number, m opens the menu, ? shows help
- Press q or Ctrl+C to quit`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.runTUI(ctx)
		},
	}
}

func (app *CLI) runTUI(ctx context.Context) error {
	if err := app.launch(ctx, app.loader, app.logger); err != nil {
		app.logger.Error("tui exited with error", zap.Error(err))

		if app.verbose {
			return domain.NewExitError(domain.ExitGeneralError, fmt.Sprintf("Failed to launch TUI: %v", err), err)
		}

		return domain.NewExitError(domain.ExitGeneralError, "Failed to launch interactive interface (terminal required)", err)
	}

	return nil
}

func (app *CLI) createPageCommand() *cli.Command {
	return &cli.Command{
		Name:  "page",
		Usage: "Print one catalog page",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "page",
				Aliases: []string{"p"},
				Usage:   "page number, starting at 1",
				Value:   1,
			},
		}, outputFlags("the page")...),
		Action: app.runPage,
	}
}

func (app *CLI) runPage(ctx context.Context, cmd *cli.Command) error {
	output, err := app.outputFor(cmd)
	if err != nil {
		return err
	}

	page, err := app.loader.LoadPage(ctx, cmd.Int("page"))
	if err != nil {
		return app.failure(err, "")
	}

	return output.Page(domain.PageResult{
		Page:       page.Number,
		TotalPages: page.TotalPages,
		Offset:     catalog.Offset(page.Number),
		Records:    page.Records,
	})
}

func (app *CLI) createShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print one Pokémon in detail",
		ArgsUsage: "[name or number]",
		Description: `Looks a Pokémon up by name or Pokédex number.
Without an argument you are asked for one.`,
		Flags:  outputFlags("the record"),
		Action: app.runShow,
	}
}

func (app *CLI) runShow(ctx context.Context, cmd *cli.Command) error {
	output, err := app.outputFor(cmd)
	if err != nil {
		return err
	}

	term := strings.Join(cmd.Args().Slice(), " ")

	if strings.TrimSpace(term) == "" {
		answer, err := app.prompter.AskName(ctx)
		if err != nil {
			return promptFailure(err)
		}

		term = answer
	}

	record, err := app.loader.SearchByKey(ctx, term)
	if err != nil {
		return app.failure(err, catalog.NormalizeTerm(term))
	}

	return output.Record(record)
}

// outputFlags returns --format and its --json shorthand.
func outputFlags(what string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"o"},
			Usage:   "output format for " + what + ": text or json",
			Value:   "text",
		},
		&cli.BoolFlag{
			Name:  flagJSON,
			Usage: "output " + what + " as JSON (same as --format json)",
		},
	}
}

// outputFormat reads --format and its --json shorthand.
func outputFormat(cmd *cli.Command) (cliAdapter.OutputFormat, error) {
	name := cmd.String(flagFormat)
	if cmd.Bool(flagJSON) {
		name = "json"
	}

	format, err := cliAdapter.ParseOutputFormat(name)
	if err != nil {
		return format, domain.NewExitError(domain.ExitUsageError,
			fmt.Sprintf("Unknown output format %q (use text or json)", name), err)
	}

	return format, nil
}

// outputFor builds the output adapter for the command's output flags.
func (app *CLI) outputFor(cmd *cli.Command) (domain.OutputPort, error) {
	format, err := outputFormat(cmd)
	if err != nil {
		return nil, err
	}

	return cliAdapter.NewOutputAdapterWithWriter(app.stdout, format, false), nil
}
