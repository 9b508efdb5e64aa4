// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"

	cliAdapter "github.com/janderssonse/pokedex/internal/adapters/cli"
	"github.com/janderssonse/pokedex/internal/config"
	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func (app *CLI) createConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the config file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the effective settings to the config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "overwrite an existing file without asking",
					},
				},
				Action: app.runConfigInit,
			},
			{
				Name:  "show",
				Usage: "Print the effective settings",
				Flags:  outputFlags("the settings"),
				Action: app.runConfigShow,
			},
		},
	}
}

func (app *CLI) runConfigInit(ctx context.Context, cmd *cli.Command) error {
	overwrite := cmd.Bool("force")

	err := config.Save(app.cfgPath, app.cfg, overwrite)
	if errors.Is(err, config.ErrConfigExists) {
		confirmed, promptErr := app.prompter.Confirm(ctx, fmt.Sprintf("Overwrite %s?", app.cfgPath))
		if promptErr != nil {
			return promptFailure(promptErr)
		}

		if !confirmed {
			return domain.NewExitError(domain.ExitConfigError, "Config file left unchanged (use --force to overwrite)", err)
		}

		err = config.Save(app.cfgPath, app.cfg, true)
	}

	switch {
	case errors.Is(err, config.ErrConfigLocked):
		return domain.NewExitError(domain.ExitSystemError, "Another pokedex process is writing the config", err)
	case err != nil:
		return domain.NewExitError(domain.ExitConfigError, "Failed to write config", err)
	}

	app.logger.Info("config written", zap.String("path", app.cfgPath))

	return cliAdapter.NewOutputAdapterWithWriter(app.stdout, cliAdapter.TextFormat, false).Success("✓ Wrote "+app.cfgPath, nil)
}

func (app *CLI) runConfigShow(_ context.Context, cmd *cli.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	output := cliAdapter.NewOutputAdapterWithWriter(app.stdout, format, false)

	if format == cliAdapter.JSONFormat {
		return output.Success("", map[string]any{
			"path":     app.cfgPath,
			"base_url": app.cfg.API.BaseURL,
			"timeout":  app.cfg.TimeoutDuration().String(),
			"log_file": app.cfg.Logging.File,
			"level":    app.cfg.Logging.Level,
		})
	}

	data, err := app.cfg.Marshal()
	if err != nil {
		return domain.NewExitError(domain.ExitConfigError, "Failed to encode config", err)
	}

	if err := output.Info("# " + app.cfgPath); err != nil {
		return err
	}

	return output.Info(string(data))
}
