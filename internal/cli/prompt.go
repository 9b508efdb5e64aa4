// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// errBlankName rejects empty prompt answers.
var errBlankName = errors.New("enter a name or number")

// Prompter asks the user for input the command line did not supply.
type Prompter interface {
	AskName(ctx context.Context) (string, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

type huhPrompter struct{}

func (huhPrompter) AskName(ctx context.Context) (string, error) {
	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("◓ Which Pokémon?").
				Description("Name or Pokédex number, e.g. pikachu or 25").
				Placeholder("pikachu").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errBlankName
					}

					return nil
				}).
				Value(&name),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}

	return name, nil
}

func (huhPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}

	return confirmed, nil
}
