// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements TUI screen models using Bubble Tea.
package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/pokedex/internal/tui/styles"
)

// RenderFooter renders key hints for the given bindings. Bindings without
// help text or that are disabled are skipped.
func RenderFooter(styleConfig *styles.Styles, width int, bindings []key.Binding, includeHelp bool) string {
	hints := make([]string, 0, len(bindings)+1)

	for _, binding := range bindings {
		help := binding.Help()
		if !binding.Enabled() || help.Key == "" {
			continue
		}

		hints = append(hints, styleConfig.Keybinding(help.Key, help.Desc))
	}

	if includeHelp {
		helpKey := lipgloss.NewStyle().Bold(true).Foreground(styleConfig.Warning).Render("[?]")
		hints = append(hints, helpKey+" "+styleConfig.MutedText.Render("Help"))
	}

	footer := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color("240"))

	if width > 0 {
		footer = footer.Width(width)
	}

	return footer.Render(strings.Join(hints, "  "))
}
