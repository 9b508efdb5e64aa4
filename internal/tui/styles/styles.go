// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Color palette
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
	Muted     lipgloss.Color

	Background lipgloss.Color
	Foreground lipgloss.Color

	// Component styles
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Card        lipgloss.Style
	FocusedCard lipgloss.Style
	Button      lipgloss.Style
	ActiveBtn   lipgloss.Style
	DisabledBtn lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Overlay     lipgloss.Style
	Sidebar     lipgloss.Style

	// Text styles (cached for performance)
	MutedText   lipgloss.Style
	PrimaryText lipgloss.Style
	ErrorText   lipgloss.Style
	InfoText    lipgloss.Style
}

// typeColors follows the in-game type palette.
var typeColors = map[string]lipgloss.Color{
	"normal":   "#a8a77a",
	"fire":     "#ee8130",
	"water":    "#6390f0",
	"electric": "#f7d02c",
	"grass":    "#7ac74c",
	"ice":      "#96d9d6",
	"fighting": "#c22e28",
	"poison":   "#a33ea1",
	"ground":   "#e2bf65",
	"flying":   "#a98ff3",
	"psychic":  "#f95587",
	"bug":      "#a6b91a",
	"rock":     "#b6a136",
	"ghost":    "#735797",
	"dragon":   "#6f35fc",
	"dark":     "#705746",
	"steel":    "#b7b7ce",
	"fairy":    "#d685ad",
}

// New creates a new Styles instance with default Tokyo Night theme.
func New() *Styles {
	// Tokyo Night color palette
	primary := lipgloss.Color("#7aa2f7")    // Blue
	secondary := lipgloss.Color("#bb9af7")  // Purple
	success := lipgloss.Color("#9ece6a")    // Green
	warning := lipgloss.Color("#e0af68")    // Yellow
	errorColor := lipgloss.Color("#f7768e") // Red
	info := lipgloss.Color("#7dcfff")       // Cyan
	muted := lipgloss.Color("#565f89")      // Gray

	background := lipgloss.Color("#1a1b26") // Dark background
	foreground := lipgloss.Color("#c0caf5") // Light foreground

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	button := lipgloss.NewStyle().
		Foreground(foreground).
		Padding(0, 1).
		MarginRight(1)

	return &Styles{
		Primary:    primary,
		Secondary:  secondary,
		Success:    success,
		Warning:    warning,
		Error:      errorColor,
		Info:       info,
		Muted:      muted,
		Background: background,
		Foreground: foreground,

		Header: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), false, false, true, false).
			BorderForeground(primary),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(secondary).
			Italic(true),

		Card:        card,
		FocusedCard: card.BorderForeground(primary),

		Button:      button,
		ActiveBtn:   button.Background(primary).Foreground(background).Bold(true),
		DisabledBtn: button.Foreground(muted).Faint(true),

		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(background).
			Padding(0, 1),

		Unselected: lipgloss.NewStyle().
			Foreground(foreground).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(secondary).
			Padding(1, 2),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1).
			Width(26),

		MutedText:   lipgloss.NewStyle().Foreground(muted),
		PrimaryText: lipgloss.NewStyle().Foreground(primary),
		ErrorText:   lipgloss.NewStyle().Foreground(errorColor),
		InfoText:    lipgloss.NewStyle().Foreground(info),
	}
}

// Logo returns the styled application title.
func (s *Styles) Logo() string {
	return s.Title.Render("◓ Pokédex")
}

// TypeColor returns the badge color for an elemental type.
func (s *Styles) TypeColor(typeName string) lipgloss.Color {
	if c, ok := typeColors[strings.ToLower(typeName)]; ok {
		return c
	}

	return s.Muted
}

// TypeBadge renders a type name as a colored tag.
func (s *Styles) TypeBadge(typeName string) string {
	return lipgloss.NewStyle().
		Background(s.TypeColor(typeName)).
		Foreground(s.Background).
		Padding(0, 1).
		Render(strings.ToUpper(typeName))
}

// StatusIcon returns styled status icons.
func (s *Styles) StatusIcon(status string) string {
	switch status {
	case "loaded":
		return lipgloss.NewStyle().Foreground(s.Success).Render("✓")
	case "failed", "error":
		return lipgloss.NewStyle().Foreground(s.Error).Render("✗")
	case "info":
		return lipgloss.NewStyle().Foreground(s.Info).Render("i")
	case "loading":
		return lipgloss.NewStyle().Foreground(s.Primary).Render("⚬")
	default:
		return s.MutedText.Render("•")
	}
}

// Keybinding returns styled keybinding text.
func (s *Styles) Keybinding(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	return keyStyle.Render("["+key+"]") + " " + s.MutedText.Render(desc)
}
