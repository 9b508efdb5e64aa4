// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/pokedex/internal/tui/state"
	"github.com/janderssonse/pokedex/internal/tui/styles"
)

// MenuItem is a named action in the side menu.
type MenuItem struct {
	Title       string
	Description string
	Icon        string
	// Event is what choosing the item feeds into the catalog reducer.
	Event state.Event
}

// DefaultMenuItems returns the side menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{
			Title:       "Home",
			Description: "Back to the first page",
			Icon:        "🏠",
			Event:       state.CatalogReset{},
		},
		{
			Title:       "All Pokémon",
			Description: "Browse the full catalog",
			Icon:        "📚",
			Event:       state.CatalogReset{},
		},
		{
			Title:       "Types",
			Description: "Browse by elemental type",
			Icon:        "🔥",
			Event:       state.NoticeShown{Message: "Types: coming soon"},
		},
		{
			Title:       "Favorites",
			Description: "Your saved Pokémon",
			Icon:        "⭐",
			Event:       state.NoticeShown{Message: "Favorites: coming soon"},
		},
		{
			Title:       "About",
			Description: "About this Pokédex",
			Icon:        "ℹ️",
			Event:       state.NoticeShown{Message: "About: coming soon"},
		},
	}
}

// Menu is the side menu. It only tracks its cursor; open/closed lives in
// the catalog state.
type Menu struct {
	styles *styles.Styles
	items  []MenuItem
	cursor int
}

// NewMenu creates a side menu with the default items.
func NewMenu(styleConfig *styles.Styles) *Menu {
	return &Menu{
		styles: styleConfig,
		items:  DefaultMenuItems(),
	}
}

// Items returns the menu entries.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Cursor returns the highlighted entry index.
func (m *Menu) Cursor() int {
	return m.cursor
}

// Update handles keys while the menu is open. The returned command yields
// the state events to apply, if any.
func (m *Menu) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case KeyEnter, " ":
		return m.choose(m.cursor)
	case KeyEsc, "m":
		return emit(state.MenuClosed{})
	}

	return nil
}

func (m *Menu) choose(index int) tea.Cmd {
	if index < 0 || index >= len(m.items) {
		return nil
	}

	item := m.items[index]

	return emit(state.MenuClosed{}, item.Event)
}

// View renders the menu panel.
func (m *Menu) View(height int) string {
	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("Menu"))
	builder.WriteString("\n\n")

	for i, item := range m.items {
		style := m.styles.Unselected
		prefix := "  "

		if i == m.cursor {
			style = m.styles.Selected
			prefix = SelectedPrefix
		}

		builder.WriteString(style.Render(fmt.Sprintf("%s%s %s", prefix, item.Icon, item.Title)))
		builder.WriteString("\n")

		if i == m.cursor {
			builder.WriteString(m.styles.MutedText.Render("    " + item.Description))
			builder.WriteString("\n")
		}
	}

	panel := m.styles.Sidebar

	if height > 0 {
		panel = panel.Height(max(height-panel.GetVerticalFrameSize(), lipgloss.Height(builder.String())))
	}

	return panel.Render(builder.String())
}

// eventsMsg carries state events to apply in order.
type eventsMsg []state.Event

// emit wraps state events as a command.
func emit(events ...state.Event) tea.Cmd {
	return func() tea.Msg {
		return eventsMsg(events)
	}
}
