// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/pokedex/internal/tui/styles"
)

// HelpSection represents a help documentation section.
type HelpSection struct {
	Title   string
	Content string
}

// Help represents the help screen model.
type Help struct {
	styles         *styles.Styles
	width          int
	height         int
	sections       []HelpSection
	viewport       viewport.Model
	renderer       *glamour.TermRenderer
	currentSection int
	keyMap         HelpKeyMap
}

// HelpKeyMap defines key bindings for the help screen.
type HelpKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding
	Back  key.Binding
}

// DefaultHelpKeyMap returns the default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous section"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next section"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Back: key.NewBinding(
			key.WithKeys(KeyEsc, "?"),
			key.WithHelp("esc", "back"),
		),
	}
}

func defaultHelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Keys",
			Content: `# Browsing the Pokédex

| Key | Action |
|-----|--------|
| ` + "`/`" + ` | Focus the search box |
| ` + "`enter`" + ` | Search, or open the focused card |
| ` + "`esc`" + ` | Leave search, close details or the menu |
| ` + "`←↑↓→` / `hjkl`" + ` | Move between cards |
| ` + "`n` / `p`" + ` | Next and previous page |
| ` + "`1` `2` `3`" + ` | Jump to a numbered page button |
| ` + "`m`" + ` | Toggle the side menu |
| ` + "`g`" + ` | Home: clear search, back to page 1 |
| ` + "`r`" + ` | Retry the last failed load |
| ` + "`q`" + ` | Quit |
`,
		},
		{
			Title: "Search",
			Content: `# Searching

Type a name (` + "`pikachu`" + `) or a Pokédex number (` + "`25`" + `) and
press **enter**. Names are matched exactly and case does not matter.

A match replaces the grid with a single card. Press ` + "`g`" + ` to get back to the
full catalog.

When nothing matches, the Pokédex suggests similar names it has
already seen in this session.
`,
		},
		{
			Title: "Command line",
			Content: `# Command line

` + "```" + `bash
pokedex page --page 3          # print a page as a table
pokedex page --page 3 --json   # ...or as JSON
pokedex show pikachu           # details for one Pokémon
pokedex config init            # write a default config file
` + "```" + `

Settings live in ` + "`$XDG_CONFIG_HOME/pokedex/config.toml`" + ` and can be
overridden with ` + "`POKEDEX_*`" + ` environment variables.
`,
		},
	}
}

// NewHelp creates a new help model.
func NewHelp(styleConfig *styles.Styles) *Help {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer, _ = glamour.NewTermRenderer()
	}

	viewPort := viewport.New(80, 20)
	viewPort.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleConfig.Primary).
		Padding(0, 1)

	helpModel := &Help{
		styles:   styleConfig,
		sections: defaultHelpSections(),
		viewport: viewPort,
		renderer: renderer,
		keyMap:   DefaultHelpKeyMap(),
	}

	helpModel.updateContent()

	return helpModel
}

// Init initializes the help model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Help model.
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	}

	return m, nil
}

// View renders the help screen.
func (m *Help) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// CurrentSection returns the index of the visible section.
func (m *Help) CurrentSection() int {
	return m.currentSection
}

func (m *Help) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		return m, navigate(CatalogScreen)
	case key.Matches(msg, m.keyMap.Left):
		m.moveSection(-1)

		return m, nil
	case key.Matches(msg, m.keyMap.Right):
		m.moveSection(1)

		return m, nil
	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()

		return m, nil
	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()

		return m, nil
	default:
		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}
}

func (m *Help) moveSection(direction int) {
	next := m.currentSection + direction
	if next >= 0 && next < len(m.sections) {
		m.currentSection = next
		m.updateContent()
	}
}

func (m *Help) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	verticalMargins := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())

	m.viewport.Width = msg.Width
	m.viewport.Height = max(msg.Height-verticalMargins, 1)

	m.updateContent()

	return m, nil
}

func (m *Help) renderHeader() string {
	tabs := make([]string, 0, len(m.sections))

	for i, section := range m.sections {
		style := m.styles.Unselected.MarginRight(1).Faint(true)
		if i == m.currentSection {
			style = m.styles.Selected.MarginRight(1)
		}

		tabs = append(tabs, style.Render(section.Title))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("❓ Help"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m *Help) renderFooter() string {
	keybindings := []string{
		m.styles.Keybinding("↑↓/jk", "scroll"),
		m.styles.Keybinding("←→/hl", "sections"),
		m.styles.Keybinding("g/G", "top/bottom"),
		m.styles.Keybinding("esc", "back"),
		m.styles.Keybinding("q", "quit"),
	}

	return m.styles.Footer.Render(strings.Join(keybindings, "  "))
}

// updateContent renders the current section and loads it into the viewport.
func (m *Help) updateContent() {
	if m.currentSection >= len(m.sections) {
		return
	}

	section := m.sections[m.currentSection]

	rendered, err := m.renderer.Render(section.Content)
	if err != nil {
		rendered = section.Content
	}

	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}
