// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/pokedex/internal/catalog"
	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/janderssonse/pokedex/internal/tui/state"
	"github.com/mattn/go-runewidth"
)

// Layout constants for the card grid and detail view.
const (
	cardWidth      = 24 // outer width including border
	cardHeight     = 5  // outer height including border
	maxColumns     = 4
	statBarWidth   = 24
	statLabelWidth = 16
	overlayFrame   = 8 // border plus padding of the detail overlay, both sides
)

// View renders the catalog screen.
func (m *Catalog) View() string {
	body := m.renderBody()

	if m.st.MenuOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.menu.View(lipgloss.Height(body)), body)
	}

	parts := []string{m.renderHeader()}

	if notice := m.renderNotice(); notice != "" {
		parts = append(parts, notice)
	}

	parts = append(parts, body, m.renderPagination(), m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Catalog) renderBody() string {
	if m.st.Selected != nil {
		return m.styles.Overlay.Render(m.detail.View())
	}

	if m.grid.Height <= 0 {
		return m.renderGrid()
	}

	return m.grid.View()
}

// layout sizes the viewports from the window size.
func (m *Catalog) layout() {
	chrome := lipgloss.Height(m.renderHeader()) +
		1 + // notice line
		lipgloss.Height(m.renderPagination()) +
		lipgloss.Height(m.renderFooter())

	bodyHeight := max(m.height-chrome, cardHeight)

	m.grid.Width = m.width
	m.grid.Height = bodyHeight

	m.detail.Width = max(m.width-overlayFrame, statLabelWidth+statBarWidth)
	m.detail.Height = max(bodyHeight-overlayFrame/2, 1)

	m.syncWidgets()
	m.refreshDetail()
}

func (m *Catalog) columns() int {
	if m.width <= 0 {
		return maxColumns
	}

	return min(max(m.width/cardWidth, 1), maxColumns)
}

func (m *Catalog) renderHeader() string {
	status := m.styles.StatusIcon(m.st.Status.String())
	if m.st.Loading() {
		status = m.spin.View()
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Logo(), "   ", m.search.View(), "  ", status)

	return m.styles.Header.Render(line)
}

func (m *Catalog) renderNotice() string {
	notice := m.st.Notice
	if notice == nil {
		return ""
	}

	if notice.Level == state.NoticeInfo {
		return m.styles.InfoText.Render("i " + notice.Message)
	}

	text := m.styles.ErrorText.Render("✗ " + notice.Message)

	if notice.Hint != "" {
		text += m.styles.MutedText.Render(" (" + notice.Hint + ")")
	}

	if len(notice.DidYouMean) > 0 {
		text += m.styles.InfoText.Render("  Did you mean: " + strings.Join(notice.DidYouMean, ", ") + "?")
	}

	if m.st.LastRequest.Kind != state.RequestNone {
		text += m.styles.MutedText.Render("  [r] retry")
	}

	return text
}

func (m *Catalog) renderGrid() string {
	records := m.st.Records

	if len(records) == 0 {
		switch m.st.Status {
		case state.StatusLoading:
			return m.styles.MutedText.Render("Loading Pokémon…")
		case state.StatusFailed:
			return m.styles.MutedText.Render("No Pokémon to show.")
		default:
			return ""
		}
	}

	cols := m.columns()
	rows := make([]string, 0, (len(records)+cols-1)/cols)

	for start := 0; start < len(records); start += cols {
		end := min(start+cols, len(records))
		cards := make([]string, 0, end-start)

		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(i, records[i]))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Catalog) renderCard(i int, rec domain.Record) string {
	style := m.styles.Card
	if i == m.st.Cursor {
		style = m.styles.FocusedCard
	}

	textWidth := cardWidth - style.GetHorizontalFrameSize()

	number := ""
	if !m.st.InSearchMode() {
		number = fmt.Sprintf("#%03d", catalog.Offset(m.st.ShownPage)+i+1)
	}

	badges := make([]string, 0, len(rec.Types))
	for _, t := range rec.Types {
		badges = append(badges, m.styles.TypeBadge(t))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.MutedText.Render(number),
		m.styles.Title.Render(runewidth.Truncate(rec.DisplayName(), textWidth, "…")),
		strings.Join(badges, " "),
	)

	return style.Width(cardWidth - style.GetHorizontalBorderSize()).Render(content)
}

func (m *Catalog) ensureCursorVisible() {
	if m.grid.Height <= 0 {
		return
	}

	top := (m.st.Cursor / m.columns()) * cardHeight
	bottom := top + cardHeight

	switch {
	case top < m.grid.YOffset:
		m.grid.SetYOffset(top)
	case bottom > m.grid.YOffset+m.grid.Height:
		m.grid.SetYOffset(bottom - m.grid.Height)
	}
}

func (m *Catalog) renderPagination() string {
	current, total := m.st.CurrentPage, m.st.TotalPages

	prev := m.styles.DisabledBtn.Render("‹ Prev")
	if catalog.CanPrev(current) {
		prev = m.styles.Button.Render("‹ Prev")
	}

	next := m.styles.DisabledBtn.Render("Next ›")
	if catalog.CanNext(current, total) {
		next = m.styles.Button.Render("Next ›")
	}

	parts := []string{prev}

	for _, p := range catalog.PageButtons(current, total) {
		style := m.styles.Button
		if p == current {
			style = m.styles.ActiveBtn
		}

		parts = append(parts, style.Render(fmt.Sprintf("%d", p)))
	}

	parts = append(parts, next, "  ", m.styles.MutedText.Render(m.pager.View()))

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// refreshDetail re-renders the detail viewport for the selected record.
func (m *Catalog) refreshDetail() {
	rec := m.st.Selected
	if rec == nil {
		m.detail.SetContent("")

		return
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(rec.DisplayName()))
	b.WriteString("\n")

	if rec.ImageURL != "" {
		b.WriteString(m.styles.MutedText.Render(rec.ImageURL))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	badges := make([]string, 0, len(rec.Types))
	for _, t := range rec.Types {
		badges = append(badges, m.styles.TypeBadge(t))
	}

	b.WriteString(strings.Join(badges, " "))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtitle.Render("Base stats"))
	b.WriteString("\n")

	for _, stat := range rec.Stats {
		label := runewidth.FillRight(runewidth.Truncate(stat.Label, statLabelWidth-1, "…"), statLabelWidth)
		fmt.Fprintf(&b, "%s%s %3d\n", label, m.statBar.ViewAs(domain.StatFraction(stat.Value)), stat.Value)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Height: %s m    Weight: %s kg\n", rec.HeightMetres(), rec.WeightKilograms())

	m.detail.SetContent(b.String())
	m.detail.GotoTop()
}

func (m *Catalog) renderFooter() string {
	var bindings []key.Binding

	switch {
	case m.st.SearchFocused:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys(KeyEnter), key.WithHelp("enter", "search")),
			key.NewBinding(key.WithKeys(KeyEsc), key.WithHelp("esc", "cancel")),
		}
	case m.st.Selected != nil:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
			m.keys.Back,
		}
	case m.st.MenuOpen:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
			key.NewBinding(key.WithKeys(KeyEnter), key.WithHelp("enter", "choose")),
			m.keys.Back,
		}
	default:
		bindings = []key.Binding{
			m.keys.Search, m.keys.Open, m.keys.PrevPage, m.keys.NextPage,
			m.keys.Button3, m.keys.Menu, m.keys.Home,
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		}
	}

	return RenderFooter(m.styles, m.width, bindings, !m.st.SearchFocused)
}
