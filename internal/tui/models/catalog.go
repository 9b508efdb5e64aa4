// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/pokedex/internal/catalog"
	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/janderssonse/pokedex/internal/tui/state"
	"github.com/janderssonse/pokedex/internal/tui/styles"
	"go.uber.org/zap"
)

// suggestionLimit caps "did you mean" hints after a failed search.
const suggestionLimit = 3

// CatalogLoader is what the catalog screen needs from the loader.
type CatalogLoader interface {
	LoadPage(ctx context.Context, page int) (catalog.Page, error)
	SearchByKey(ctx context.Context, term string) (domain.Record, error)
	Suggest(term string, limit int) []string
}

// Catalog is the main screen: search box, card grid, pagination and the
// detail and menu overlays. All view state lives in st and changes only
// through state.Reduce.
//
//nolint:containedctx // TUI models require context for proper cancellation propagation
type Catalog struct {
	ctx    context.Context
	loader CatalogLoader
	logger *zap.Logger
	styles *styles.Styles
	keys   CatalogKeyMap

	st state.State

	search  textinput.Model
	spin    spinner.Model
	grid    viewport.Model
	detail  viewport.Model
	statBar progress.Model
	pager   paginator.Model
	menu    *Menu

	width  int
	height int
}

// NewCatalog creates the catalog screen. Nothing is fetched until Init.
func NewCatalog(ctx context.Context, loader CatalogLoader, logger *zap.Logger, styleConfig *styles.Styles) *Catalog {
	if ctx == nil {
		ctx = context.Background()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	search := textinput.New()
	search.Placeholder = "Search Pokémon by name or number"
	search.Prompt = "🔍 "
	search.CharLimit = 64
	search.Width = 36
	search.Cursor.SetMode(cursor.CursorStatic)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleConfig.PrimaryText

	statBar := progress.New(
		progress.WithSolidFill(string(styleConfig.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(statBarWidth),
	)

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.ArabicFormat = "Page %d of %d"

	return &Catalog{
		ctx:     ctx,
		loader:  loader,
		logger:  logger,
		styles:  styleConfig,
		keys:    DefaultCatalogKeyMap(),
		st:      state.New(),
		search:  search,
		spin:    spin,
		grid:    viewport.New(0, 0),
		detail:  viewport.New(0, 0),
		statBar: statBar,
		pager:   pager,
		menu:    NewMenu(styleConfig),
	}
}

// State returns the current view state.
func (m *Catalog) State() state.State {
	return m.st
}

// CapturingInput reports whether keystrokes go to the search box.
func (m *Catalog) CapturingInput() bool {
	return m.st.SearchFocused
}

// Init starts the first page load.
func (m *Catalog) Init() tea.Cmd {
	return m.dispatch(state.Mounted{})
}

// Update handles messages for the Catalog model.
func (m *Catalog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

		return m, nil

	case state.Event:
		return m, m.dispatch(msg)

	case eventsMsg:
		return m, m.dispatch(msg...)

	case spinner.TickMsg:
		if !m.st.Loading() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spin, cmd = m.spin.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	}

	return m, nil
}

// dispatch feeds events through the reducer and turns the resulting
// effects into commands.
func (m *Catalog) dispatch(events ...state.Event) tea.Cmd {
	var cmds []tea.Cmd

	for _, ev := range events {
		if gen, ok := resultGeneration(ev); ok && gen != m.st.Generation {
			m.logger.Debug("dropping stale result",
				zap.Uint64("generation", gen),
				zap.Uint64("current", m.st.Generation))

			continue
		}

		wasLoading := m.st.Loading()
		prevSelected := m.st.Selected

		var effects []state.Effect

		m.st, effects = state.Reduce(m.st, ev)

		for _, eff := range effects {
			if cmd := m.runEffect(eff); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

		if !wasLoading && m.st.Loading() {
			cmds = append(cmds, m.spin.Tick)
		}

		if m.st.Selected != prevSelected {
			m.refreshDetail()
		}
	}

	m.syncWidgets()

	return tea.Batch(cmds...)
}

// runEffect performs an effect. Loads run off the event loop and report
// back as state events carrying the generation they were issued under.
func (m *Catalog) runEffect(eff state.Effect) tea.Cmd {
	switch eff := eff.(type) {
	case state.LoadPageEffect:
		ctx, loader := m.ctx, m.loader

		return func() tea.Msg {
			page, err := loader.LoadPage(ctx, eff.Page)
			if err != nil {
				return state.LoadFailed{Gen: eff.Gen, Err: err}
			}

			return state.PageLoaded{
				Gen:        eff.Gen,
				Page:       page.Number,
				Records:    page.Records,
				TotalPages: page.TotalPages,
			}
		}

	case state.SearchEffect:
		ctx, loader := m.ctx, m.loader

		return func() tea.Msg {
			rec, err := loader.SearchByKey(ctx, eff.Term)
			if err != nil {
				var hints []string
				if errors.Is(err, domain.ErrNotFound) {
					hints = loader.Suggest(eff.Term, suggestionLimit)
				}

				return state.LoadFailed{Gen: eff.Gen, Err: err, Suggestions: hints}
			}

			return state.SearchResolved{Gen: eff.Gen, Record: rec}
		}

	case state.ScrollTopEffect:
		m.grid.GotoTop()
	}

	return nil
}

func resultGeneration(ev state.Event) (uint64, bool) {
	switch ev := ev.(type) {
	case state.PageLoaded:
		return ev.Gen, true
	case state.SearchResolved:
		return ev.Gen, true
	case state.LoadFailed:
		return ev.Gen, true
	default:
		return 0, false
	}
}

func (m *Catalog) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.st.SearchFocused:
		return m.handleSearchKey(msg)
	case m.st.Selected != nil:
		return m.handleDetailKey(msg)
	case m.st.MenuOpen:
		return m.menu.Update(msg)
	default:
		return m.handleGridKey(msg)
	}
}

func (m *Catalog) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case KeyEnter:
		m.search.Blur()

		return m.dispatch(state.SearchFocusChanged{Focused: false}, state.SearchSubmitted{})
	case KeyEsc:
		m.search.Blur()

		return m.dispatch(state.SearchFocusChanged{Focused: false})
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)

	return tea.Batch(cmd, m.dispatch(state.SearchEdited{Term: m.search.Value()}))
}

func (m *Catalog) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Open):
		return m.dispatch(state.DetailClosed{})
	case key.Matches(msg, m.keys.Help):
		return navigate(HelpScreen)
	}

	var cmd tea.Cmd

	m.detail, cmd = m.detail.Update(msg)

	return cmd
}

func (m *Catalog) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Search):
		focusCmd := m.search.Focus()

		return tea.Batch(focusCmd, m.dispatch(state.SearchFocusChanged{Focused: true}))
	case key.Matches(msg, m.keys.Up):
		return m.dispatch(state.CursorMoved{Delta: -cols})
	case key.Matches(msg, m.keys.Down):
		return m.dispatch(state.CursorMoved{Delta: cols})
	case key.Matches(msg, m.keys.Left):
		return m.dispatch(state.CursorMoved{Delta: -1})
	case key.Matches(msg, m.keys.Right):
		return m.dispatch(state.CursorMoved{Delta: 1})
	case key.Matches(msg, m.keys.Open):
		return m.dispatch(state.FocusedSelected{})
	case key.Matches(msg, m.keys.PrevPage):
		return m.dispatch(state.PrevPage{})
	case key.Matches(msg, m.keys.NextPage):
		return m.dispatch(state.NextPage{})
	case key.Matches(msg, m.keys.Button1):
		return m.pressButton(0)
	case key.Matches(msg, m.keys.Button2):
		return m.pressButton(1)
	case key.Matches(msg, m.keys.Button3):
		return m.pressButton(2)
	case key.Matches(msg, m.keys.Menu):
		return m.dispatch(state.MenuToggled{})
	case key.Matches(msg, m.keys.Home):
		return m.dispatch(state.CatalogReset{})
	case key.Matches(msg, m.keys.Retry):
		return m.dispatch(state.Retry{})
	case key.Matches(msg, m.keys.Back):
		return m.dispatch(state.NoticeDismissed{})
	case key.Matches(msg, m.keys.Help):
		return navigate(HelpScreen)
	}

	return nil
}

// pressButton activates the numbered page button at position i.
func (m *Catalog) pressButton(i int) tea.Cmd {
	buttons := catalog.PageButtons(m.st.CurrentPage, m.st.TotalPages)
	if i >= len(buttons) {
		return nil
	}

	return m.dispatch(state.PageRequested{Page: buttons[i]})
}

// syncWidgets brings the bubbles in line with the reduced state.
func (m *Catalog) syncWidgets() {
	if m.search.Value() != m.st.SearchTerm {
		m.search.SetValue(m.st.SearchTerm)
	}

	m.pager.TotalPages = m.st.TotalPages
	m.pager.Page = m.st.CurrentPage - 1

	m.grid.SetContent(m.renderGrid())
	m.ensureCursorVisible()
}

func navigate(screen int) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen}
	}
}
