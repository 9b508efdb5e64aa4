// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui hosts the interactive Pokédex browser.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/pokedex/internal/tui/models"
	"github.com/janderssonse/pokedex/internal/tui/styles"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Screen represents different TUI screens.
type Screen int

// Screens, mirroring the models constants.
const (
	CatalogScreen Screen = Screen(models.CatalogScreen)
	HelpScreen    Screen = Screen(models.HelpScreen)
)

// helpPreloadedMsg is sent when help content has been pre-rendered.
type helpPreloadedMsg struct {
	model tea.Model
}

// App is the root model. It owns the screens, routes navigation and
// handles the keys that work everywhere.
type App struct {
	width         int
	height        int
	styles        *styles.Styles
	logger        *zap.Logger
	currentScreen Screen
	contentModel  tea.Model
	models        map[Screen]tea.Model
	quitting      bool
}

// NewApp creates the application showing the catalog screen.
func NewApp(ctx context.Context, loader models.CatalogLoader, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	styleConfig := styles.New()
	catalogModel := models.NewCatalog(ctx, loader, logger, styleConfig)

	return &App{
		styles:        styleConfig,
		logger:        logger,
		currentScreen: CatalogScreen,
		contentModel:  catalogModel,
		models:        map[Screen]tea.Model{CatalogScreen: catalogModel},
	}
}

// Run starts the TUI application with the provided context.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	styleConfig := a.styles

	preloadCmd := func() tea.Msg {
		return helpPreloadedMsg{model: models.NewHelp(styleConfig)}
	}

	return tea.Batch(a.contentModel.Init(), preloadCmd)
}

// Update implements the tea.Model interface with global navigation handling.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case helpPreloadedMsg:
		if _, exists := a.models[HelpScreen]; !exists {
			a.models[HelpScreen] = msg.model
		}

		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		return a, a.resizeAll()

	case models.NavigateMsg:
		return a, a.navigateTo(Screen(msg.Screen))

	case tea.KeyMsg:
		if a.isQuitKey(msg) {
			a.quitting = true
			a.logger.Debug("quit requested")

			return a, tea.Quit
		}
	}

	// Results of background loads belong to the catalog even while help is
	// showing, so non-key messages are routed to it rather than the screen.
	if _, isKey := msg.(tea.KeyMsg); !isKey && a.currentScreen != CatalogScreen {
		catalogModel := a.models[CatalogScreen]
		updated, cmd := catalogModel.Update(msg)
		a.models[CatalogScreen] = updated

		return a, cmd
	}

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)
	a.models[a.currentScreen] = a.contentModel

	return a, cmd
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	return a.contentModel.View()
}

// CurrentScreen returns the current screen.
func (a *App) CurrentScreen() Screen {
	return a.currentScreen
}

// ContentModel returns the current content model.
//
//nolint:ireturn // screens are heterogeneous tea.Models
func (a *App) ContentModel() tea.Model {
	return a.contentModel
}

func (a *App) isQuitKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case models.KeyCtrlC:
		return true
	case "q":
		capturer, ok := a.contentModel.(models.InputCapturer)

		return !ok || !capturer.CapturingInput()
	default:
		return false
	}
}

func (a *App) navigateTo(target Screen) tea.Cmd {
	if target == a.currentScreen {
		return nil
	}

	model, exists := a.models[target]
	if !exists {
		model = a.createModelForScreen(target)
		a.models[target] = model
	}

	a.currentScreen = target
	a.contentModel = model

	if a.width <= 0 || a.height <= 0 {
		return nil
	}

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	a.models[target] = a.contentModel

	return cmd
}

//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) createModelForScreen(screen Screen) tea.Model {
	switch screen {
	case HelpScreen:
		return models.NewHelp(a.styles)
	default:
		return a.models[CatalogScreen]
	}
}

// resizeAll forwards the window size to every screen so switching back is
// already laid out.
func (a *App) resizeAll() tea.Cmd {
	size := tea.WindowSizeMsg{Width: a.width, Height: a.height}
	cmds := make([]tea.Cmd, 0, len(a.models))

	for screen, model := range a.models {
		updated, cmd := model.Update(size)
		a.models[screen] = updated
		cmds = append(cmds, cmd)
	}

	a.contentModel = a.models[a.currentScreen]

	return tea.Batch(cmds...)
}

// Launch starts the interactive browser.
func Launch(ctx context.Context, loader models.CatalogLoader, logger *zap.Logger) error {
	if !isTerminal() {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	return NewApp(ctx, loader, logger).Run(ctx)
}

// isTerminal checks if stdin and stdout are connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
