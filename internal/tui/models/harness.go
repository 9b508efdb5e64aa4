// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a model programmatically for tests. Commands returned by
// the model are executed synchronously and their messages fed back in.
// Timer-driven animation messages are dropped so the loop terminates.
type Harness struct {
	model tea.Model
}

// NewHarness creates a harness for model.
func NewHarness(model tea.Model) *Harness {
	return &Harness{model: model}
}

// Init runs the model's Init command.
func (h *Harness) Init() {
	h.run(h.model.Init())
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	h.model = mdl
	h.run(cmd)
}

// Update routes a message through the model and returns the resulting
// command without running it.
func (h *Harness) Update(msg tea.Msg) tea.Cmd {
	mdl, cmd := h.model.Update(msg)
	h.model = mdl

	return cmd
}

// Type sends each rune of s as a key press.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Key sends a special key such as tea.KeyEnter.
func (h *Harness) Key(k tea.KeyType) {
	h.Send(tea.KeyMsg{Type: k})
}

// View returns the current view string.
func (h *Harness) View() string {
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() tea.Model {
	return h.model
}

// Run executes cmd and feeds every resulting message back into the model.
func (h *Harness) Run(cmd tea.Cmd) {
	h.run(cmd)
}

func (h *Harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case spinner.TickMsg:
		return
	default:
		h.Send(msg)
	}
}
