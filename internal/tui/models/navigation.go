// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models defines shared navigation messages between UI screens.
package models

// NavigateMsg is a message sent to request navigation to a specific screen.
type NavigateMsg struct {
	Screen int
}

// Screen constants for navigation.
const (
	CatalogScreen = iota
	HelpScreen
)

// Key constants for common key inputs.
const (
	KeyCtrlC = "ctrl+c"
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// UI constants shared by screens.
const (
	SelectedPrefix = "❯ "
	GoodbyeMessage = "Goodbye!\n"
)

// InputCapturer is implemented by screens that may be consuming raw text,
// during which single-letter global shortcuts must not fire.
type InputCapturer interface {
	CapturingInput() bool
}
