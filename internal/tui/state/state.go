// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package state holds the catalog view state and the reducer that drives it.
//
// Reduce is the only place State changes. It never performs I/O; work that
// must happen outside is returned as Effects, stamped with the generation
// that was current when it was issued. Results that come back under an
// older generation are ignored.
package state

import (
	"github.com/janderssonse/pokedex/internal/domain"
)

// Status describes the latest load.
type Status int

// Load statuses.
const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// NoticeLevel classifies a Notice.
type NoticeLevel int

// Notice levels.
const (
	NoticeInfo NoticeLevel = iota
	NoticeError
)

// Notice is a one-line message shown above the grid.
type Notice struct {
	Level   NoticeLevel
	Message string
	Hint    string
	// DidYouMean lists similar names after a failed search.
	DidYouMean []string
}

// RequestKind tells what the latest load was.
type RequestKind int

// Request kinds.
const (
	RequestNone RequestKind = iota
	RequestPage
	RequestSearch
)

// Request remembers the latest load so it can be retried.
type Request struct {
	Kind RequestKind
	Page int
	Term string
}

// State is the whole catalog view.
type State struct {
	// CurrentPage is the page being loaded or shown. ShownPage is the
	// page whose records are on screen, zero before the first load.
	CurrentPage   int
	ShownPage     int
	TotalPages    int
	Records       []domain.Record
	SearchTerm    string
	Selected      *domain.Record
	MenuOpen      bool
	SearchFocused bool
	Status        Status
	Generation    uint64
	Notice        *Notice
	Cursor        int
	LastRequest   Request
}

// New returns the state before the first load.
func New() State {
	return State{
		CurrentPage: 1,
		TotalPages:  1,
		Status:      StatusIdle,
	}
}

// Loading reports whether a load is in flight.
func (s State) Loading() bool {
	return s.Status == StatusLoading
}

// InSearchMode reports whether the grid shows a search result.
func (s State) InSearchMode() bool {
	return s.LastRequest.Kind == RequestSearch && s.Status == StatusLoaded
}

// Focused returns the record under the grid cursor.
func (s State) Focused() (domain.Record, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Records) {
		return domain.Record{}, false
	}

	return s.Records[s.Cursor], true
}
