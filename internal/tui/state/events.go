// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package state

import "github.com/janderssonse/pokedex/internal/domain"

// Event is an input to Reduce.
type Event interface {
	event()
}

// Mounted starts the first load.
type Mounted struct{}

// PageRequested asks for a specific page.
type PageRequested struct{ Page int }

// PrevPage steps one page back.
type PrevPage struct{}

// NextPage steps one page forward.
type NextPage struct{}

// SearchEdited replaces the search input text.
type SearchEdited struct{ Term string }

// SearchSubmitted looks up the current search term.
type SearchSubmitted struct{}

// SearchFocusChanged tracks whether the search box has focus.
type SearchFocusChanged struct{ Focused bool }

// PageLoaded delivers a loaded page.
type PageLoaded struct {
	Gen        uint64
	Page       int
	Records    []domain.Record
	TotalPages int
}

// SearchResolved delivers the single search result.
type SearchResolved struct {
	Gen    uint64
	Record domain.Record
}

// LoadFailed reports a failed page load or search.
type LoadFailed struct {
	Gen         uint64
	Err         error
	Suggestions []string
}

// RecordSelected opens the detail view for Records[Index].
type RecordSelected struct{ Index int }

// FocusedSelected opens the detail view for the record under the cursor.
type FocusedSelected struct{}

// DetailClosed closes the detail view.
type DetailClosed struct{}

// MenuToggled opens or closes the side menu.
type MenuToggled struct{}

// MenuClosed closes the side menu.
type MenuClosed struct{}

// CatalogReset clears the search and goes back to page one.
type CatalogReset struct{}

// Retry repeats the latest load.
type Retry struct{}

// CursorMoved moves the grid cursor by Delta cells.
type CursorMoved struct{ Delta int }

// NoticeShown displays an informational notice.
type NoticeShown struct{ Message string }

// NoticeDismissed clears the notice.
type NoticeDismissed struct{}

func (Mounted) event()            {}
func (PageRequested) event()      {}
func (PrevPage) event()           {}
func (NextPage) event()           {}
func (SearchEdited) event()       {}
func (SearchSubmitted) event()    {}
func (SearchFocusChanged) event() {}
func (PageLoaded) event()         {}
func (SearchResolved) event()     {}
func (LoadFailed) event()         {}
func (RecordSelected) event()     {}
func (FocusedSelected) event()    {}
func (DetailClosed) event()       {}
func (MenuToggled) event()        {}
func (MenuClosed) event()         {}
func (CatalogReset) event()       {}
func (Retry) event()              {}
func (CursorMoved) event()        {}
func (NoticeShown) event()        {}
func (NoticeDismissed) event()    {}

// Effect is work Reduce asks the caller to perform.
type Effect interface {
	effect()
}

// LoadPageEffect loads Page under generation Gen.
type LoadPageEffect struct {
	Page int
	Gen  uint64
}

// SearchEffect searches Term under generation Gen.
type SearchEffect struct {
	Term string
	Gen  uint64
}

// ScrollTopEffect scrolls the grid back to the first row.
type ScrollTopEffect struct{}

func (LoadPageEffect) effect()  {}
func (SearchEffect) effect()    {}
func (ScrollTopEffect) effect() {}
