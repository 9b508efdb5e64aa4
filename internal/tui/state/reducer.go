// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package state

import (
	"strings"

	"github.com/janderssonse/pokedex/internal/domain"
)

// Reduce applies ev to s and returns the next state plus any effects.
// Events that do not apply leave s unchanged and return no effects.
func Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Mounted:
		return startPageLoad(s, s.CurrentPage)

	case PageRequested:
		return requestPage(s, ev.Page)

	case PrevPage:
		return requestPage(s, s.CurrentPage-1)

	case NextPage:
		return requestPage(s, s.CurrentPage+1)

	case SearchEdited:
		s.SearchTerm = ev.Term

		return s, nil

	case SearchSubmitted:
		term := strings.TrimSpace(s.SearchTerm)
		if term == "" {
			return s, nil
		}

		return startSearch(s, term)

	case SearchFocusChanged:
		s.SearchFocused = ev.Focused

		return s, nil

	case PageLoaded:
		if ev.Gen != s.Generation {
			return s, nil
		}

		s.Records = ev.Records
		s.CurrentPage = ev.Page
		s.ShownPage = ev.Page
		s.TotalPages = max(ev.TotalPages, 1)
		s.Status = StatusLoaded
		s.Notice = nil
		s.Cursor = 0

		return s, nil

	case SearchResolved:
		if ev.Gen != s.Generation {
			return s, nil
		}

		s.Records = []domain.Record{ev.Record}
		s.CurrentPage = 1
		s.ShownPage = 1
		s.TotalPages = 1
		s.Status = StatusLoaded
		s.Notice = nil
		s.Cursor = 0

		return s, nil

	case LoadFailed:
		if ev.Gen != s.Generation {
			return s, nil
		}

		if s.ShownPage > 0 {
			s.CurrentPage = s.ShownPage
		}

		s.Status = StatusFailed
		s.Notice = failureNotice(s.LastRequest, ev)

		return s, nil

	case RecordSelected:
		return selectRecord(s, ev.Index)

	case FocusedSelected:
		return selectRecord(s, s.Cursor)

	case DetailClosed:
		s.Selected = nil

		return s, nil

	case MenuToggled:
		s.MenuOpen = !s.MenuOpen

		return s, nil

	case MenuClosed:
		s.MenuOpen = false

		return s, nil

	case CatalogReset:
		s.SearchTerm = ""
		s.Selected = nil
		s.MenuOpen = false
		s.CurrentPage = 1

		next, effects := startPageLoad(s, 1)

		return next, append(effects, ScrollTopEffect{})

	case Retry:
		switch s.LastRequest.Kind {
		case RequestPage:
			return startPageLoad(s, s.LastRequest.Page)
		case RequestSearch:
			return startSearch(s, s.LastRequest.Term)
		default:
			return startPageLoad(s, s.CurrentPage)
		}

	case CursorMoved:
		if len(s.Records) == 0 {
			return s, nil
		}

		s.Cursor = min(max(s.Cursor+ev.Delta, 0), len(s.Records)-1)

		return s, nil

	case NoticeShown:
		s.Notice = &Notice{Level: NoticeInfo, Message: ev.Message}

		return s, nil

	case NoticeDismissed:
		s.Notice = nil

		return s, nil
	}

	return s, nil
}

func requestPage(s State, page int) (State, []Effect) {
	if page < 1 || page > s.TotalPages || page == s.CurrentPage {
		return s, nil
	}

	s.CurrentPage = page

	next, effects := startPageLoad(s, page)

	return next, append(effects, ScrollTopEffect{})
}

func startPageLoad(s State, page int) (State, []Effect) {
	s.Generation++
	s.Status = StatusLoading
	s.LastRequest = Request{Kind: RequestPage, Page: page}

	return s, []Effect{LoadPageEffect{Page: page, Gen: s.Generation}}
}

func startSearch(s State, term string) (State, []Effect) {
	s.Generation++
	s.Status = StatusLoading
	s.LastRequest = Request{Kind: RequestSearch, Term: term}

	return s, []Effect{SearchEffect{Term: term, Gen: s.Generation}}
}

func selectRecord(s State, index int) (State, []Effect) {
	if index < 0 || index >= len(s.Records) {
		return s, nil
	}

	rec := s.Records[index]
	s.Selected = &rec
	s.Cursor = index

	return s, nil
}

func failureNotice(req Request, ev LoadFailed) *Notice {
	key := ""
	if req.Kind == RequestSearch {
		key = req.Term
	}

	info := domain.GetErrorInfo(ev.Err, key, false)

	notice := &Notice{
		Level:      NoticeError,
		Message:    info.Message,
		DidYouMean: ev.Suggestions,
	}

	if len(info.Suggestions) > 0 {
		notice.Hint = info.Suggestions[0]
	}

	return notice
}
