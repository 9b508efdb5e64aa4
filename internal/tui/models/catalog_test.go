// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/pokedex/internal/catalog"
	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/janderssonse/pokedex/internal/testutil"
	"github.com/janderssonse/pokedex/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func startedCatalog(t *testing.T, count int) (*Harness, *Catalog, *testutil.FakeCatalog) {
	t.Helper()

	source := testutil.NewFakeCatalog(count)
	model := NewTestCatalog(source, 100, 40)
	harness := NewHarness(model)
	harness.Init()

	require.Equal(t, state.StatusLoaded, model.State().Status)

	return harness, model, source
}

func TestCatalogInitLoadsFirstPage(t *testing.T) {
	t.Parallel()

	_, model, source := startedCatalog(t, 1302)

	st := model.State()
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, 109, st.TotalPages)
	require.Len(t, st.Records, catalog.PageSize)
	assert.Equal(t, "mon-1", st.Records[0].Name)
	assert.Equal(t, catalog.PageSize+1, source.Calls())

	view := model.View()
	assert.Contains(t, view, "Mon 1")
	assert.Contains(t, view, "Page 1 of 109")
}

func TestCatalogPagingKeys(t *testing.T) {
	t.Parallel()

	harness, model, _ := startedCatalog(t, 1302)

	harness.Send(runes("n"))
	assert.Equal(t, 2, model.State().CurrentPage)
	assert.Equal(t, "mon-13", model.State().Records[0].Name)

	harness.Send(runes("p"))
	assert.Equal(t, 1, model.State().CurrentPage)

	harness.Send(runes("p"))
	assert.Equal(t, 1, model.State().CurrentPage, "previous is disabled on the first page")

	harness.Send(runes("3"))
	assert.Equal(t, 3, model.State().CurrentPage)
	assert.Equal(t, "mon-25", model.State().Records[0].Name)
}

func TestCatalogLastPageNotReachableByButtons(t *testing.T) {
	t.Parallel()

	harness, model, _ := startedCatalog(t, 120) // ten pages

	for range 8 {
		harness.Send(runes("n"))
	}

	require.Equal(t, 9, model.State().CurrentPage)
	assert.Equal(t, []int{7, 8, 9}, catalog.PageButtons(9, 10))

	harness.Send(runes("3"))
	assert.Equal(t, 9, model.State().CurrentPage)

	harness.Send(runes("n"))
	assert.Equal(t, 10, model.State().CurrentPage)
}

func TestCatalogSearchFlow(t *testing.T) {
	t.Parallel()

	harness, model, _ := startedCatalog(t, 1302)

	harness.Send(runes("/"))
	require.True(t, model.State().SearchFocused)
	assert.True(t, model.CapturingInput())

	harness.Type("MON-25")
	assert.Equal(t, "MON-25", model.State().SearchTerm)

	harness.Key(tea.KeyEnter)

	st := model.State()
	assert.False(t, st.SearchFocused)
	require.Len(t, st.Records, 1)
	assert.Equal(t, "mon-25", st.Records[0].Name)
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, 1, st.TotalPages)
	assert.True(t, st.InSearchMode())

	harness.Send(runes("g"))
	assert.Len(t, model.State().Records, catalog.PageSize)
	assert.Empty(t, model.State().SearchTerm)
	assert.Equal(t, 109, model.State().TotalPages)
}

func TestCatalogEmptySearchDoesNotFetch(t *testing.T) {
	t.Parallel()

	harness, model, source := startedCatalog(t, 1302)
	before := model.State()
	calls := source.Calls()

	harness.Send(runes("/"))
	harness.Type("   ")
	harness.Key(tea.KeyEnter)

	assert.Equal(t, calls, source.Calls())
	assert.Equal(t, before.Records, model.State().Records)
	assert.Equal(t, before.Generation, model.State().Generation)
}

func TestCatalogSearchNotFoundSuggests(t *testing.T) {
	t.Parallel()

	harness, model, _ := startedCatalog(t, 1302)
	before := model.State().Records

	harness.Send(runes("/"))
	harness.Type("mon-1x")
	harness.Key(tea.KeyEnter)

	st := model.State()
	assert.Equal(t, before, st.Records)
	assert.Equal(t, state.StatusFailed, st.Status)
	require.NotNil(t, st.Notice)
	assert.Contains(t, st.Notice.DidYouMean, "mon-1")
	assert.Contains(t, model.View(), "Did you mean")
}

func TestCatalogStaleResultIsDropped(t *testing.T) {
	t.Parallel()

	harness, model, _ := startedCatalog(t, 1302)

	// Issue two page loads without running them.
	slow := harness.Update(runes("n"))
	fast := harness.Update(runes("n"))

	harness.Run(fast)
	require.Equal(t, 3, model.State().CurrentPage)
	require.Equal(t, "mon-25", model.State().Records[0].Name)

	harness.Run(slow)
	assert.Equal(t, 3, model.State().CurrentPage)
	assert.Equal(t, "mon-25", model.State().Records[0].Name, "page 2 resolving late must not replace page 3")
}

func TestCatalogFailedPageKeepsRecordsAndRetries(t *testing.T) {
	t.Parallel()

	harness, model, source := startedCatalog(t, 1302)
	source.Fail[20] = true

	harness.Send(runes("n"))

	st := model.State()
	assert.Equal(t, state.StatusFailed, st.Status)
	assert.Equal(t, "mon-1", st.Records[0].Name, "previous records stay visible")
	assert.Len(t, st.Records, catalog.PageSize)
	assert.Equal(t, 1, st.CurrentPage, "pager stays on the page whose records are shown")

	view := model.View()
	assert.Contains(t, view, "Could not reach the Pokémon API")
	assert.Contains(t, view, "Page 1 of 109")
	assert.Contains(t, view, "#001")
	assert.NotContains(t, view, "#013")

	delete(source.Fail, 20)
	harness.Send(runes("r"))

	assert.Equal(t, state.StatusLoaded, model.State().Status)
	assert.Equal(t, "mon-13", model.State().Records[0].Name)
	assert.Equal(t, 2, model.State().CurrentPage)
	assert.Contains(t, model.View(), "#013")
}

func TestCatalogNextAfterFailedPageRequestsItAgain(t *testing.T) {
	t.Parallel()

	harness, model, source := startedCatalog(t, 1302)
	source.Fail[20] = true

	harness.Send(runes("n"))
	require.Equal(t, state.StatusFailed, model.State().Status)

	delete(source.Fail, 20)
	harness.Send(runes("n"))

	st := model.State()
	assert.Equal(t, state.StatusLoaded, st.Status)
	assert.Equal(t, 2, st.CurrentPage)
	assert.Equal(t, "mon-13", st.Records[0].Name)
}

func TestCatalogDetailOverlay(t *testing.T) {
	t.Parallel()

	harness, model, _ := startedCatalog(t, 1302)

	harness.Send(runes("l"))
	harness.Key(tea.KeyEnter)

	st := model.State()
	require.NotNil(t, st.Selected)
	assert.Equal(t, "mon-2", st.Selected.Name)

	view := model.View()
	assert.Contains(t, view, "Base stats")
	assert.Contains(t, view, "Height: "+testutil.RecordFor(2).HeightMetres()+" m")
	assert.Contains(t, view, "https://img.example/2.png")

	harness.Key(tea.KeyEsc)
	assert.Nil(t, model.State().Selected)
}

func TestCatalogMenuActions(t *testing.T) {
	t.Parallel()

	harness, model, _ := startedCatalog(t, 1302)
	harness.Send(runes("n"))

	harness.Send(runes("m"))
	require.True(t, model.State().MenuOpen)
	assert.Contains(t, model.View(), "Favorites")

	// Types is a placeholder.
	harness.Send(runes("j"))
	harness.Send(runes("j"))
	harness.Key(tea.KeyEnter)

	st := model.State()
	assert.False(t, st.MenuOpen)
	require.NotNil(t, st.Notice)
	assert.Equal(t, "Types: coming soon", st.Notice.Message)
	assert.Equal(t, 2, st.CurrentPage, "placeholders do not reload")

	// Home resets to page one.
	harness.Send(runes("m"))
	harness.Send(runes("k"))
	harness.Send(runes("k"))
	harness.Key(tea.KeyEnter)

	assert.Equal(t, 1, model.State().CurrentPage)
	assert.Equal(t, "mon-1", model.State().Records[0].Name)
}

func TestCatalogHelpNavigates(t *testing.T) {
	t.Parallel()

	_, model, _ := startedCatalog(t, 24)

	_, cmd := model.Update(runes("?"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Screen: HelpScreen}, cmd())
}

func TestCatalogCursorMovesByRow(t *testing.T) {
	t.Parallel()

	harness, model, _ := startedCatalog(t, 1302)
	cols := model.columns()

	harness.Send(runes("j"))
	assert.Equal(t, cols, model.State().Cursor)

	harness.Send(runes("k"))
	assert.Equal(t, 0, model.State().Cursor)
}

func TestCatalogRecordsMatchSource(t *testing.T) {
	t.Parallel()

	_, model, _ := startedCatalog(t, 30)

	for i, rec := range model.State().Records {
		assert.Equal(t, testutil.RecordFor(i+1), rec)
	}

	assert.IsType(t, domain.Record{}, model.State().Records[0])
}
