// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog_test

import (
	"testing"

	"github.com/janderssonse/pokedex/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, catalog.Offset(1))
	assert.Equal(t, 12, catalog.Offset(2))
	assert.Equal(t, 24, catalog.Offset(3))
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := map[int]int{
		0:    1,
		1:    1,
		12:   1,
		13:   2,
		24:   2,
		1302: 109,
	}

	for count, want := range tests {
		assert.Equal(t, want, catalog.TotalPages(count), "count %d", count)
	}
}

func TestPageButtons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"single page", 1, 1, []int{1}},
		{"two pages", 2, 2, []int{1, 2}},
		{"three pages", 3, 3, []int{1, 2, 3}},
		{"start of ten", 1, 10, []int{1, 2, 3}},
		{"second of ten", 2, 10, []int{1, 2, 3}},
		{"third of ten", 3, 10, []int{1, 2, 3}},
		{"middle of ten", 5, 10, []int{3, 4, 5}},
		{"entering tail window", 7, 10, []int{7, 8, 9}},
		{"near end of ten omits last page", 9, 10, []int{7, 8, 9}},
		{"last of ten omits last page", 10, 10, []int{7, 8, 9}},
		{"four pages at end", 4, 4, []int{1, 2, 3}},
		{"four pages at start", 1, 4, []int{1, 2, 3}},
		{"tail window boundary", 6, 9, []int{6, 7, 8}},
		{"just before tail window", 6, 10, []int{4, 5, 6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, catalog.PageButtons(tc.current, tc.total))
		})
	}
}

func TestPageButtonsWindowSize(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 20; total++ {
		for current := 1; current <= total; current++ {
			buttons := catalog.PageButtons(current, total)

			require.Len(t, buttons, min(total, 3), "current=%d total=%d", current, total)

			for i := 1; i < len(buttons); i++ {
				assert.Equal(t, buttons[i-1]+1, buttons[i], "consecutive pages")
			}

			assert.GreaterOrEqual(t, buttons[0], 1)
			assert.LessOrEqual(t, buttons[len(buttons)-1], total)
		}
	}
}

func TestPrevNextEnablement(t *testing.T) {
	t.Parallel()

	assert.False(t, catalog.CanPrev(1))
	assert.True(t, catalog.CanPrev(2))
	assert.True(t, catalog.CanNext(1, 2))
	assert.False(t, catalog.CanNext(2, 2))
	assert.False(t, catalog.CanNext(1, 1))
}
