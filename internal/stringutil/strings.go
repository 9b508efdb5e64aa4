// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string matching helpers.
package stringutil

import "strings"

// ContainsAnyIgnoreCase reports whether text contains any of substrings,
// ignoring case. Empty substrings never match.
func ContainsAnyIgnoreCase(text string, substrings []string) bool {
	lower := strings.ToLower(text)

	for _, substr := range substrings {
		if substr != "" && strings.Contains(lower, strings.ToLower(substr)) {
			return true
		}
	}

	return false
}
