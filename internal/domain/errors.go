// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/janderssonse/pokedex/internal/stringutil"
)

// Common domain errors.
var (
	ErrNotFound       = errors.New("not found")
	ErrNetworkFailure = errors.New("network failure")
	ErrEmptySearch    = errors.New("empty search term")
	ErrInvalidPage    = errors.New("invalid page")
)

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

var networkPatterns = []string{"connection", "timeout", "no such host", "deadline"}

type errorMatcher struct {
	target  error
	getInfo func(key string, verbose bool) ErrorInfo
}

// getErrorMatchers returns sentinel errors and their corresponding info.
// Order matters: the first matching sentinel wins.
func getErrorMatchers() []errorMatcher {
	return []errorMatcher{
		{
			target: ErrNotFound,
			getInfo: func(key string, verbose bool) ErrorInfo {
				if key != "" {
					return ErrorInfo{
						Message:     fmt.Sprintf("No Pokémon named '%s'", key),
						Suggestions: []string{"Check the spelling", "Names use hyphens, e.g. mr-mime"},
						ShowDetails: verbose,
					}
				}

				return ErrorInfo{
					Message:     "Pokémon not found",
					Suggestions: []string{"Try an earlier page"},
					ShowDetails: verbose,
				}
			},
		},
		{
			target: ErrNetworkFailure,
			getInfo: func(_ string, verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Could not reach the Pokémon API",
					Suggestions: []string{"Check your internet connection", "Try again in a few moments"},
					ShowDetails: verbose,
				}
			},
		},
		{
			target: ErrEmptySearch,
			getInfo: func(_ string, verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Nothing to search for",
					Suggestions: []string{"Type a name or a Pokédex number"},
					ShowDetails: verbose,
				}
			},
		},
		{
			target: ErrInvalidPage,
			getInfo: func(_ string, verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Page out of range",
					Suggestions: []string{"Pages start at 1"},
					ShowDetails: verbose,
				}
			},
		},
	}
}

// GetErrorInfo analyzes an error and returns user-friendly information.
// key is the search term or page the failed operation was about, if any.
func GetErrorInfo(err error, key string, verbose bool) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	for _, matcher := range getErrorMatchers() {
		if errors.Is(err, matcher.target) {
			return matcher.getInfo(key, verbose)
		}
	}

	// Unwrapped errors from elsewhere still get a best-effort classification.
	if stringutil.ContainsAnyIgnoreCase(err.Error(), networkPatterns) {
		return GetErrorInfo(ErrNetworkFailure, key, verbose)
	}

	return ErrorInfo{
		Message:     "Operation failed",
		Suggestions: []string{"Run with --verbose for more details"},
		ShowDetails: verbose,
	}
}

// FormatErrorMessage formats an error for display.
func FormatErrorMessage(err error, key string, verbose bool) string {
	info := GetErrorInfo(err, key, verbose)

	var result strings.Builder

	result.WriteString("✗ ")
	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	switch {
	case len(info.Suggestions) == 0:
	case !verbose:
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	default:
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}
