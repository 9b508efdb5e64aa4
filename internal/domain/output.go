// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// OutputPort presents command results. Adapters implement it per format.
type OutputPort interface {
	// Success outputs a success message with optional structured data
	Success(message string, data any) error

	// Error outputs an error message
	Error(message string) error

	// Info outputs an informational message
	Info(message string) error

	// Table outputs tabular data
	Table(headers []string, rows [][]string) error

	// Page outputs one catalog page
	Page(result PageResult) error

	// Record outputs a single record in detail
	Record(record Record) error

	// IsQuiet returns true if output should be suppressed
	IsQuiet() bool
}

// PageResult is the structured form of a loaded page for machine output.
type PageResult struct {
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
	Offset     int      `json:"offset"`
	Records    []Record `json:"records"`
}
