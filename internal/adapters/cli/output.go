// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides output adapters for CLI operations.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/janderssonse/pokedex/internal/domain"
)

var (
	// ErrUnsupportedFormat is returned when an unsupported output format is requested.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// OutputFormat represents the output format type.
type OutputFormat int

const (
	// TextFormat outputs human-readable text.
	TextFormat OutputFormat = iota
	// JSONFormat outputs machine-readable JSON.
	JSONFormat
)

// OutputAdapter implements domain.OutputPort for CLI output.
type OutputAdapter struct {
	writer io.Writer
	format OutputFormat
	quiet  bool
}

// NewOutputAdapterWithWriter creates an adapter writing to writer.
func NewOutputAdapterWithWriter(writer io.Writer, format OutputFormat, quiet bool) *OutputAdapter {
	return &OutputAdapter{
		writer: writer,
		format: format,
		quiet:  quiet,
	}
}

// Success outputs a success message with optional structured data.
func (o *OutputAdapter) Success(message string, data any) error {
	if o.format == JSONFormat && data != nil {
		return o.outputJSON(data)
	}

	if message != "" && !o.quiet {
		_, _ = fmt.Fprintln(o.writer, message)
	}

	return nil
}

// Error outputs an error message. Errors are shown even in quiet mode.
func (o *OutputAdapter) Error(message string) error {
	if o.format == JSONFormat {
		return o.outputJSON(map[string]string{"error": message})
	}

	_, _ = fmt.Fprintln(o.writer, message)

	return nil
}

// Info outputs an informational message.
func (o *OutputAdapter) Info(message string) error {
	if o.quiet {
		return nil
	}

	if o.format == JSONFormat {
		return o.outputJSON(map[string]string{"info": message})
	}

	_, _ = fmt.Fprintln(o.writer, message)

	return nil
}

// Table outputs tabular data.
func (o *OutputAdapter) Table(headers []string, rows [][]string) error {
	if o.format == JSONFormat {
		return o.outputJSON(map[string]any{
			"headers": headers,
			"rows":    rows,
		})
	}

	w := tabwriter.NewWriter(o.writer, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))

	separators := make([]string, len(headers))
	for i := range headers {
		separators[i] = strings.Repeat("-", len(headers[i]))
	}

	_, _ = fmt.Fprintln(w, strings.Join(separators, "\t"))

	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

// Page outputs a catalog page as a numbered table followed by a page footer.
func (o *OutputAdapter) Page(result domain.PageResult) error {
	if o.format == JSONFormat {
		return o.outputJSON(result)
	}

	rows := make([][]string, 0, len(result.Records))
	for i, record := range result.Records {
		rows = append(rows, []string{
			fmt.Sprintf("#%03d", result.Offset+i+1),
			record.DisplayName(),
			strings.Join(record.Types, ", "),
		})
	}

	if err := o.Table([]string{"NO", "NAME", "TYPES"}, rows); err != nil {
		return err
	}

	if !o.quiet {
		_, _ = fmt.Fprintf(o.writer, "\nPage %d of %d\n", result.Page, result.TotalPages)
	}

	return nil
}

// Record outputs one record with its stats.
func (o *OutputAdapter) Record(record domain.Record) error {
	if o.format == JSONFormat {
		return o.outputJSON(record)
	}

	_, _ = fmt.Fprintln(o.writer, record.DisplayName())

	if len(record.Types) > 0 {
		_, _ = fmt.Fprintf(o.writer, "Types:  %s\n", strings.Join(record.Types, ", "))
	}

	_, _ = fmt.Fprintf(o.writer, "Height: %s m\n", domain.FormatTenths(record.Height))
	_, _ = fmt.Fprintf(o.writer, "Weight: %s kg\n", domain.FormatTenths(record.Weight))

	if record.ImageURL != "" && !o.quiet {
		_, _ = fmt.Fprintf(o.writer, "Image:  %s\n", record.ImageURL)
	}

	if len(record.Stats) == 0 {
		return nil
	}

	_, _ = fmt.Fprintln(o.writer)

	rows := make([][]string, 0, len(record.Stats))
	for _, stat := range record.Stats {
		rows = append(rows, []string{
			domain.TitleCase(strings.ReplaceAll(stat.Label, "-", " ")),
			strconv.Itoa(stat.Value),
			statBar(stat.Value),
		})
	}

	return o.Table([]string{"STAT", "VALUE", ""}, rows)
}

// IsQuiet returns true if output should be suppressed.
func (o *OutputAdapter) IsQuiet() bool {
	return o.quiet
}

const statBarCells = 20

func statBar(value int) string {
	filled := int(domain.StatFraction(value)*statBarCells + 0.5)

	return strings.Repeat("█", filled) + strings.Repeat("░", statBarCells-filled)
}

func (o *OutputAdapter) outputJSON(data any) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// ParseOutputFormat parses a string into an OutputFormat.
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	default:
		return TextFormat, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
