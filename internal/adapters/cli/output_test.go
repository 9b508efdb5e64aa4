// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() domain.Record {
	return domain.Record{
		Name:     "mr-mime",
		Types:    []string{"psychic", "fairy"},
		ImageURL: "https://img.example/122.png",
		Stats: []domain.Stat{
			{Label: "hp", Value: 40},
			{Label: "special-attack", Value: 255},
		},
		Height: 13,
		Weight: 545,
	}
}

func TestOutputAdapter_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		format       OutputFormat
		quiet        bool
		message      string
		data         any
		wantContains string
		wantEmpty    bool
	}{
		{
			name:         "text format with message",
			format:       TextFormat,
			message:      "Config written",
			wantContains: "Config written",
		},
		{
			name:      "quiet mode suppresses message",
			format:    TextFormat,
			quiet:     true,
			message:   "Config written",
			wantEmpty: true,
		},
		{
			name:         "JSON format with data",
			format:       JSONFormat,
			message:      "ignored",
			data:         map[string]string{"path": "/tmp/config.toml"},
			wantContains: `"path"`,
		},
		{
			name:         "JSON format without data shows message",
			format:       JSONFormat,
			message:      "No data to show",
			wantContains: "No data to show",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			adapter := NewOutputAdapterWithWriter(&buf, tt.format, tt.quiet)
			require.NoError(t, adapter.Success(tt.message, tt.data))

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.wantContains)
			}
		})
	}
}

func TestOutputAdapter_ErrorIgnoresQuiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, TextFormat, true)
	require.NoError(t, adapter.Error("✗ Could not reach the Pokémon API"))

	assert.Contains(t, buf.String(), "Could not reach")
}

func TestOutputAdapter_ErrorJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, JSONFormat, false)
	require.NoError(t, adapter.Error("boom"))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "boom", decoded["error"])
}

func TestOutputAdapter_Info(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, NewOutputAdapterWithWriter(&buf, TextFormat, true).Info("hidden"))
	assert.Empty(t, buf.String())

	require.NoError(t, NewOutputAdapterWithWriter(&buf, TextFormat, false).Info("shown"))
	assert.Equal(t, "shown\n", buf.String())
}

func TestOutputAdapter_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, TextFormat, false)
	require.NoError(t, adapter.Table([]string{"NAME", "TYPES"}, [][]string{{"Pikachu", "electric"}}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "----"))
	assert.Contains(t, lines[2], "electric")
}

func TestOutputAdapter_PageText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, TextFormat, false)
	err := adapter.Page(domain.PageResult{
		Page:       2,
		TotalPages: 109,
		Offset:     12,
		Records:    []domain.Record{sampleRecord()},
	})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "#013")
	assert.Contains(t, output, "Mr Mime")
	assert.Contains(t, output, "psychic, fairy")
	assert.Contains(t, output, "Page 2 of 109")
}

func TestOutputAdapter_PageJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, JSONFormat, false)
	require.NoError(t, adapter.Page(domain.PageResult{Page: 1, TotalPages: 1, Records: []domain.Record{sampleRecord()}}))

	var decoded domain.PageResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.TotalPages)
	require.Len(t, decoded.Records, 1)
	assert.Equal(t, "mr-mime", decoded.Records[0].Name)
}

func TestOutputAdapter_RecordText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, TextFormat, false)
	require.NoError(t, adapter.Record(sampleRecord()))

	output := buf.String()
	assert.Contains(t, output, "Mr Mime")
	assert.Contains(t, output, "Height: 1.3 m")
	assert.Contains(t, output, "Weight: 54.5 kg")
	assert.Contains(t, output, "Special Attack")
	assert.Contains(t, output, strings.Repeat("█", statBarCells))
	assert.Contains(t, output, "https://img.example/122.png")
}

func TestStatBar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, strings.Repeat("░", statBarCells), statBar(0))
	assert.Equal(t, strings.Repeat("█", statBarCells), statBar(300))
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("░", 10), statBar(128))
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	format, err := ParseOutputFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSONFormat, format)

	format, err = ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, TextFormat, format)

	_, err = ParseOutputFormat("yaml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
