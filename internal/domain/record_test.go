// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"testing"

	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatFraction(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, domain.StatFraction(255), 1e-9)
	assert.InDelta(t, 0.0, domain.StatFraction(0), 1e-9)
	assert.InDelta(t, 0.50196, domain.StatFraction(128), 1e-4)
	assert.InDelta(t, 1.0, domain.StatFraction(300), 1e-9, "values above the ceiling fill the bar")
	assert.InDelta(t, 0.0, domain.StatFraction(-4), 1e-9)
}

func TestFormatTenths(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		100: "10.0",
		7:   "0.7",
		69:  "6.9",
		0:   "0.0",
		35:  "3.5",
	}

	for raw, want := range tests {
		assert.Equal(t, want, domain.FormatTenths(raw), "raw %d", raw)
	}
}

func TestRecordDisplay(t *testing.T) {
	t.Parallel()

	rec := domain.Record{Name: "mr-mime", Height: 13, Weight: 545}

	assert.Equal(t, "Mr Mime", rec.DisplayName())
	assert.Equal(t, "1.3", rec.HeightMetres())
	assert.Equal(t, "54.5", rec.WeightKilograms())
}
