// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxStatValue is the ceiling of a base stat.
const MaxStatValue = 255

// Stat is a single named base stat.
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Record is one catalog entry as shown in the grid and the detail view.
// Height and Weight are in tenths of metres and tenths of kilograms.
type Record struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	ImageURL string   `json:"image_url,omitempty"`
	Stats    []Stat   `json:"stats"`
	Height   int      `json:"height"`
	Weight   int      `json:"weight"`
}

// DisplayName returns the name title-cased with hyphens shown as spaces.
func (r Record) DisplayName() string {
	return TitleCase(strings.ReplaceAll(r.Name, "-", " "))
}

// HeightMetres renders the height in metres, e.g. "0.7".
func (r Record) HeightMetres() string {
	return FormatTenths(r.Height)
}

// WeightKilograms renders the weight in kilograms, e.g. "6.9".
func (r Record) WeightKilograms() string {
	return FormatTenths(r.Weight)
}

// StatFraction returns value/255 clamped to [0,1], the fill of a stat bar.
func StatFraction(value int) float64 {
	switch {
	case value <= 0:
		return 0
	case value >= MaxStatValue:
		return 1
	default:
		return float64(value) / MaxStatValue
	}
}

// FormatTenths renders raw/10 with exactly one decimal place.
func FormatTenths(raw int) string {
	return strconv.FormatFloat(float64(raw)/10, 'f', 1, 64)
}

// TitleCase upper-cases the first letter of every word.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
