// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides shared test doubles.
package testutil

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCatalogSource mocks the CatalogSource port for testing.
type MockCatalogSource struct {
	mock.Mock
}

// FetchByIndex mocks fetching a record by catalog index.
func (m *MockCatalogSource) FetchByIndex(ctx context.Context, index int) (domain.Record, error) {
	args := m.Called(ctx, index)

	rec, ok := args.Get(0).(domain.Record)
	if !ok {
		return domain.Record{}, args.Error(1)
	}

	return rec, args.Error(1)
}

// FetchByName mocks fetching a record by name.
func (m *MockCatalogSource) FetchByName(ctx context.Context, name string) (domain.Record, error) {
	args := m.Called(ctx, name)

	rec, ok := args.Get(0).(domain.Record)
	if !ok {
		return domain.Record{}, args.Error(1)
	}

	return rec, args.Error(1)
}

// FetchCount mocks fetching the catalog size.
func (m *MockCatalogSource) FetchCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

// FakeCatalog is an in-memory CatalogSource holding Count records named
// "mon-<index>". Indices listed in Fail return FailErr.
type FakeCatalog struct {
	Count   int
	Fail    map[int]bool
	FailErr error

	mu    sync.Mutex
	calls int
}

// NewFakeCatalog creates a fake catalog with count records.
func NewFakeCatalog(count int) *FakeCatalog {
	return &FakeCatalog{Count: count, Fail: map[int]bool{}, FailErr: domain.ErrNetworkFailure}
}

// Calls returns how many fetches were made.
func (f *FakeCatalog) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

func (f *FakeCatalog) count() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

// FetchByIndex returns the record at index.
func (f *FakeCatalog) FetchByIndex(ctx context.Context, index int) (domain.Record, error) {
	f.count()

	if err := ctx.Err(); err != nil {
		return domain.Record{}, err
	}

	if f.Fail[index] {
		return domain.Record{}, fmt.Errorf("fetch %d: %w", index, f.FailErr)
	}

	if index < 1 || index > f.Count {
		return domain.Record{}, fmt.Errorf("fetch %d: %w", index, domain.ErrNotFound)
	}

	return RecordFor(index), nil
}

// FetchByName resolves "mon-<index>" names.
func (f *FakeCatalog) FetchByName(ctx context.Context, name string) (domain.Record, error) {
	index, err := strconv.Atoi(strings.TrimPrefix(name, "mon-"))
	if err != nil || !strings.HasPrefix(name, "mon-") {
		f.count()

		return domain.Record{}, fmt.Errorf("fetch %s: %w", name, domain.ErrNotFound)
	}

	return f.FetchByIndex(ctx, index)
}

// FetchCount returns Count.
func (f *FakeCatalog) FetchCount(ctx context.Context) (int, error) {
	f.count()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return f.Count, nil
}

// RecordFor builds the deterministic record FakeCatalog serves for index.
func RecordFor(index int) domain.Record {
	return domain.Record{
		Name:     fmt.Sprintf("mon-%d", index),
		Types:    []string{"normal"},
		ImageURL: fmt.Sprintf("https://img.example/%d.png", index),
		Stats: []domain.Stat{
			{Label: "hp", Value: 40 + index%60},
			{Label: "attack", Value: 50 + index%50},
		},
		Height: 10 + index,
		Weight: 100 + index,
	}
}
