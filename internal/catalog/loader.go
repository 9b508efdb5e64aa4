// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog loads pages and search results from a domain.CatalogSource.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/janderssonse/pokedex/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Page is one fully loaded page of records.
type Page struct {
	Number     int
	Records    []domain.Record
	TotalPages int
}

// Loader turns page numbers and search terms into records.
type Loader struct {
	source domain.CatalogSource
	logger *zap.Logger
	names  *NameIndex
}

// NewLoader creates a loader. A nil logger discards log output.
func NewLoader(source domain.CatalogSource, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{
		source: source,
		logger: logger,
		names:  NewNameIndex(),
	}
}

// LoadPage fetches every record on page together with the catalog count.
// All PageSize+1 requests run concurrently and the first failure fails the
// whole page; callers never see a partial page.
func (l *Loader) LoadPage(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		return Page{}, fmt.Errorf("%w: %d", domain.ErrInvalidPage, page)
	}

	start := time.Now()
	log := l.logger.With(zap.String("load_id", uuid.New().String()), zap.Int("page", page))
	offset := Offset(page)
	records := make([]domain.Record, PageSize)

	var count int

	group, groupCtx := errgroup.WithContext(ctx)

	for i := range PageSize {
		index := offset + i + 1

		group.Go(func() error {
			rec, err := l.source.FetchByIndex(groupCtx, index)
			if err != nil {
				return fmt.Errorf("record %d: %w", index, err)
			}

			records[i] = rec

			return nil
		})
	}

	group.Go(func() error {
		n, err := l.source.FetchCount(groupCtx)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}

		count = n

		return nil
	})

	if err := group.Wait(); err != nil {
		log.Warn("page load failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))

		return Page{}, fmt.Errorf("failed to load page %d: %w", page, err)
	}

	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}

	l.names.Add(names...)

	result := Page{Number: page, Records: records, TotalPages: TotalPages(count)}

	log.Info("page loaded",
		zap.Int("total_pages", result.TotalPages),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

// NormalizeTerm trims and lower-cases a search term.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// SearchByKey fetches the single record whose key matches term.
// A blank term is rejected without contacting the source.
func (l *Loader) SearchByKey(ctx context.Context, term string) (domain.Record, error) {
	key := NormalizeTerm(term)
	if key == "" {
		return domain.Record{}, domain.ErrEmptySearch
	}

	log := l.logger.With(zap.String("load_id", uuid.New().String()), zap.String("term", key))

	rec, err := l.source.FetchByName(ctx, key)
	if err != nil {
		log.Warn("search failed", zap.Error(err))

		return domain.Record{}, fmt.Errorf("failed to search %q: %w", key, err)
	}

	l.names.Add(rec.Name)
	log.Info("search resolved", zap.String("name", rec.Name))

	return rec, nil
}

// Suggest returns names seen this session that resemble term.
func (l *Loader) Suggest(term string, limit int) []string {
	return l.names.Suggest(term, limit)
}
