// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"

	"github.com/janderssonse/pokedex/internal/catalog"
	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/janderssonse/pokedex/internal/tui/styles"
)

// NewTestCatalog creates a catalog screen backed by source and sized to
// width x height. No load is started.
func NewTestCatalog(source domain.CatalogSource, width, height int) *Catalog {
	model := NewCatalog(context.Background(), catalog.NewLoader(source, nil), nil, styles.New())

	if width > 0 && height > 0 {
		model.width = width
		model.height = height
		model.layout()
	}

	return model
}
