// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "context"

// CatalogSource is the remote catalog the loader reads from.
// Implementations must be safe for concurrent use.
type CatalogSource interface {
	// FetchByIndex returns the record with the given 1-based catalog index.
	FetchByIndex(ctx context.Context, index int) (Record, error)

	// FetchByName returns the record whose key matches name exactly.
	FetchByName(ctx context.Context, name string) (Record, error)

	// FetchCount returns the total number of records in the catalog.
	FetchCount(ctx context.Context) (int, error)
}
