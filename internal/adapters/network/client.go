// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package network implements domain.CatalogSource against the PokeAPI.
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/janderssonse/pokedex/internal/domain"
)

// DefaultBaseURL is the public PokeAPI root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// ErrInvalidBaseURL is returned when the configured base URL cannot be used.
var ErrInvalidBaseURL = errors.New("invalid base URL")

// HTTPClient implements domain.CatalogSource over HTTP.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// NewHTTPClient creates a client for baseURL. A zero timeout leaves request
// lifetime to the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// FetchByIndex fetches the record with the given catalog index.
func (c *HTTPClient) FetchByIndex(ctx context.Context, index int) (domain.Record, error) {
	return c.fetchRecord(ctx, strconv.Itoa(index))
}

// FetchByName fetches the record whose key is name.
func (c *HTTPClient) FetchByName(ctx context.Context, name string) (domain.Record, error) {
	return c.fetchRecord(ctx, url.PathEscape(name))
}

// FetchCount returns the total number of records the API reports.
func (c *HTTPClient) FetchCount(ctx context.Context) (int, error) {
	var payload countPayload
	if err := c.getJSON(ctx, c.baseURL+"/pokemon", &payload); err != nil {
		return 0, fmt.Errorf("failed to fetch count: %w", err)
	}

	return payload.Count, nil
}

func (c *HTTPClient) fetchRecord(ctx context.Context, key string) (domain.Record, error) {
	var payload recordPayload
	if err := c.getJSON(ctx, c.baseURL+"/pokemon/"+key, &payload); err != nil {
		return domain.Record{}, fmt.Errorf("failed to fetch %s: %w", key, err)
	}

	return payload.toRecord(), nil
}

func (c *HTTPClient) getJSON(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNetworkFailure, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %d", domain.ErrNetworkFailure, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response: %w", domain.ErrNetworkFailure, err)
	}

	return nil
}
