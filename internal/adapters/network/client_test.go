// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/janderssonse/pokedex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bulbasaurJSON = `{
  "name": "bulbasaur",
  "height": 7,
  "weight": 69,
  "sprites": {"front_default": "https://img.example/1.png"},
  "types": [{"slot": 1, "type": {"name": "grass"}}, {"slot": 2, "type": {"name": "poison"}}],
  "stats": [
    {"base_stat": 45, "effort": 0, "stat": {"name": "hp"}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "attack"}}
  ]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/pokemon", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"count": 1302, "results": []}`))
	})
	mux.HandleFunc("/api/v2/pokemon/1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(bulbasaurJSON))
	})
	mux.HandleFunc("/api/v2/pokemon/bulbasaur", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(bulbasaurJSON))
	})
	mux.HandleFunc("/api/v2/pokemon/broken", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": `))
	})
	mux.HandleFunc("/api/v2/pokemon/teapot", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestClient(t *testing.T) *HTTPClient {
	t.Helper()

	client, err := NewHTTPClient(newTestServer(t).URL+"/api/v2/", time.Second)
	require.NoError(t, err)

	return client
}

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	client, err := NewHTTPClient("", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.baseURL)

	trimmed, err := NewHTTPClient("https://pokeapi.co/api/v2/", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://pokeapi.co/api/v2", trimmed.baseURL)

	transport, ok := client.client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.NotNil(t, transport.Proxy)
	assert.Zero(t, client.client.Timeout)

	for _, bad := range []string{"ftp://pokeapi.co", "not a url", "https://"} {
		_, err := NewHTTPClient(bad, 0)
		assert.ErrorIs(t, err, ErrInvalidBaseURL, bad)
	}
}

func TestFetchByIndexDecodesPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	rec, err := client.FetchByIndex(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "bulbasaur", rec.Name)
	assert.Equal(t, []string{"grass", "poison"}, rec.Types)
	assert.Equal(t, "https://img.example/1.png", rec.ImageURL)
	assert.Equal(t, []domain.Stat{{Label: "hp", Value: 45}, {Label: "attack", Value: 49}}, rec.Stats)
	assert.Equal(t, 7, rec.Height)
	assert.Equal(t, 69, rec.Weight)
}

func TestFetchByName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	rec, err := client.FetchByName(context.Background(), "bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, "bulbasaur", rec.Name)
}

func TestFetchCount(t *testing.T) {
	t.Parallel()

	count, err := newTestClient(t).FetchCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1302, count)
}

func TestFetchErrorClassification(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.FetchByName(ctx, "missingno")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrNetworkFailure)

	_, err = client.FetchByName(ctx, "broken")
	require.ErrorIs(t, err, domain.ErrNetworkFailure)

	_, err = client.FetchByName(ctx, "teapot")
	require.ErrorIs(t, err, domain.ErrNetworkFailure)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	client, err := NewHTTPClient(server.URL, time.Second)
	require.NoError(t, err)
	server.Close()

	_, err = client.FetchByIndex(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNetworkFailure)
}

func TestFetchHonoursContext(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchCount(ctx)
	require.ErrorIs(t, err, domain.ErrNetworkFailure)
	assert.ErrorIs(t, err, context.Canceled)
}
