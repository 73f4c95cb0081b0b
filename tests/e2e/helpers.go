// Package e2e exercises the Hermes API end to end: real router, real store,
// real SQLite database on disk.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hermeshq/hermes/internal/core/paging"
	"github.com/hermeshq/hermes/internal/shell/api"
	"github.com/hermeshq/hermes/internal/shell/store"
)

// =============================================================================
// Server Setup
// =============================================================================

// startServer boots the full API stack against a fresh database file and
// returns its base URL.
func startServer(t *testing.T) string {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "hermes-e2e.db")
	s, err := store.NewSQLiteStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
	})

	h := api.NewHandler(s, paging.DefaultPolicy(), "/api/v1", nil)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)

	return srv.URL
}

// uniqueHostname yields a hostname no other test in the run shares, so
// suites can run against one database without colliding.
func uniqueHostname() string {
	return fmt.Sprintf("host-%s.example.com", uuid.New().String()[:8])
}

// =============================================================================
// HTTP Helpers
// =============================================================================

func httpGet(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func httpPost(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(buf).Encode(body))
	resp, err := http.Post(url, "application/json", buf)
	require.NoError(t, err)
	return resp
}

func httpPut(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(buf).Encode(body))
	req, err := http.NewRequest(http.MethodPut, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func httpDelete(t *testing.T, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// decode reads and closes the response body into a generic document.
func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc), "body: %s", data)
	return doc
}
