// file: internal/searcher/searcher_test.go
// version: 1.0.0
// guid: 6e7f8a9b-0c1d-2e3f-4a5b-6c7d8e9f0a1b

package searcher

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/managedkaos/oreilly-book-searcher/internal/cache"
	"github.com/managedkaos/oreilly-book-searcher/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"results": [
		{"format": "book", "issued": "2024-03-06T00:00:00Z"},
		{"format": "book", "issued": "2020-01-01T00:00:00Z"}
	]
}`

func writeTitles(t *testing.T, entries ...string) string {
	t.Helper()
	var content string
	for _, e := range entries {
		content += e + "\nO'Reilly\nEPUB\n\n"
	}
	path := filepath.Join(t.TempDir(), "titles.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := Out
	Out = &buf
	t.Cleanup(func() { Out = orig })
	return &buf
}

func testConfig(t *testing.T, baseURL string, titlesPath string) config.Config {
	t.Helper()
	return config.Config{
		TitlesFile: titlesPath,
		DataDir:    t.TempDir(),
		BaseURL:    baseURL,
	}
}

func TestRunEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Sample Title", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	out := captureOut(t)
	cfg := testConfig(t, server.URL, writeTitles(t, "Sample Title"))

	require.NoError(t, Run(context.Background(), cfg))

	assert.Contains(t, out.String(), "Sample Title: 2024-03-06")

	summary, err := cache.NewStore(cfg.DataDir).ReadSummary()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Sample Title": "2024-03-06"}, summary)

	// The raw response lands in the cache under the sanitized name.
	assert.FileExists(t, filepath.Join(cfg.DataDir, "Sample-Title.json"))
}

func TestRunCacheHitSkipsFetch(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	out := captureOut(t)
	cfg := testConfig(t, server.URL, writeTitles(t, "Sample Title"))
	cfg.UseCache = true

	require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
	require.NoError(t, cache.NewStore(cfg.DataDir).Save("Sample Title", []byte(sampleResponse)))

	require.NoError(t, Run(context.Background(), cfg))

	assert.Equal(t, int64(0), requests.Load(), "cache hit must not reach the API")
	assert.Contains(t, out.String(), "Sample Title: 2024-03-06")
}

func TestRunCacheMissFallsThroughToFetch(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	captureOut(t)
	cfg := testConfig(t, server.URL, writeTitles(t, "Sample Title"))
	cfg.UseCache = true

	require.NoError(t, Run(context.Background(), cfg))
	assert.Equal(t, int64(1), requests.Load())
}

func TestRunFetchFailureContinues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "Broken Book" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	out := captureOut(t)
	cfg := testConfig(t, server.URL, writeTitles(t, "Broken Book", "Sample Title"))

	require.NoError(t, Run(context.Background(), cfg))

	assert.Contains(t, out.String(), "Broken Book: Not found")
	assert.Contains(t, out.String(), "Sample Title: 2024-03-06")

	summary, err := cache.NewStore(cfg.DataDir).ReadSummary()
	require.NoError(t, err)
	assert.Equal(t, "Not found", summary["Broken Book"])

	// Failed fetches are never cached, so a rerun re-attempts them.
	assert.NoFileExists(t, filepath.Join(cfg.DataDir, "Broken-Book.json"))
}

func TestRunMissingTitlesFileIsFatal(t *testing.T) {
	cfg := testConfig(t, "http://localhost:1", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, Run(context.Background(), cfg))
}

func TestLookup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, cache.NewStore(dir).WriteSummary(map[string]string{
		"Head First Software Architecture": "2024-03-06",
		"Learning Go":                      "2021-03-02",
		"Head First Go":                    "2018-07-04",
	}))

	matches, err := Lookup(dir, "head first")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Contains(t, m.Title, "Head First")
	}

	none, err := Lookup(dir, "zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLookupMissingSummary(t *testing.T) {
	_, err := Lookup(t.TempDir(), "anything")
	assert.Error(t, err)
}
