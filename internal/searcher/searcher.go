// file: internal/searcher/searcher.go
// version: 1.0.0
// guid: 4c5d6e7f-8a9b-0c1d-2e3f-4a5b6c7d8e9f

// Package searcher runs the publication date lookup over a titles file and
// answers queries against the saved summary.
package searcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/managedkaos/oreilly-book-searcher/internal/cache"
	"github.com/managedkaos/oreilly-book-searcher/internal/catalog"
	"github.com/managedkaos/oreilly-book-searcher/internal/config"
	"github.com/managedkaos/oreilly-book-searcher/internal/logging"
	"github.com/managedkaos/oreilly-book-searcher/internal/matcher"
	"github.com/managedkaos/oreilly-book-searcher/internal/titles"
	"github.com/oklog/ulid/v2"
	"github.com/schollz/progressbar/v3"
)

// Out is where per-title progress lines are written. Tests redirect it.
var Out io.Writer = os.Stdout

// Run processes every title in order: resolve a search response from the
// cache (when enabled) or the live API, extract the publication date, and
// print one "<title>: <date>" line. The summary is written once at the end.
// Failed fetches yield "Not found" and are never cached, so a rerun with
// caching enabled re-attempts them.
func Run(ctx context.Context, cfg config.Config) error {
	runID := ulid.Make().String()
	logging.Debugf("run %s: starting book search", runID)

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", cfg.DataDir, err)
	}

	list, err := titles.Read(cfg.TitlesFile)
	if err != nil {
		return err
	}

	store := cache.NewStore(cfg.DataDir)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = catalog.DefaultBaseURL
	}
	client := catalog.NewClientWithBaseURL(baseURL, cfg.RequestDelay)

	bar := progressbar.Default(int64(len(list)))
	summary := make(map[string]string, len(list))

	for _, title := range list {
		logging.Debugf("run %s: processing title: %s", runID, title)

		resp := resolve(ctx, cfg.UseCache, title, store, client)
		pubDate := matcher.PublicationDate(title, resp)
		summary[title] = pubDate

		fmt.Fprintf(Out, "%s: %s\n", title, pubDate)
		_ = bar.Add(1)
	}

	if err := store.WriteSummary(summary); err != nil {
		return err
	}

	logging.Debugf("run %s: completed %d titles", runID, len(list))
	return nil
}

// resolve returns the search response for a title, or nil when no data is
// available. Cache problems fall through to a live fetch; fetch problems
// are logged and leave the title without data.
func resolve(ctx context.Context, useCache bool, title string, store *cache.Store, client *catalog.Client) *catalog.SearchResponse {
	if useCache {
		if raw, ok := store.Load(title); ok {
			resp, err := catalog.ParseResponse(raw)
			if err == nil {
				return resp
			}
			logging.Warnf("cached entry for %q is unusable: %v, falling back to API", title, err)
		}
	}

	raw, resp, err := client.Search(ctx, title)
	if err != nil {
		logging.Errorf("error searching for %s: %v", title, err)
		return nil
	}

	if err := store.Save(title, raw); err != nil {
		logging.Warnf("could not cache response for %q: %v", title, err)
	}
	return resp
}

// Match is a summary entry returned by Lookup.
type Match struct {
	Title           string
	PublicationDate string
}

// Lookup fuzzy-searches a saved summary for titles matching query and
// returns them best match first.
func Lookup(dataDir, query string) ([]Match, error) {
	store := cache.NewStore(dataDir)

	summary, err := store.ReadSummary()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(summary))
	for title := range summary {
		names = append(names, title)
	}
	sort.Strings(names)

	ranks := rankTitles(query, names)

	matches := make([]Match, 0, len(ranks))
	for _, title := range ranks {
		matches = append(matches, Match{Title: title, PublicationDate: summary[title]})
	}
	return matches, nil
}
