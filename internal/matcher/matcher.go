// file: internal/matcher/matcher.go
// version: 2.0.0
// guid: 1f2a3b4c-5d6e-7f8a-9b0c-1d2e3f4a5b6c

// Package matcher picks the best catalog result for a title: book-format
// entries only, newest publication first.
package matcher

import (
	"sort"
	"strings"
	"time"

	"github.com/managedkaos/oreilly-book-searcher/internal/catalog"
	"github.com/managedkaos/oreilly-book-searcher/internal/logging"
)

// NotFound is the sentinel publication date for titles with no usable match.
const NotFound = "Not found"

// Results with a missing or unparsable issued date sort behind this floor.
var floorDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// issuedDate parses the date-only prefix of an issued timestamp. Anything
// that does not parse as YYYY-MM-DD gets the floor date so it ranks last.
func issuedDate(issued string) time.Time {
	datePart, _, _ := strings.Cut(issued, "T")
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return floorDate
	}
	return t
}

// BestMatch selects the single best result for a title: only book-format
// results are considered, ranked by issued date descending. Equal dates
// keep their original order; there is no secondary ranking by title
// similarity. Returns nil when nothing qualifies.
func BestMatch(title string, resp *catalog.SearchResponse) *catalog.SearchResult {
	if resp == nil || len(resp.Results) == 0 {
		logging.Debugf("no book data or results found for %q", title)
		return nil
	}

	logging.Debugf("considering %d results for %q", len(resp.Results), title)

	var candidates []*catalog.SearchResult
	for i := range resp.Results {
		if resp.Results[i].Format != "book" {
			continue
		}
		candidates = append(candidates, &resp.Results[i])
	}
	if len(candidates) == 0 {
		logging.Debugf("no book format results found for %q", title)
		return nil
	}

	logging.Debugf("found %d candidates for %q", len(candidates), title)
	for _, c := range candidates {
		logging.Debugf("candidate title: %s, issued: %s", c.Title, c.Issued)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return issuedDate(string(candidates[i].Issued)).After(issuedDate(string(candidates[j].Issued)))
	})

	best := candidates[0]
	logging.Debugf("selected best match: %s (issued: %s)", best.Title, best.Issued)
	return best
}

// PublicationDate returns the YYYY-MM-DD publication date of the best match
// for a title, or NotFound when no match carries a usable issued date.
func PublicationDate(title string, resp *catalog.SearchResponse) string {
	best := BestMatch(title, resp)
	if best == nil || best.Issued == "" {
		logging.Debugf("no publication date found for %q", title)
		return NotFound
	}

	datePart, _, _ := strings.Cut(string(best.Issued), "T")
	logging.Debugf("found publication date: %s", datePart)
	return datePart
}
