// file: internal/searcher/lookup.go
// version: 1.0.0
// guid: 5d6e7f8a-9b0c-1d2e-3f4a-5b6c7d8e9f0a

package searcher

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// rankTitles returns the titles fuzzy-matching query, closest first. Ties
// in edit distance keep the incoming (alphabetical) order.
func rankTitles(query string, names []string) []string {
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}
