// file: internal/catalog/types.go
// version: 1.0.0
// guid: d8e5f2a9-4b7c-4e1d-9a36-c0f8b5d2e764

package catalog

import (
	"encoding/json"
	"fmt"
)

// LenientString decodes a JSON string and silently maps any other JSON
// value (number, null, object) to the empty string. Catalog results are
// heterogeneous and a single malformed field must not fail the document.
type LenientString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *LenientString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = LenientString(v)
	return nil
}

// SearchResult is a single catalog hit. Fields beyond these are ignored by
// decoding but survive in the cached raw payload.
type SearchResult struct {
	Title  LenientString `json:"title"`
	Format LenientString `json:"format"`
	Issued LenientString `json:"issued"`
}

// SearchResponse is the catalog search payload.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// ParseResponse decodes a raw search payload. Used for both live response
// bodies and cached entries.
func ParseResponse(raw []byte) (*SearchResponse, error) {
	var resp SearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &resp, nil
}
