// file: internal/cache/cache.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

// Package cache persists raw catalog responses on disk, one JSON file per
// title, plus the run summary. Filenames are derived from titles with a
// lossy sanitizer, so distinct titles can share a cache slot; the most
// recent write wins and a read for either title returns it.
package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/managedkaos/oreilly-book-searcher/internal/logging"
)

// SummaryFilename is the summary file written into the store directory.
const SummaryFilename = "publication_dates.json"

// SanitizeFilename converts a title to a safe cache filename: every
// non-alphanumeric character becomes a dash, dash runs collapse, and the
// .json extension is appended. A title with no alphanumeric characters
// yields a bare ".json" basename and collides with any other such title.
func SanitizeFilename(title string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, title)

	var parts []string
	for _, p := range strings.Split(mapped, "-") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-") + ".json"
}

// Store is a directory-backed response cache.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is not created
// here; the caller ensures it exists before the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the cache file path for a title.
func (s *Store) Path(title string) string {
	return filepath.Join(s.dir, SanitizeFilename(title))
}

// Load returns the cached raw response for a title. A missing file, a read
// error, or a payload that is not valid JSON all count as a miss; only the
// missing file is silent, the rest are logged.
func (s *Store) Load(title string) ([]byte, bool) {
	path := s.Path(title)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debugf("no cached result at %s", path)
		} else {
			logging.Warnf("error reading cached file %s: %v, falling back to API", path, err)
		}
		return nil, false
	}
	if !json.Valid(data) {
		logging.Warnf("failed to parse cached file %s, falling back to API", path)
		return nil, false
	}

	logging.Debugf("loaded cached result from %s", path)
	return data, true
}

// Save writes a raw response verbatim as pretty-printed JSON, overwriting
// any previous entry for the same sanitized filename.
func (s *Store) Save(title string, raw []byte) error {
	path := s.Path(title)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format response for %s: %w", path, err)
	}
	if err := os.WriteFile(path, pretty.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to save response to %s: %w", path, err)
	}

	logging.Debugf("saved result to %s", path)
	return nil
}

// WriteSummary persists the title to publication date mapping.
func (s *Store) WriteSummary(summary map[string]string) error {
	path := filepath.Join(s.dir, SummaryFilename)

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary to %s: %w", path, err)
	}

	logging.Debugf("results saved to %s", path)
	return nil
}

// ReadSummary loads a previously written summary.
func (s *Store) ReadSummary() (map[string]string, error) {
	path := filepath.Join(s.dir, SummaryFilename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary from %s: %w", path, err)
	}
	var summary map[string]string
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse summary %s: %w", path, err)
	}
	return summary, nil
}
