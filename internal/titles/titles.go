// file: internal/titles/titles.go
// version: 1.0.0
// guid: 5a1d8e3f-9b4c-4d7a-8f26-e3b0a9c5d412

// Package titles reads book titles from a reading-list file. Each entry is a
// block of lines separated by blank lines; the first line of a block is the
// title, the rest (publisher, formats, file sizes) is metadata and skipped.
package titles

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/managedkaos/oreilly-book-searcher/internal/logging"
)

// Read parses the titles file and returns the titles in file order.
func Read(path string) ([]string, error) {
	logging.Debugf("reading titles from %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open titles file: %w", err)
	}
	defer f.Close()

	var titles []string
	inEntry := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			inEntry = false
			continue
		}
		if !inEntry {
			logging.Debugf("found title: %s", line)
			titles = append(titles, line)
			inEntry = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read titles file: %w", err)
	}

	logging.Debugf("read %d titles from %s", len(titles), path)
	return titles, nil
}
