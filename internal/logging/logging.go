// file: internal/logging/logging.go
// version: 1.0.0
// guid: 3c8e1f4a-7b2d-4e9c-a1f6-8d0b5c3e7a92

package logging

import (
	"io"
	"log"
	"os"
	"sync"
)

// Diagnostic output goes to stderr so the per-title progress lines on
// stdout stay machine-readable.
var (
	mu      sync.RWMutex
	verbose bool
	logger  = log.New(os.Stderr, "", log.LstdFlags)
)

// SetVerbose enables or disables [DEBUG] output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Verbose reports whether debug logging is enabled.
func Verbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output. Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// Debugf logs a debug message when verbose mode is enabled.
func Debugf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		logger.Printf("[DEBUG] "+format, args...)
	}
}

// Warnf logs a warning. Warnings are always emitted.
func Warnf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Printf("[WARN] "+format, args...)
}

// Errorf logs an error. Errors are always emitted.
func Errorf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Printf("[ERROR] "+format, args...)
}
