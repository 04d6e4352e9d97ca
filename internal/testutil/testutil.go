// Package testutil provides shared test helpers for temp files and loggers.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// Poem is the sample text used across package tests.
const Poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\nDuct tape.\n"

// WriteFile writes content to name inside a fresh temporary directory and
// returns the directory and the absolute file path. The directory is
// removed when the test ends.
func WriteFile(t *testing.T, name, content string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

// Logger returns a logger that discards everything below error level.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
