package storage

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/starford/minigrep/internal/apperr"
)

// Local implements Provider for paths taken verbatim from the command line.
type Local struct{}

// ReadText returns the full content of the file at path.
func (Local) ReadText(path string) (string, error) {
	return readText(path, path)
}

// readText reads abs and reports errors against name.
func readText(abs, name string) (string, error) {
	f, err := os.Open(abs)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", name, apperr.ErrInvalidEncoding)
	}
	return string(data), nil
}
