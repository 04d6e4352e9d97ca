package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/minigrep/internal/apperr"
)

// FS implements Provider confined to a root directory. It backs the
// network-facing modes, where the path comes from a client.
type FS struct {
	root string // absolute path to the search root
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	return &FS{root: resolved}, nil
}

// Root returns the absolute root directory.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a relative path against the root and rejects
// any result that escapes it, either lexically (directory traversal)
// or through a symlink inside the root.
func (f *FS) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute path %s: %w", rel, apperr.ErrOutsideRoot)
	}
	abs, err := filepath.Abs(filepath.Join(f.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !f.contains(abs) {
		return "", fmt.Errorf("storage: %s: %w", rel, apperr.ErrOutsideRoot)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if errors.Is(err, fs.ErrNotExist) {
		// ReadText reports it as not found.
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !f.contains(resolved) {
		return "", fmt.Errorf("storage: %s: %w", rel, apperr.ErrOutsideRoot)
	}
	return resolved, nil
}

func (f *FS) contains(abs string) bool {
	return strings.HasPrefix(abs, f.root+string(os.PathSeparator))
}

// ReadText returns the content of the file at path (relative to root).
// A missing file is reported as apperr.ErrNotFound without leaking the
// absolute location.
func (f *FS) ReadText(path string) (string, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return "", err
	}
	content, err := readText(abs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("storage: %s: %w", path, apperr.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}
	return content, nil
}
