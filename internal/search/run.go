package search

import (
	"bufio"
	"fmt"
	"io"

	"github.com/starford/minigrep/internal/storage"
)

// Run reads cfg.FilePath through store and writes every matching line to
// w, one per line. Nothing is written when the file cannot be read.
func Run(store storage.Provider, cfg Config, w io.Writer) error {
	content, err := store.ReadText(cfg.FilePath)
	if err != nil {
		return err
	}
	return Print(w, Search(cfg.Query, content, cfg.CaseSensitive))
}

// Print writes lines to w, each followed by a newline.
func Print(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
