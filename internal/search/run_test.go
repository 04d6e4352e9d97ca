package search

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/starford/minigrep/internal/apperr"
	"github.com/starford/minigrep/internal/storage"
	"github.com/starford/minigrep/internal/testutil"
)

func TestRun_PrintsMatches(t *testing.T) {
	_, path := testutil.WriteFile(t, "poem.txt", testutil.Poem)

	var out bytes.Buffer
	err := Run(storage.Local{}, Config{Query: "rust", FilePath: path, CaseSensitive: false}, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "Rust:\nTrust me.\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_NoMatchesPrintsNothing(t *testing.T) {
	_, path := testutil.WriteFile(t, "poem.txt", testutil.Poem)

	var out bytes.Buffer
	if err := Run(storage.Local{}, Config{Query: "zebra", FilePath: path, CaseSensitive: true}, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
}

func TestRun_MissingFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing.txt")
	err := Run(storage.Local{}, Config{Query: "a", FilePath: path, CaseSensitive: true}, &out)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
	if out.Len() != 0 {
		t.Errorf("output on failure = %q", out.String())
	}
}

func TestRun_InvalidEncoding(t *testing.T) {
	_, path := testutil.WriteFile(t, "bin.dat", "ok line\n\xff\xfe\n")
	var out bytes.Buffer
	err := Run(storage.Local{}, Config{Query: "ok", FilePath: path, CaseSensitive: true}, &out)
	if !errors.Is(err, apperr.ErrInvalidEncoding) {
		t.Fatalf("err = %v, want ErrInvalidEncoding", err)
	}
	if out.Len() != 0 {
		t.Errorf("output on failure = %q", out.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrint_WriteError(t *testing.T) {
	if err := Print(failWriter{}, []string{"a"}); err == nil {
		t.Error("expected write error")
	}
}
