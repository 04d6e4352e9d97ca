// Package storage reads the text files that minigrep searches.
package storage

// Provider is the interface for whole-file text reads.
type Provider interface {
	// ReadText opens path, reads it to the end and closes it again. The
	// content must be valid UTF-8.
	ReadText(path string) (string, error)
}
