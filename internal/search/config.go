// Package search resolves a search configuration, filters lines of text by
// substring and prints the matches.
package search

import (
	"fmt"
	"strconv"

	"github.com/starford/minigrep/internal/apperr"
)

// EnvCaseSensitive names the environment variable holding the default
// case sensitivity. "0" turns it off, any other integer turns it on.
const EnvCaseSensitive = "CASE_SENSITIVE"

// LookupFunc reports the value of an environment variable and whether it
// is set. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config describes a single search.
type Config struct {
	Query         string
	FilePath      string
	CaseSensitive bool
}

// Resolve builds a Config from the positional arguments left after flag
// parsing. The query and the file path are always the last two
// arguments; anything before them is ignored. caseInsensitive reflects
// the --case-insensitive flag and wins over the environment.
func Resolve(args []string, caseInsensitive bool, lookup LookupFunc) (Config, error) {
	caseSensitive, err := defaultCaseSensitive(lookup)
	if err != nil {
		return Config{}, err
	}

	if len(args) < 2 {
		return Config{}, apperr.ErrNotEnoughArgs
	}

	if caseInsensitive {
		caseSensitive = false
	}

	return Config{
		Query:         args[len(args)-2],
		FilePath:      args[len(args)-1],
		CaseSensitive: caseSensitive,
	}, nil
}

func defaultCaseSensitive(lookup LookupFunc) (bool, error) {
	if lookup == nil {
		return true, nil
	}
	val, ok := lookup(EnvCaseSensitive)
	if !ok {
		return true, nil
	}
	n, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", EnvCaseSensitive, val, apperr.ErrInvalidCaseSensitive)
	}
	return n != 0, nil
}
