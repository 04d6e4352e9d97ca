package internal

import (
	"io"

	"github.com/starford/minigrep/internal/search"
)

// Mode selects what Run does.
type Mode int

// Run modes.
const (
	// ModeSearch searches once and exits.
	ModeSearch Mode = iota
	// ModeWatch searches, then searches again whenever the file changes.
	ModeWatch
	// ModeServe serves the search over HTTP.
	ModeServe
	// ModeMCP serves the search as an MCP tool over stdio.
	ModeMCP
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config          *Config
	mode            Mode
	args            []string
	caseInsensitive bool
	lookup          search.LookupFunc
	stdin           io.Reader
	stdout          io.Writer
	stderr          io.Writer
	version         string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithMode sets the run mode. The default is ModeSearch.
func WithMode(m Mode) Option {
	return func(a *application) {
		a.mode = m
	}
}

// WithArgs sets the positional arguments and whether --case-insensitive
// was given.
func WithArgs(args []string, caseInsensitive bool) Option {
	return func(a *application) {
		a.args = args
		a.caseInsensitive = caseInsensitive
	}
}

// WithLookupEnv sets the environment lookup used for CASE_SENSITIVE.
func WithLookupEnv(fn search.LookupFunc) Option {
	return func(a *application) {
		a.lookup = fn
	}
}

// WithIO sets the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *application) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithVersion sets the version reported by the MCP server.
func WithVersion(v string) Option {
	return func(a *application) {
		a.version = v
	}
}
