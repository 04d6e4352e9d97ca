package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the structured JSON logger. Logs go to stderr unless a
// log file is configured, in which case they go to a rotating file.
// stdout is reserved for matches.
func newLogger(cfg ApplicationConfig, stderr io.Writer) (*slog.Logger, func() error, error) {
	var out io.Writer = stderr
	closeLog := func() error { return nil }

	if cfg.LogFile.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile.Path,
			MaxSize:    cfg.LogFile.MaxSizeMB,
			MaxBackups: cfg.LogFile.MaxBackups,
			MaxAge:     cfg.LogFile.MaxAgeDays,
			Compress:   cfg.LogFile.Compress,
		}
		out, closeLog = lj, lj.Close
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	return logger, closeLog, nil
}
