// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/minigrep/internal/api"
	"github.com/starford/minigrep/internal/checksum"
	"github.com/starford/minigrep/internal/mcpserver"
	"github.com/starford/minigrep/internal/search"
	"github.com/starford/minigrep/internal/storage"
	"github.com/starford/minigrep/internal/watch"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		lookup:  os.LookupEnv,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		version: "dev",
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger, closeLog, err := newLogger(cfg.App, app.stderr)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = closeLog() }()
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("log_level", cfg.App.LogLevel.String()),
		slog.String("log_file", cfg.App.LogFile.Path),
		slog.Duration("watch_debounce", cfg.Watch.Debounce),
		slog.String("server_root", cfg.Server.Root))

	switch app.mode {
	case ModeServe:
		return app.serve(ctx, logger)
	case ModeMCP:
		return app.serveMCP(ctx, logger)
	}

	searchCfg, err := search.Resolve(app.args, app.caseInsensitive, app.lookup)
	if err != nil {
		return err
	}
	if extra := len(app.args) - 2; extra > 0 {
		logger.Debug("ignoring extra arguments", slog.Any("args", app.args[:extra]))
	}
	logger.Debug("search configured",
		slog.String("query", searchCfg.Query),
		slog.String("file", searchCfg.FilePath),
		slog.Bool("case_sensitive", searchCfg.CaseSensitive))

	if app.mode == ModeWatch {
		return app.watch(ctx, searchCfg, logger)
	}
	return search.Run(storage.Local{}, searchCfg, app.stdout)
}

// watch prints the matches once and again after every change of the
// file's content. Only the first read is fatal.
func (a *application) watch(ctx context.Context, sc search.Config, logger *slog.Logger) error {
	store := storage.Local{}
	var lastSum string

	searchIfChanged := func() error {
		content, err := store.ReadText(sc.FilePath)
		if err != nil {
			return err
		}
		sum := checksum.Sum(content)
		if sum == lastSum {
			logger.Debug("watch: content unchanged", slog.String("file", sc.FilePath))
			return nil
		}
		lastSum = sum
		return search.Print(a.stdout, search.Search(sc.Query, content, sc.CaseSensitive))
	}

	if err := searchIfChanged(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return watch.Watch(gCtx, sc.FilePath, a.config.Watch.Debounce, logger, func() {
			if err := searchIfChanged(); err != nil {
				logger.Warn("watch: search failed",
					slog.String("file", sc.FilePath),
					slog.String("error", err.Error()))
			}
		})
	})

	g.Go(func() error {
		waitForShutdown(gCtx, logger)
		cancel()
		return nil
	})

	return g.Wait()
}

func (a *application) serve(ctx context.Context, logger *slog.Logger) error {
	cfg := a.config

	store, err := storage.NewFS(cfg.Server.Root)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", api.NewRouter(store, cfg.Auth.AuthEnabled(), cfg.Auth.Token, logger))

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server",
			slog.String("address", cfg.Server.HTTP.Address()),
			slog.String("root", store.Root()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		waitForShutdown(gCtx, logger)

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

func (a *application) serveMCP(ctx context.Context, logger *slog.Logger) error {
	store, err := storage.NewFS(a.config.Server.Root)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	srv := mcpserver.New(store, a.version, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		logger.Info("Starting MCP server", slog.String("root", store.Root()))
		return srv.Serve(gCtx, a.stdin, a.stdout)
	})

	g.Go(func() error {
		waitForShutdown(gCtx, logger)
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}

// waitForShutdown blocks until SIGINT, SIGTERM or ctx cancellation.
func waitForShutdown(ctx context.Context, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("Context cancelled, initiating shutdown")
	}
}
