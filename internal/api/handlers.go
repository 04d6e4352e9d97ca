package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/starford/minigrep/internal/apperr"
	"github.com/starford/minigrep/internal/search"
	"github.com/starford/minigrep/internal/storage"
)

// Handler holds API route handlers.
type Handler struct {
	store  storage.Provider
	logger *slog.Logger
}

// NewHandler creates a new Handler that reads files through store.
func NewHandler(store storage.Provider, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Search handles GET /api/search.
//
// Query parameters: q (required, may be empty), path (required) and
// case_insensitive (optional bool). Matches are returned as text/plain,
// one line each, in file order.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	if !params.Has("q") {
		writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}
	path := params.Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'path' is required")
		return
	}

	caseSensitive := true
	if raw := params.Get("case_insensitive"); raw != "" {
		insensitive, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "query parameter 'case_insensitive' must be a boolean")
			return
		}
		caseSensitive = !insensitive
	}

	cfg := search.Config{
		Query:         params.Get("q"),
		FilePath:      path,
		CaseSensitive: caseSensitive,
	}

	content, err := h.store.ReadText(cfg.FilePath)
	if err != nil {
		h.writeReadError(w, path, err)
		return
	}

	matches := search.Search(cfg.Query, content, cfg.CaseSensitive)
	h.logger.Debug("search served",
		slog.String("path", path),
		slog.Bool("case_sensitive", cfg.CaseSensitive),
		slog.Int("matches", len(matches)))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Match-Count", strconv.Itoa(len(matches)))
	w.WriteHeader(http.StatusOK)
	if err := search.Print(w, matches); err != nil {
		h.logger.Warn("search response write failed", slog.String("error", err.Error()))
	}
}

func (h *Handler) writeReadError(w http.ResponseWriter, path string, err error) {
	switch {
	case errors.Is(err, apperr.ErrOutsideRoot):
		writeError(w, http.StatusBadRequest, "path is outside the search root")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrInvalidEncoding):
		writeError(w, http.StatusUnprocessableEntity, apperr.ErrInvalidEncoding.Error())
	default:
		h.logger.Error("search read failed", slog.String("path", path), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

type errResponse struct {
	Error string `json:"error"`
}

// writeError writes {"error": msg} with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResponse{Error: msg}); err != nil {
		slog.Error("write error response", slog.String("error", err.Error()))
	}
}
