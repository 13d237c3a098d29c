package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	appodds "github.com/preston-bernstein/sports-intel-service/internal/app/odds"
	"github.com/preston-bernstein/sports-intel-service/internal/app/scrape"
	"github.com/preston-bernstein/sports-intel-service/internal/http/middleware"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
	"github.com/preston-bernstein/sports-intel-service/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps err to a status and writes it. Server-side
// failures are logged with the request-scoped logger.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logging.Error(loggerFromContext(r, logger), "request failed", err, slog.Int(logging.FieldStatusCode, status))
	}
	writeError(w, r, status, err.Error(), logger)
}

func statusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, scrape.ErrInvalidType),
		errors.Is(err, scrape.ErrMissingParam),
		errors.Is(err, appodds.ErrMissingParam),
		errors.Is(err, appodds.ErrUnknownLeague):
		return http.StatusBadRequest
	case errors.Is(err, appodds.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, providers.ErrProviderUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
