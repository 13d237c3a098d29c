package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/sports-intel-service/internal/http/requestutil"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// unmatchedRoute labels requests no route claimed, keeping metric
// cardinality bounded against scanners.
const unmatchedRoute = "unmatched"

var knownRoutes = map[string]struct{}{
	"/health":        {},
	"/ready":         {},
	"/api/scrape":    {},
	"/api/dashboard": {},
	"/api/leagues":   {},
	"/api/odds":      {},
	"/api/odds/best": {},
}

type requestIDKey struct{}

// RequestLogger returns chi-compatible middleware that assigns a request ID,
// scopes a logger to the request, and records one log line and one metric
// observation when the handler returns.
func RequestLogger(baseLogger *slog.Logger, recorder *metrics.Recorder) func(http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := requestutil.SanitizeRequestID(r.Header.Get(requestIDHeader))
			w.Header().Set(requestIDHeader, reqID)

			logger := baseLogger.With(
				slog.String(logging.FieldRequestID, reqID),
				slog.String(logging.FieldMethod, r.Method),
				slog.String(logging.FieldPath, r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("client_ip", requestutil.ClientIP(r)),
			)
			ctx := context.WithValue(logging.WithLogger(r.Context(), logger), requestIDKey{}, reqID)
			r = r.WithContext(ctx)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			duration := time.Since(start)
			recorder.RecordHTTPRequest(r.Method, routePattern(r), status, duration)
			logger.Info("request complete",
				slog.Int(logging.FieldStatusCode, status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			)
		})
	}
}

// RequestIDFromContext returns the ID RequestLogger stored, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// routePattern prefers the matched chi pattern so path parameters collapse.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return normalizePath(r.URL.Path)
}

func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	if _, ok := knownRoutes[path]; ok {
		return path
	}
	return unmatchedRoute
}
