package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
	"github.com/preston-bernstein/sports-intel-service/internal/testutil"
)

func TestRequestLoggerSetsRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "short")
	})

	rr := testutil.Serve(RequestLogger(logger, metrics.NewRecorder())(next), http.MethodGet, "/api/leagues", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if rr.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected X-Request-ID header")
	}
	out := buf.String()
	if !strings.Contains(out, "status_code=418") || !strings.Contains(out, "bytes=5") {
		t.Fatalf("expected completion log with status and size, got %q", out)
	}
}

func TestRequestLoggerDefaultsStatusWhenUnwritten(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	handler := RequestLogger(logger, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	testutil.AssertStatus(t, testutil.Serve(handler, http.MethodGet, "/health", nil), http.StatusOK)
	if !strings.Contains(buf.String(), "status_code=200") {
		t.Fatalf("expected implicit 200 logged, got %q", buf.String())
	}
}

func TestRequestLoggerKeepsValidIncomingID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	var seen string
	handler := RequestLogger(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr := testutil.ServeRequest(handler, req)

	if seen != "abc-123" || rr.Header().Get(requestIDHeader) != "abc-123" {
		t.Fatalf("expected incoming id kept, got %q", seen)
	}
	if !strings.Contains(buf.String(), "request_id=abc-123") {
		t.Fatalf("expected request id in logs, got %q", buf.String())
	}
}

func TestRequestLoggerReplacesUnsafeID(t *testing.T) {
	var seen string
	handler := RequestLogger(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "bad id\nInjected: yes")
	testutil.ServeRequest(handler, req)

	if seen == "" || strings.ContainsAny(seen, " \n") {
		t.Fatalf("expected generated id, got %q", seen)
	}
}

func TestRequestLoggerLeavesProviderMetricsAlone(t *testing.T) {
	rec := metrics.NewRecorder()
	handler := RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), rec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	testutil.AssertStatus(t, testutil.Serve(handler, http.MethodPost, "/api/scrape", nil), http.StatusNoContent)
	if got := rec.Snapshot("http").Calls; got != 0 {
		t.Fatalf("expected no provider metrics recorded, got %d", got)
	}
}

func TestRoutePatternUsesChiRoute(t *testing.T) {
	var pattern string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			pattern = routePattern(req)
		})
	})
	r.Get("/api/things/{id}", func(w http.ResponseWriter, req *http.Request) {})

	testutil.Serve(r, http.MethodGet, "/api/things/42?x=1", nil)
	if pattern != "/api/things/{id}" {
		t.Fatalf("expected chi pattern, got %q", pattern)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "/health", want: "/health"},
		{in: "/ready", want: "/ready"},
		{in: "/api/odds", want: "/api/odds"},
		{in: "/api/odds/best", want: "/api/odds/best"},
		{in: "/wp-admin/login", want: unmatchedRoute},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}
	ctx := context.WithValue(context.Background(), requestIDKey{}, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
}

func BenchmarkRequestLogger(b *testing.B) {
	handler := RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewRecorder())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }),
	)
	req := httptest.NewRequest(http.MethodGet, "/api/leagues", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}
