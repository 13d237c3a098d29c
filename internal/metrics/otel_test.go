package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{})
	if err != nil || rec == nil || handler != nil || shutdown == nil {
		t.Fatalf("unexpected disabled setup rec=%v handler=%v err=%v", rec, handler, err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupExportsUpstreamAndScrapeMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	rec.RecordHTTPRequest(http.MethodPost, "/api/scrape", http.StatusOK, time.Millisecond)
	rec.RecordScrape("standings", 3*time.Millisecond, errors.New("boom"))
	rec.RecordProviderAttempt("espn", 2*time.Millisecond, nil)
	rec.RecordRateLimit("oddsapi", time.Second)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, name := range []string{"http_requests_total", "upstream_requests_total", "upstream_rate_limited_total", "scrape_requests_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in exposition", name)
		}
	}
	if !strings.Contains(body, `outcome="error"`) {
		t.Fatalf("expected scrape outcome label in exposition")
	}
	if rec.ProviderCalls("espn") != 1 || rec.ScrapeCount("standings") != 1 {
		t.Fatalf("expected in-memory stats alongside export")
	}
}

func TestSetupPropagatesExporterError(t *testing.T) {
	original := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failed")
	}
	defer func() { promReaderFactory = original }()

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected exporter error")
	}
}

func TestSetupPropagatesOTLPError(t *testing.T) {
	original := otlpReaderFactory
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("bad endpoint")
	}
	defer func() { otlpReaderFactory = original }()

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "collector:4318"})
	if err == nil || !strings.Contains(err.Error(), "bad endpoint") {
		t.Fatalf("expected otlp error, got %v", err)
	}
}

func TestSetupPropagatesInstrumentError(t *testing.T) {
	original := instrumentFactory
	instrumentFactory = func(metric.MeterProvider) (*otelInstruments, error) {
		return nil, errors.New("duplicate instrument")
	}
	defer func() { instrumentFactory = original }()

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected instrument error")
	}
}

func TestNilInstrumentsAreSafe(t *testing.T) {
	var o *otelInstruments
	o.recordHTTPRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
	o.recordProviderAttempt("espn", time.Millisecond, errors.New("boom"))
	o.recordRateLimit("espn", time.Second)
	o.recordScrape("team", time.Millisecond, nil)
}

func TestMillisKeepsFraction(t *testing.T) {
	if got := millis(1500 * time.Microsecond); got != 1.5 {
		t.Fatalf("expected 1.5ms, got %v", got)
	}
}
