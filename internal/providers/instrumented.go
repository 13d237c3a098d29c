package providers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/sports-intel-service/internal/logging"
	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
)

// instrumentedDoer records latency and outcome for every upstream call.
type instrumentedDoer struct {
	next     Doer
	provider string
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewInstrumentedDoer wraps next so each call is counted under provider.
// Non-2xx responses count as errors; 429s also record a rate-limit hit.
func NewInstrumentedDoer(next Doer, provider string, recorder *metrics.Recorder, logger *slog.Logger) Doer {
	return &instrumentedDoer{
		next:     next,
		provider: provider,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (d *instrumentedDoer) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	logger := upstreamLogger(ctx, d.logger, d.provider)
	start := d.now()
	resp, err := d.next.Do(req)
	elapsed := d.now().Sub(start)

	outcome := err
	if err == nil && resp.StatusCode >= http.StatusBadRequest {
		outcome = fmt.Errorf("status %d", resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := ParseRetryAfter(resp.Header.Get("Retry-After"), d.now())
			d.recorder.RecordRateLimit(d.provider, retryAfter)
			logger.WarnContext(ctx, "upstream rate limited",
				slog.Duration("retry_after", retryAfter),
				slog.String("remaining", resp.Header.Get("x-requests-remaining")),
			)
		}
	}
	d.recorder.RecordProviderAttempt(d.provider, elapsed, outcome)

	level := slog.LevelDebug
	args := []any{
		slog.String(logging.FieldMethod, req.Method),
		slog.String(logging.FieldPath, req.URL.Path),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if outcome != nil {
		level = slog.LevelWarn
		args = append(args, slog.String("error", outcome.Error()))
	}
	if resp != nil {
		args = append(args, slog.Int(logging.FieldStatusCode, resp.StatusCode))
	}
	logger.Log(ctx, level, "upstream request", args...)
	return resp, err
}
