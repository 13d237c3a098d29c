package providers

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

const limiterName = "limiter"

// rateLimitedDoer spaces outbound requests with a token bucket shared by
// every client built on top of it.
type rateLimitedDoer struct {
	next    Doer
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedDoer returns a Doer that waits for a token before each call.
// A non-positive perSecond disables limiting.
func NewRateLimitedDoer(next Doer, perSecond float64, burst int, logger *slog.Logger) Doer {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedDoer{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

func (d *rateLimitedDoer) Do(req *http.Request) (*http.Response, error) {
	if d == nil || d.next == nil {
		return nil, ErrProviderUnavailable
	}
	ctx := req.Context()
	if err := d.limiter.Wait(ctx); err != nil {
		upstreamLogger(ctx, d.logger, limiterName).WarnContext(ctx, "upstream request abandoned while waiting for limiter",
			slog.String("host", req.URL.Host),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return d.next.Do(req)
}
