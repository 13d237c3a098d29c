package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/sports-intel-service/internal/logging"
)

// upstreamLogger prefers the request-scoped logger on ctx so upstream lines
// share the inbound request_id, and tags it with the provider. It never
// returns nil.
func upstreamLogger(ctx context.Context, fallback *slog.Logger, provider string) *slog.Logger {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger.With(slog.String(logging.FieldProvider, provider))
}
