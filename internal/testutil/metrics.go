package testutil

import (
	"context"

	"github.com/preston-bernstein/sports-intel-service/internal/metrics"
)

// NewRecorderWithShutdown builds a recorder the way the server does with
// telemetry disabled: in-memory stats only, no-op shutdown.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	rec, _, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{})
	if err != nil {
		panic(err)
	}
	return rec, shutdown
}
