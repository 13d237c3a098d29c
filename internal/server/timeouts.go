package server

import "time"

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second
	// headroom on top of the upstream timeout for decoding and encoding.
	writeHeadroom = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor keeps the response deadline past the slowest upstream
// call a handler can make. Dashboard fetches run in parallel, so one
// upstream timeout bounds them.
func writeTimeoutFor(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		return readTimeout + writeHeadroom
	}
	return upstream + writeHeadroom
}
