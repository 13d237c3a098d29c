package testutil

import (
	"bytes"
	"log/slog"
	"time"
)

// NewBufferLogger returns a text logger at info level writing into the
// returned buffer, so tests can grep for key=value pairs.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})), buf
}

// NowAt pins a clock to t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
