package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
)

// FakeHTTPServer stands in for the server's httpServer in tests.
// ListenAndServe returns ListenErr immediately. When Block is non-nil,
// Shutdown waits for it to close or for ctx to expire.
type FakeHTTPServer struct {
	Address   string
	Routes    http.Handler
	ListenErr error
	Block     chan struct{}

	listens   atomic.Int32
	shutdowns atomic.Int32
}

func (f *FakeHTTPServer) ListenAndServe() error {
	f.listens.Add(1)
	return f.ListenErr
}

func (f *FakeHTTPServer) Shutdown(ctx context.Context) error {
	f.shutdowns.Add(1)
	if f.Block == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.Block:
		return nil
	}
}

func (f *FakeHTTPServer) Addr() string {
	if f.Address == "" {
		return ":0"
	}
	return f.Address
}

func (f *FakeHTTPServer) Handler() http.Handler {
	if f.Routes == nil {
		return http.NotFoundHandler()
	}
	return f.Routes
}

// Listens reports how many times ListenAndServe ran.
func (f *FakeHTTPServer) Listens() int { return int(f.listens.Load()) }

// Shutdowns reports how many times Shutdown ran.
func (f *FakeHTTPServer) Shutdowns() int { return int(f.shutdowns.Load()) }
