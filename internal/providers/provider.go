package providers

import "net/http"

// Doer executes outbound HTTP requests. *http.Client satisfies it, and the
// wrappers in this package decorate it with rate limiting and instrumentation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to Doer.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}
