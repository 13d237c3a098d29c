package teststubs

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
)

// StubDoer is a test double for providers.Doer. Bodies are keyed by URL
// path; paths without an entry get Body.
type StubDoer struct {
	Status int
	Body   string
	Bodies map[string]string
	Header http.Header
	Err    error
	Calls  atomic.Int32

	mu       sync.Mutex
	requests []*http.Request
}

// Do records the request and returns the configured response.
func (s *StubDoer) Do(req *http.Request) (*http.Response, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	status := s.Status
	if status == 0 {
		status = http.StatusOK
	}
	body := s.Body
	if b, ok := s.Bodies[req.URL.Path]; ok {
		body = b
	}
	header := make(http.Header)
	for k, v := range s.Header {
		header[k] = append([]string(nil), v...)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

// Requests returns the requests seen so far.
func (s *StubDoer) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*http.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request or nil.
func (s *StubDoer) LastRequest() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}
