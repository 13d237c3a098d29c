package metrics

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of one upstream's call stats.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Recorder keeps in-memory counters per upstream and per scrape type, and
// mirrors each observation to OpenTelemetry when Setup enabled it. A nil
// *Recorder is valid and records nothing.
type Recorder struct {
	mu        sync.Mutex
	upstreams map[string]*Snapshot
	scrapes   map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		upstreams: make(map[string]*Snapshot),
		scrapes:   make(map[string]int),
		otel:      otel,
	}
}

// RecordProviderAttempt counts one upstream call and keeps its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.update(provider, func(s *Snapshot) {
		s.Calls++
		s.LastCallLatency = duration
		if err != nil {
			s.Errors++
		}
	})
	r.otel.recordProviderAttempt(provider, duration, err)
}

// RecordRateLimit counts a 429 from provider. A zero retryAfter keeps the
// previous value.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}
	r.update(provider, func(s *Snapshot) {
		s.RateLimitHits++
		if retryAfter > 0 {
			s.LastRetryAfter = retryAfter
		}
	})
	r.otel.recordRateLimit(provider, retryAfter)
}

// RecordHTTPRequest is exported to OpenTelemetry only.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, route, status, duration)
}

// RecordScrape counts a normalizer request by type and outcome.
func (r *Recorder) RecordScrape(requestType string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.scrapes[requestType]++
	r.mu.Unlock()
	r.otel.recordScrape(requestType, duration, err)
}

// Snapshot returns a copy of provider's stats; unknown providers are zero.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.upstreams[provider]; ok {
		return *s
	}
	return Snapshot{}
}

func (r *Recorder) ProviderCalls(provider string) int  { return r.Snapshot(provider).Calls }
func (r *Recorder) ProviderErrors(provider string) int { return r.Snapshot(provider).Errors }
func (r *Recorder) RateLimitHits(provider string) int  { return r.Snapshot(provider).RateLimitHits }

func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// ScrapeCount returns how many scrapes of requestType were recorded.
func (r *Recorder) ScrapeCount(requestType string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scrapes[requestType]
}

func (r *Recorder) update(provider string, fn func(*Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.upstreams[provider]
	if !ok {
		s = &Snapshot{}
		r.upstreams[provider] = s
	}
	fn(s)
}
