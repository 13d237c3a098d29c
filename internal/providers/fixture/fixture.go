// Package fixture serves canned upstream payloads in place of the real ESPN
// and The Odds API hosts, for local development and tests.
package fixture

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"
	"time"
)

//go:embed data/*.json
var payloads embed.FS

// routes maps a URL path suffix to the payload served for it.
var routes = []struct {
	suffix string
	file   string
}{
	{"/schedule", "data/schedule.json"},
	{"/standings", "data/standings.json"},
	{"/scoreboard", "data/scoreboard.json"},
	{"/odds", "data/odds.json"},
}

// Transport is an http.RoundTripper that answers from embedded payloads.
// Timestamps in the payloads are relative to now so upcoming and completed
// events stay on the right side of the clock.
type Transport struct {
	now func() time.Time
}

// New creates a fixture transport with a time source.
func New() *Transport {
	return &Transport{
		now: time.Now,
	}
}

// Client returns an http.Client backed by the transport.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// Do lets the transport stand in directly for an HTTP client.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	return t.RoundTrip(req)
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	file, ok := match(req.URL.Path)
	if !ok {
		return respond(req, http.StatusNotFound, []byte(`{"error":"no fixture for `+req.URL.Path+`"}`)), nil
	}
	body, err := t.render(file)
	if err != nil {
		return nil, err
	}
	return respond(req, http.StatusOK, body), nil
}

func match(path string) (string, bool) {
	path = strings.TrimSuffix(path, "/")
	for _, r := range routes {
		if strings.HasSuffix(path, r.suffix) {
			return r.file, true
		}
	}
	return "", false
}

func (t *Transport) render(file string) ([]byte, error) {
	raw, err := payloads.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", file, err)
	}
	anchor := t.now().UTC().Truncate(time.Hour)
	tmpl, err := template.New(file).Funcs(template.FuncMap{
		"at": func(days int) string {
			return anchor.AddDate(0, 0, days).Format(time.RFC3339)
		},
	}).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", file, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("fixture: render %s: %w", file, err)
	}
	return buf.Bytes(), nil
}

func respond(req *http.Request, status int, body []byte) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode:    status,
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
