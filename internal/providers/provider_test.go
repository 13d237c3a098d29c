package providers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDoerFuncAdapts(t *testing.T) {
	var seen string
	d := DoerFunc(func(req *http.Request) (*http.Response, error) {
		seen = req.URL.Path
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("ok"))}, nil
	})
	resp, err := d.Do(httptest.NewRequest(http.MethodGet, "http://x/path", nil))
	if err != nil || resp.StatusCode != http.StatusOK || seen != "/path" {
		t.Fatalf("unexpected result %v %v %q", resp, err, seen)
	}
}

var _ Doer = (*http.Client)(nil)
