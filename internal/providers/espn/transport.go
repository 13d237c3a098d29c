package espn

import (
	"net/http"
	"strings"

	"github.com/preston-bernstein/sports-intel-service/internal/providers"
)

func resolveHTTPClient(client providers.Doer) providers.Doer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveUserAgent(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return defaultUserAgent
	}
	return ua
}
