package server

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/osse101/GrowPot_Go/internal/logger"
)

// AuthMiddleware checks the API key on everything but PublicPaths.
// An empty key disables the check for local single-player use.
func AuthMiddleware(apiKey string, guard *RequestGuard) func(http.Handler) http.Handler {
	if apiKey == "" {
		slog.Default().Warn(LogMsgAuthDisabled)
		return func(next http.Handler) http.Handler { return next }
	}
	want := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			got := presentedKey(r)
			if subtle.ConstantTimeCompare([]byte(got), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := guard.ClientIP(r)
			failures := guard.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"path", r.URL.Path,
				"ip", ip,
				"has_key", got != "",
				"failures", failures)
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// presentedKey reads the key from the header, or from the query string on
// the stream handshake where browsers cannot set headers.
func presentedKey(r *http.Request) string {
	if key := r.Header.Get(HeaderAPIKey); key != "" {
		return key
	}
	if r.URL.Path == StreamPath {
		return r.URL.Query().Get(QueryAPIKey)
	}
	return ""
}
