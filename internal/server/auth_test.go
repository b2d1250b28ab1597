package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "secret-key"
	handler := AuthMiddleware(apiKey, NewRequestGuard(nil, nil))(okHandler())

	tests := []struct {
		name       string
		key        string
		path       string
		wantStatus int
	}{
		{name: "valid key", key: apiKey, path: "/api/v1/garden", wantStatus: http.StatusOK},
		{name: "wrong key", key: "wrong-key", path: "/api/v1/garden", wantStatus: http.StatusUnauthorized},
		{name: "missing key", path: "/api/v1/garden", wantStatus: http.StatusUnauthorized},
		{name: "healthz is public", path: "/healthz", wantStatus: http.StatusOK},
		{name: "version is public", path: "/version", wantStatus: http.StatusOK},
		{name: "metrics is public", path: "/metrics", wantStatus: http.StatusOK},
		{name: "stream accepts query key", path: StreamPath + "?api_key=" + apiKey, wantStatus: http.StatusOK},
		{name: "query key ignored outside stream", path: "/api/v1/garden?api_key=" + apiKey, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_NoKeyConfigured(t *testing.T) {
	handler := AuthMiddleware("", NewRequestGuard(nil, nil))(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/garden/water", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
