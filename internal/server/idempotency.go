package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GrowPot_Go/internal/logger"
)

// cachedResponse is a completed response kept for replay
type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// IdempotencyCache remembers responses to mutating requests by their
// Idempotency-Key so a retried intent is applied once.
type IdempotencyCache struct {
	lru *expirable.LRU[string, *cachedResponse]
}

// NewIdempotencyCache creates a cache holding up to size responses for ttl
func NewIdempotencyCache(size int, ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyCache{
		lru: expirable.NewLRU[string, *cachedResponse](size, nil, ttl),
	}
}

// Len returns the number of cached responses
func (c *IdempotencyCache) Len() int {
	return c.lru.Len()
}

func cacheKey(r *http.Request, key string) string {
	return r.Method + " " + r.URL.Path + " " + key
}

// recordingWriter tees the response into a buffer
type recordingWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (rw *recordingWriter) WriteHeader(status int) {
	if rw.status == 0 {
		rw.status = status
	}
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *recordingWriter) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	rw.body.Write(b)
	return rw.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response for a repeated
// POST or PUT carrying the same Idempotency-Key. Server errors are not
// stored so the client can retry them.
func IdempotencyMiddleware(cache *IdempotencyCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderIdempotencyKey)
			if cache == nil || key == "" || len(key) > MaxIdempotencyKeyLen ||
				(r.Method != http.MethodPost && r.Method != http.MethodPut) {
				next.ServeHTTP(w, r)
				return
			}

			ck := cacheKey(r, key)
			if cached, ok := cache.lru.Get(ck); ok {
				logger.FromContext(r.Context()).Debug(LogMsgIdempotentReplay, "path", r.URL.Path)
				if cached.contentType != "" {
					w.Header().Set("Content-Type", cached.contentType)
				}
				w.Header().Set(HeaderIdempotentReplay, "true")
				w.WriteHeader(cached.status)
				_, _ = w.Write(cached.body)
				return
			}

			rec := &recordingWriter{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			if rec.status != 0 && rec.status < http.StatusInternalServerError {
				cache.lru.Add(ck, &cachedResponse{
					status:      rec.status,
					contentType: rec.Header().Get("Content-Type"),
					body:        rec.body.Bytes(),
				})
			}
		})
	}
}
