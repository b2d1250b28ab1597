package server

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GrowPot_Go/internal/clock"
)

// window counts one client's requests and failed logins since start
type window struct {
	start    time.Time
	requests int
	failures int
}

// RequestGuard keeps per-client request budgets and failed-auth counts.
// Clients idle for a full window are evicted by the LRU.
type RequestGuard struct {
	mu      sync.Mutex
	clock   clock.Clock
	proxies []netip.Prefix
	clients *expirable.LRU[string, *window]
}

// NewRequestGuard creates a guard. Trusted proxies may be addresses or
// CIDR prefixes; unparsable entries are logged and skipped.
func NewRequestGuard(clk clock.Clock, trustedProxies []string) *RequestGuard {
	if clk == nil {
		clk = clock.Real{}
	}
	return &RequestGuard{
		clock:   clk,
		proxies: parseProxies(trustedProxies),
		clients: expirable.NewLRU[string, *window](MaxTrackedClients, nil, RateLimitWindow),
	}
}

func parseProxies(entries []string) []netip.Prefix {
	var out []netip.Prefix
	for _, entry := range entries {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			slog.Default().Warn(LogMsgBadTrustedProxy, "entry", entry)
			continue
		}
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out
}

// windowFor returns the live window for ip. Caller holds mu.
func (g *RequestGuard) windowFor(ip string) *window {
	now := g.clock.Now()
	w, ok := g.clients.Get(ip)
	if !ok || now.Sub(w.start) >= RateLimitWindow {
		w = &window{start: now}
	}
	g.clients.Add(ip, w)
	return w
}

// Allow records a request from ip and reports whether it is within budget
func (g *RequestGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.windowFor(ip)
	w.requests++
	if w.requests <= RateLimitMaxRequests {
		return true
	}
	if w.requests%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// RecordFailedAuth counts a rejected API key and returns the count so far
func (g *RequestGuard) RecordFailedAuth(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.windowFor(ip)
	w.failures++
	if w.failures >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failures)
	}
	return w.failures
}

// ClientIP resolves the caller's address. X-Forwarded-For is honored only
// when the direct peer is a trusted proxy, and then its last hop is used.
func (g *RequestGuard) ClientIP(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" || !g.trusted(remote) {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func (g *RequestGuard) trusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range g.proxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// RateLimitMiddleware rejects clients over their request budget with 429
func RateLimitMiddleware(guard *RequestGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Allow(guard.ClientIP(r)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
