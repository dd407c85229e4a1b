package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	h "eventmicrosite/internal/delivery/http/helpers"
)

// RateLimiter is a fixed-window request counter keyed by client IP. Counts
// reset when a client's window elapses; requests over the cap get 429.
type RateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	clients map[string]*rateWindow
	now     func() time.Time
}

type rateWindow struct {
	start time.Time
	count int
}

func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:  window,
		max:     max,
		clients: make(map[string]*rateWindow),
		now:     time.Now,
	}
}

// Middleware applies the limiter to API paths only. Static and media
// traffic is not counted.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}
		if !l.allow(clientIP(r)) {
			h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeRateLimited, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(ip string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	win, ok := l.clients[ip]
	if !ok || now.Sub(win.start) >= l.window {
		// Expired windows for other clients are dropped opportunistically
		// so the map does not grow without bound.
		for k, v := range l.clients {
			if now.Sub(v.start) >= l.window {
				delete(l.clients, k)
			}
		}
		l.clients[ip] = &rateWindow{start: now, count: 1}
		return true
	}
	if win.count >= l.max {
		return false
	}
	win.count++
	return true
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
