package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long a client's bucket survives without requests.
const idleLimiterTTL = time.Hour

// LimitFunc reports the current per-client quota. It is consulted on every
// request so refreshed configuration applies to existing clients too.
type LimitFunc func() (requestsPerMinute, burst int)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limits   LimitFunc
	now      func() time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter returns a limiter whose idle buckets are swept every
// cleanupInterval until ctx is canceled.
func NewRateLimiter(ctx context.Context, limits LimitFunc, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limits:   limits,
		now:      time.Now,
	}
	go rl.cleanupLoop(ctx, cleanupInterval)
	return rl
}

// Allow takes one token from ip's bucket.
func (rl *RateLimiter) Allow(ip string) bool {
	perMinute, burst := rl.limits()
	limit := rate.Limit(float64(perMinute) / 60)
	now := rl.now()

	rl.mu.Lock()
	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(limit, burst)}
		rl.limiters[ip] = entry
	}
	entry.lastAccess = now
	lim := entry.limiter
	rl.mu.Unlock()

	if lim.Limit() != limit {
		lim.SetLimitAt(now, limit)
	}
	if lim.Burst() != burst {
		lim.SetBurstAt(now, burst)
	}
	return lim.AllowN(now, 1)
}

// Middleware rejects requests over quota with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientIP(r)) {
			perMinute, _ := rl.limits()
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(perMinute)))
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) cleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

func (rl *RateLimiter) cleanup() {
	threshold := rl.now().Add(-idleLimiterTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, ip)
		}
	}
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// clientIP uses the connection's address. The service is expected to sit
// directly behind a load balancer that preserves source addresses.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfterSeconds(perMinute int) int {
	if perMinute <= 0 {
		return 60
	}
	s := 60 / perMinute
	if s < 1 {
		s = 1
	}
	return s
}
