package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	staleBucketAge  = time.Hour
	cleanupInterval = 30 * time.Minute
)

type tokenBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-client token bucket. Each client gets capacity
// requests per refill interval, keyed by remote IP. Idle buckets are swept
// by a background goroutine until Stop is called.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	interval time.Duration
	buckets  map[string]*tokenBucket
	stop     chan struct{}
}

// NewRateLimiter creates a limiter allowing capacity requests per interval
// per client and starts its cleanup goroutine.
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity: capacity,
		interval: interval,
		buckets:  make(map[string]*tokenBucket),
		stop:     make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// Allow reports whether the client may make another request now.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	bucket, ok := rl.buckets[client]
	if !ok {
		rl.buckets[client] = &tokenBucket{tokens: rl.capacity - 1, lastRefill: now}
		return true
	}

	if now.Sub(bucket.lastRefill) >= rl.interval {
		bucket.tokens = rl.capacity
		bucket.lastRefill = now
	}
	if bucket.tokens <= 0 {
		return false
	}
	bucket.tokens--
	return true
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for client, bucket := range rl.buckets {
				if now.Sub(bucket.lastRefill) > staleBucketAge {
					delete(rl.buckets, client)
				}
			}
			rl.mu.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// RateLimit rejects requests over the client's budget with 429.
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}
			if !limiter.Allow(client) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
