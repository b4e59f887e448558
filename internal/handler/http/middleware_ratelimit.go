package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
)

// RateLimiter counts requests per key within a fixed window.
type RateLimiter interface {
	// Allow records one request for key and reports whether it is still
	// within the budget of the current window.
	Allow(ctx context.Context, key string) (bool, error)
}

// NewRateLimiter returns a Redis backed limiter when cfg.URL is set and an
// in-process one otherwise.
func NewRateLimiter(ctx context.Context, cfg config.Redis) (RateLimiter, error) {
	if cfg.URL == "" {
		return NewMemoryRateLimiter(cfg.RateLimit, cfg.RateWindow), nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return NewRedisRateLimiter(client, cfg.RateLimit, cfg.RateWindow), nil
}

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`

// RedisRateLimiter shares the request counters between server instances.
type RedisRateLimiter struct {
	client *redis.Client
	script *redis.Script
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
		limit:  limit,
		window: window,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ttl := max(l.window.Milliseconds(), 1)
	current, err := l.script.Run(ctx, l.client, []string{"ratelimit:" + key}, ttl).Int64()
	if err != nil {
		return false, fmt.Errorf("error running rate limit script: %w", err)
	}
	return current <= int64(l.limit), nil
}

// Close releases the Redis connection pool.
func (l *RedisRateLimiter) Close() error {
	return l.client.Close()
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

// MemoryRateLimiter keeps the counters of a single server instance.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket

	limit  int
	window time.Duration
	now    func() time.Time
}

func NewMemoryRateLimiter(limit int, window time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		buckets: make(map[string]*rateBucket),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	bucket, ok := l.buckets[key]
	if !ok || !now.Before(bucket.windowEnd) {
		l.sweep(now)
		l.buckets[key] = &rateBucket{count: 1, windowEnd: now.Add(l.window)}
		return l.limit > 0, nil
	}
	if bucket.count >= l.limit {
		return false, nil
	}
	bucket.count++
	return true, nil
}

// sweep drops expired buckets. Called with mu held.
func (l *MemoryRateLimiter) sweep(now time.Time) {
	for key, bucket := range l.buckets {
		if !now.Before(bucket.windowEnd) {
			delete(l.buckets, key)
		}
	}
}

// rateLimit limits the requests a client address sends to the routes of
// name. Limiter failures let the request through.
func (h *Handler) rateLimit(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h.limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := h.limiter.Allow(r.Context(), name+":"+clientIP(r))
			if err != nil {
				logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.rateLimit").Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				h.writeError(w, r, errRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
