package ratelimit

import (
	"context"
	"sync"
	"time"

	"boba-storefront/internal/cache"
)

// Decision is the outcome of one request against the limit.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter counts requests per key over a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps fixed windows in process memory. Counters are scoped
// to one instance; use the redis backend when running more than one.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int
	period  time.Duration
	now     func() time.Time
}

func NewMemoryLimiter(max int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*window),
		max:     max,
		period:  period,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.period)}
		l.windows[key] = w
	}
	w.count++

	if w.count > l.max {
		return Decision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: w.resetAt.Sub(now),
		}, nil
	}
	return Decision{
		Allowed:    true,
		Remaining:  l.max - w.count,
		RetryAfter: 0,
	}, nil
}

// Sweep drops expired windows. Run it periodically so idle keys do not
// accumulate.
func (l *MemoryLimiter) Sweep() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}

// StartSweeper runs Sweep every interval until ctx is done.
func (l *MemoryLimiter) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Sweep()
			}
		}
	}()
}

// RedisLimiter shares fixed windows across instances through redis.
type RedisLimiter struct {
	rdb    *cache.RedisClient
	max    int
	period time.Duration
}

func NewRedisLimiter(rdb *cache.RedisClient, max int, period time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, max: max, period: period}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, ttl, err := l.rdb.IncrWindow(ctx, "ratelimit:"+key, l.period)
	if err != nil {
		return Decision{}, err
	}
	if count > int64(l.max) {
		return Decision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: ttl,
		}, nil
	}
	return Decision{
		Allowed:   true,
		Remaining: l.max - int(count),
	}, nil
}
