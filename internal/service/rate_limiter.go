package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateResult describes the outcome of one rate limit check.
type RateResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (RateResult, error)
}

// NewRateLimiter uses shared Redis counters when a client is available and an
// in-process limiter otherwise.
func NewRateLimiter(client *redis.Client) RateLimiter {
	if client == nil {
		return NewMemoryRateLimiter()
	}
	return &redisRateLimiter{client: client, now: time.Now}
}

// fixedWindowScript increments the window counter and sets its expiry on the
// first hit, atomically.
var fixedWindowScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return current
`)

type redisRateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

// Allow counts hits in a fixed window keyed by the window start.
func (l *redisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (RateResult, error) {
	now := l.now()
	windowStart := now.Truncate(window)
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, windowStart.Unix())

	count, err := fixedWindowScript.Run(ctx, l.client, []string{redisKey}, window.Milliseconds()).Int()
	if err != nil {
		return RateResult{Allowed: true, Limit: limit, Remaining: limit}, err
	}

	res := RateResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(limit-count, 0),
	}
	if !res.Allowed {
		res.RetryAfter = windowStart.Add(window).Sub(now)
	}
	return res, nil
}

type memoryLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type memoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*memoryLimiterEntry
	now     func() time.Time
}

const memoryLimiterSweepSize = 10000

func NewMemoryRateLimiter() RateLimiter {
	return &memoryRateLimiter{entries: make(map[string]*memoryLimiterEntry), now: time.Now}
}

// Allow uses a token bucket that refills limit tokens per window.
func (l *memoryRateLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (RateResult, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) > memoryLimiterSweepSize {
		for k, e := range l.entries {
			if now.Sub(e.lastSeen) > window {
				delete(l.entries, k)
			}
		}
	}

	e, ok := l.entries[key]
	if !ok {
		e = &memoryLimiterEntry{limiter: rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)}
		l.entries[key] = e
	}
	e.lastSeen = now

	res := RateResult{Limit: limit}
	r := e.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); !r.OK() || delay > 0 {
		r.CancelAt(now)
		res.RetryAfter = delay
		return res, nil
	}
	res.Allowed = true
	res.Remaining = int(math.Floor(e.limiter.TokensAt(now)))
	return res, nil
}
