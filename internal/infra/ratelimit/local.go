package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	cleanupInterval = 5 * time.Minute
	entryTTL        = 10 * time.Minute
)

type limiterEntry struct {
	limiter    *rate.Limiter
	limit      redis_rate.Limit
	lastAccess atomic.Int64
}

// localLimiter keeps one token bucket per key in process memory.
type localLimiter struct {
	limiters sync.Map
}

func newLocalLimiter() *localLimiter {
	return &localLimiter{}
}

func (l *localLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evictBefore(time.Now().Add(-entryTTL))
		}
	}
}

func (l *localLimiter) evictBefore(cutoff time.Time) {
	l.limiters.Range(func(key, value any) bool {
		entry, ok := value.(*limiterEntry)
		if ok && entry.lastAccess.Load() < cutoff.Unix() {
			l.limiters.Delete(key)
		}

		return true
	})
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	if limit.Rate <= 0 || limit.Period <= 0 {
		return nil, errors.Errorf("invalid limit for key %s", key)
	}
	ratePerSec := float64(limit.Rate) / limit.Period.Seconds()

	entryI, loaded := l.limiters.Load(key)
	if loaded {
		// A tier change swaps the bucket.
		if e, ok := entryI.(*limiterEntry); ok && e.limit != limit {
			l.limiters.Delete(key)
			loaded = false
		}
	}
	if !loaded {
		entryI, _ = l.limiters.LoadOrStore(key, &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(ratePerSec), limit.Burst),
			limit:   limit,
		})
	}

	entry, ok := entryI.(*limiterEntry)
	if !ok {
		return nil, errors.New("invalid limiter entry type")
	}
	entry.lastAccess.Store(time.Now().Unix())

	allowed := entry.limiter.Allow()
	remaining := max(int(entry.limiter.Tokens()), 0)
	interval := time.Duration(float64(time.Second) / ratePerSec)

	res := &redis_rate.Result{
		Limit:      limit,
		Remaining:  remaining,
		RetryAfter: -1,
		ResetAfter: interval,
	}
	if allowed {
		res.Allowed = 1
	} else {
		res.RetryAfter = interval
	}

	return res, nil
}
