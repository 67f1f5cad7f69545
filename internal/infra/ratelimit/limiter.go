// Package ratelimit provides per-tier request budgets backed by Redis, with an
// in-process limiter taking over whenever Redis is unreachable or not configured.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/lifecycle"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// DefaultTiers are used for tiers absent from configuration.
//
//nolint:gochecknoglobals
var DefaultTiers = map[entity.Tier]redis_rate.Limit{
	entity.TierFree:  PerMinute(60, 10),
	entity.TierPro:   PerMinute(600, 100),
	entity.TierElite: PerMinute(6000, 1000),
}

// PerMinute builds a limit of rate requests per minute with the given burst.
func PerMinute(rate, burst int) redis_rate.Limit {
	return redis_rate.Limit{
		Rate:   rate,
		Burst:  burst,
		Period: time.Minute,
	}
}

// Limiter decides whether a keyed request fits in its tier's budget.
type Limiter struct {
	redis    *redis_rate.Limiter
	fallback *localLimiter
	tiers    map[entity.Tier]redis_rate.Limit
	failOpen bool
	enabled  bool
	logger   *slog.Logger
}

// Params defines the dependencies of the limiter
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the limiter from configuration and registers Redis and cleanup lifecycle hooks.
func New(params Params) (*Limiter, error) {
	cfg := params.Config.RateLimit
	logger := params.Logger.With(slog.String("component", "ratelimit"))

	limiter := &Limiter{
		fallback: newLocalLimiter(),
		tiers:    make(map[entity.Tier]redis_rate.Limit, len(DefaultTiers)),
		logger:   logger,
	}
	for tier, limit := range DefaultTiers {
		limiter.tiers[tier] = limit
	}

	if cfg == nil || !cfg.Enabled {
		logger.Info("Rate limiting disabled")

		return limiter, nil
	}
	limiter.enabled = true
	limiter.failOpen = cfg.FailOpen

	for name, tierCfg := range cfg.Tiers {
		tier := entity.Tier(name)
		if !tier.IsValid() {
			return nil, errors.Errorf("rate limit configured for unknown tier: %s", name)
		}
		if tierCfg.RequestsPerMinute <= 0 || tierCfg.Burst <= 0 {
			return nil, errors.Errorf("rate limit for tier %s must be positive", name)
		}
		limiter.tiers[tier] = PerMinute(tierCfg.RequestsPerMinute, tierCfg.Burst)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse rate limit redis url")
		}
		rdb = redis.NewClient(opts)
		limiter.redis = redis_rate.NewLimiter(rdb)
	} else {
		logger.Info("No Redis configured for rate limiting, using in-process limiter")
	}

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			go limiter.fallback.cleanup(cleanupCtx)

			if rdb == nil {
				return nil
			}

			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Redis being down is survivable; requests fall back to the local limiter.
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("Rate limit Redis unreachable at startup", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopCleanup()
			if rdb == nil {
				return nil
			}

			return errors.WithStack(rdb.Close())
		},
	})

	return limiter, nil
}

// Enabled reports whether requests should be limited at all.
func (l *Limiter) Enabled() bool {
	return l.enabled
}

// LimitFor returns the budget of a tier, falling back to the free tier for unknown tiers.
func (l *Limiter) LimitFor(tier entity.Tier) redis_rate.Limit {
	if limit, ok := l.tiers[tier]; ok {
		return limit
	}

	return l.tiers[entity.TierFree]
}

// Allow consumes one request from the key's budget. A Redis failure is served by the local limiter;
// when that also fails the result depends on the fail-open setting.
func (l *Limiter) Allow(ctx context.Context, key string, tier entity.Tier) (*redis_rate.Result, error) {
	limit := l.LimitFor(tier)

	if l.redis != nil {
		res, err := l.redis.Allow(ctx, key, limit)
		if err == nil {
			return res, nil
		}
		l.logger.WarnContext(ctx, "Redis rate limit check failed, using local limiter",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	res, err := l.fallback.allow(key, limit)
	if err != nil {
		if l.failOpen {
			return &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: limit.Burst, RetryAfter: -1}, nil
		}

		return nil, err
	}

	return res, nil
}
