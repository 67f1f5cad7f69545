package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/ratelimit"
	"marketplace/internal/usecase"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RateLimitMiddleware applies the caller's tier budget to each request.
type RateLimitMiddleware struct {
	limiter      *ratelimit.Limiter
	entitlements usecase.EntitlementUsecase
	logger       *slog.Logger
}

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter      *ratelimit.Limiter
	Entitlements usecase.EntitlementUsecase
	Logger       *slog.Logger
}

// NewRateLimitMiddleware creates a new tier-aware rate limit middleware
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:      params.Limiter,
		entitlements: params.Entitlements,
		logger:       params.Logger,
	}
}

// Handle limits signed-in callers by user id and tier, anonymous callers by IP on the free budget.
// It must be used AFTER OptionalAuth so the identity is known.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.limiter.Enabled() {
			return next(c)
		}

		ctx := c.Request().Context()
		key := "ratelimit:ip:" + c.RealIP()
		tier := entity.TierFree
		if identity := deliverycontext.GetIdentity(c); identity != nil {
			key = "ratelimit:user:" + identity.ID.String()
			tier = m.entitlements.CurrentTier(ctx, identity.ID)
		}

		res, err := m.limiter.Allow(ctx, key, tier)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Rate limit check failed",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return response.Error(c, http.StatusServiceUnavailable, "RATE_LIMIT_UNAVAILABLE", "Service temporarily unavailable", nil)
		}

		setRateLimitHeaders(c, res, m.limiter.LimitFor(tier))

		if res.Allowed == 0 {
			retryAfter := max(int(res.RetryAfter.Seconds()), 1)
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED",
				fmt.Sprintf("Rate limit exceeded. Retry after %d seconds.", retryAfter), nil)
		}

		return next(c)
	}
}

func setRateLimitHeaders(c echo.Context, res *redis_rate.Result, limit redis_rate.Limit) {
	h := c.Response().Header()

	h.Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(res.ResetAfter).Unix(), 10))
}
