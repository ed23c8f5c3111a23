package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/infrastructure/ratelimit"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

// RateLimiter throttles student participation actions per user, falling
// back to the client IP for anonymous callers.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if actor, ok := authorization.ActorFromContext(c); ok {
			key = "user:" + actor.ID
		}

		decision, err := rl.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// fail open when the backing store is down
			rl.logger.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(decision.ResetIn.Seconds())+1))
			appErr := errors.NewTooManyRequestsError("too many requests, please slow down")
			_ = c.Error(appErr)
			utils.ErrorResponseWithError(c, appErr)
			c.Abort()
			return
		}

		c.Next()
	}
}
