package routes

import (
	"github.com/gin-gonic/gin"

	"campusvoice/internal/interfaces/http/middleware"
)

// Guards bundles the middlewares shared by every route group.
type Guards struct {
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter // nil when rate limiting is disabled
}

func (g *Guards) can(resource, action string) gin.HandlerFunc {
	return g.PermissionMiddleware.RequirePermission(resource, action)
}

// limit returns the per-caller rate limiter, or a pass-through handler when
// rate limiting is disabled.
func (g *Guards) limit() gin.HandlerFunc {
	if g.RateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return g.RateLimiter.Limit()
}
