package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"campusvoice/internal/infrastructure/config"
	"campusvoice/internal/interfaces/http/middleware"
	"campusvoice/internal/interfaces/http/routes"
	"campusvoice/internal/shared/logger"

	_ "campusvoice/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Refusals(r.metrics))

	if r.cfg.Server.EnableSwagger {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	r.engine.GET("/health", r.healthHandler.HealthCheck)

	guards := &routes.Guards{
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.rateLimiter,
	}

	routes.SetupIssueRoutes(r.engine, &routes.IssueRouteConfig{
		IssueHandler: r.issueHandler,
		Guards:       guards,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler: r.userHandler,
		Guards:      guards,
	})
	routes.SetupDepartmentRoutes(r.engine, &routes.DepartmentRouteConfig{
		DepartmentHandler: r.departmentHandler,
		Guards:            guards,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
		Guards:              guards,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
