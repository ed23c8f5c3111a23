package routes

import (
	"github.com/gin-gonic/gin"

	"campusvoice/internal/domain/permission"
	"campusvoice/internal/interfaces/http/handlers"
)

type UserRouteConfig struct {
	UserHandler *handlers.UserHandler
	Guards      *Guards
}

// SetupUserRoutes configures user management routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	g := cfg.Guards

	users := engine.Group("/users")
	users.Use(g.AuthMiddleware.RequireAuth())
	{
		users.POST("", g.can(permission.ResourceUser, permission.ActionCreate), cfg.UserHandler.CreateUser)
		users.GET("", g.can(permission.ResourceUser, permission.ActionRead), cfg.UserHandler.ListUsers)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		users.GET("/me", cfg.UserHandler.GetMe)

		users.POST("/:id/credibility", g.can(permission.ResourceUser, permission.ActionAdjust), cfg.UserHandler.AdjustCredibility)
	}
}

type DepartmentRouteConfig struct {
	DepartmentHandler *handlers.DepartmentHandler
	Guards            *Guards
}

func SetupDepartmentRoutes(engine *gin.Engine, cfg *DepartmentRouteConfig) {
	g := cfg.Guards

	departments := engine.Group("/departments")
	departments.Use(g.AuthMiddleware.RequireAuth())
	{
		departments.GET("", g.can(permission.ResourceDepartment, permission.ActionRead), cfg.DepartmentHandler.ListDepartments)
		departments.POST("", g.can(permission.ResourceDepartment, permission.ActionCreate), cfg.DepartmentHandler.CreateDepartment)
	}
}

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	Guards              *Guards
}

// SetupNotificationRoutes configures the caller's notification inbox.
func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	g := cfg.Guards

	notifications := engine.Group("/notifications")
	notifications.Use(g.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", g.can(permission.ResourceNotification, permission.ActionRead), cfg.NotificationHandler.ListNotifications)
		notifications.POST("/:id/read", g.can(permission.ResourceNotification, permission.ActionUpdate), cfg.NotificationHandler.MarkNotificationRead)
	}
}
