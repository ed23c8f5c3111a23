package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler reports on db and, when configured, redis. rdb may be nil.
func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: rdb}
}

// HealthCheck godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"status": "ok", "database": "ok"}
	code := http.StatusOK

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status["status"], status["database"] = "degraded", "unreachable"
		code = http.StatusServiceUnavailable
	}
	if h.redis != nil {
		status["redis"] = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			status["status"], status["redis"] = "degraded", "unreachable"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, status)
}
