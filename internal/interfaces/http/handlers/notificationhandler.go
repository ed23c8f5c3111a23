package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/application/notification/dto"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type notificationService interface {
	ListNotifications(ctx context.Context, actor authorization.Actor, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error)
	MarkNotificationRead(ctx context.Context, actor authorization.Actor, notificationID string) (*dto.NotificationDTO, error)
}

type NotificationHandler struct {
	service notificationService
	logger  logger.Interface
}

func NewNotificationHandler(service notificationService, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

// ListNotifications godoc
// @Summary List my notifications
// @Description Newest first. The response also carries the unread count.
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=dto.ListNotificationsResponse}
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	pagination := utils.ParsePagination(c)
	req := dto.ListNotificationsRequest{
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		UnreadOnly: c.Query("unread") == "true",
	}

	result, err := h.service.ListNotifications(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkNotificationRead godoc
// @Summary Mark a notification read
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse{data=dto.NotificationDTO}
// @Failure 403 {object} utils.APIResponse "Not your notification"
// @Failure 404 {object} utils.APIResponse "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	result, err := h.service.MarkNotificationRead(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
