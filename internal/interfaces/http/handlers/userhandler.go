package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/application/user/dto"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type userService interface {
	CreateUser(ctx context.Context, actor authorization.Actor, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, actor authorization.Actor, req dto.ListUsersRequest) (*dto.ListUsersResponse, error)
	AdjustCredibility(ctx context.Context, actor authorization.Actor, userID string, req dto.AdjustCredibilityRequest) (*dto.CredibilityResponse, error)
}

type UserHandler struct {
	service userService
	logger  logger.Interface
}

func NewUserHandler(service userService, logger logger.Interface) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// GetMe godoc
// @Summary Current user
// @Security Bearer
// @Tags users
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.UserResponse}
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	result, err := h.service.GetUser(c.Request.Context(), actor.ID)
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateUser godoc
// @Summary Create a user
// @Security Bearer
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User data"
// @Success 201 {object} utils.APIResponse{data=dto.UserResponse}
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.CreateUser(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.CreatedResponse(c, result, "User created")
}

// ListUsers godoc
// @Summary List users
// @Security Bearer
// @Tags users
// @Produce json
// @Param role query string false "Role filter"
// @Param department_id query string false "Department filter"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	pagination := utils.ParsePagination(c)
	req := dto.ListUsersRequest{
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
		Role:         c.Query("role"),
		DepartmentID: c.Query("department_id"),
	}
	result, err := h.service.ListUsers(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// AdjustCredibility godoc
// @Summary Apply a credibility rule
// @Security Bearer
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.AdjustCredibilityRequest true "Rule"
// @Success 200 {object} utils.APIResponse{data=dto.CredibilityResponse}
// @Router /users/{id}/credibility [post]
func (h *UserHandler) AdjustCredibility(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.AdjustCredibilityRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.AdjustCredibility(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
