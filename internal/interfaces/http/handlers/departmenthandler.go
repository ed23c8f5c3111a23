package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/application/department/dto"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type departmentService interface {
	CreateDepartment(ctx context.Context, actor authorization.Actor, req dto.CreateDepartmentRequest) (*dto.DepartmentDTO, error)
	ListDepartments(ctx context.Context) ([]*dto.DepartmentDTO, error)
}

type DepartmentHandler struct {
	service departmentService
	logger  logger.Interface
}

func NewDepartmentHandler(service departmentService, logger logger.Interface) *DepartmentHandler {
	return &DepartmentHandler{
		service: service,
		logger:  logger,
	}
}

// ListDepartments godoc
// @Summary List departments
// @Security Bearer
// @Tags departments
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.DepartmentDTO}
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	result, err := h.service.ListDepartments(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateDepartment godoc
// @Summary Create a department
// @Security Bearer
// @Tags departments
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Department"
// @Success 201 {object} utils.APIResponse{data=dto.DepartmentDTO}
// @Failure 409 {object} utils.APIResponse "Code already taken"
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.CreateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.CreateDepartment(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Department created")
}
