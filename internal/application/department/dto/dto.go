package dto

import (
	"time"

	"campusvoice/internal/domain/department"
)

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Code string `json:"code" binding:"required,min=2,max=20"`
}

type DepartmentDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

func ToDepartmentDTO(d *department.Department) *DepartmentDTO {
	if d == nil {
		return nil
	}
	return &DepartmentDTO{
		ID:        d.ID(),
		Name:      d.Name(),
		Code:      d.Code(),
		CreatedAt: d.CreatedAt(),
	}
}
