package mappers

import (
	"campusvoice/internal/domain/department"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/biztime"
)

func DepartmentToModel(d *department.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:        d.ID(),
		Name:      d.Name(),
		Code:      d.Code(),
		CreatedAt: biztime.ToMillis(d.CreatedAt()),
	}
}

func DepartmentToDomain(model *models.DepartmentModel) (*department.Department, error) {
	return department.ReconstructDepartment(model.ID, model.Name, model.Code, biztime.FromMillis(model.CreatedAt))
}
