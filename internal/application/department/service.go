package department

import (
	"context"
	"time"

	"campusvoice/internal/application/department/dto"
	"campusvoice/internal/application/department/usecases"
	domain "campusvoice/internal/domain/department"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

type ServiceDDD struct {
	createDepartment *usecases.CreateDepartmentUseCase
	listDepartments  *usecases.ListDepartmentsUseCase
}

func NewServiceDDD(repo domain.Repository, clock func() time.Time, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		createDepartment: usecases.NewCreateDepartmentUseCase(repo, clock, logger),
		listDepartments:  usecases.NewListDepartmentsUseCase(repo, logger),
	}
}

func (s *ServiceDDD) CreateDepartment(ctx context.Context, actor authorization.Actor, req dto.CreateDepartmentRequest) (*dto.DepartmentDTO, error) {
	return s.createDepartment.Execute(ctx, actor, req)
}

func (s *ServiceDDD) ListDepartments(ctx context.Context) ([]*dto.DepartmentDTO, error) {
	return s.listDepartments.Execute(ctx)
}
