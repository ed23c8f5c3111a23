package usecases

import (
	"context"
	"time"

	"campusvoice/internal/application/department/dto"
	"campusvoice/internal/domain/department"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/mapper"
)

type CreateDepartmentUseCase struct {
	repo   department.Repository
	clock  func() time.Time
	logger logger.Interface
}

func NewCreateDepartmentUseCase(repo department.Repository, clock func() time.Time, logger logger.Interface) *CreateDepartmentUseCase {
	return &CreateDepartmentUseCase{repo: repo, clock: clock, logger: logger}
}

func (uc *CreateDepartmentUseCase) Execute(ctx context.Context, actor authorization.Actor, req dto.CreateDepartmentRequest) (*dto.DepartmentDTO, error) {
	if err := actor.Require(authorization.RoleAdmin, "create departments"); err != nil {
		return nil, err
	}

	d, err := department.NewDepartment(req.Name, req.Code, uc.clock())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		uc.logger.Warnw("failed to create department", "code", d.Code(), "error", err)
		return nil, err
	}

	uc.logger.Infow("department created", "department_id", d.ID(), "code", d.Code())
	return dto.ToDepartmentDTO(d), nil
}

type ListDepartmentsUseCase struct {
	repo   department.Repository
	logger logger.Interface
}

func NewListDepartmentsUseCase(repo department.Repository, logger logger.Interface) *ListDepartmentsUseCase {
	return &ListDepartmentsUseCase{repo: repo, logger: logger}
}

func (uc *ListDepartmentsUseCase) Execute(ctx context.Context) ([]*dto.DepartmentDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list departments", "error", err)
		return nil, err
	}
	return mapper.MapSlice(list, dto.ToDepartmentDTO), nil
}
