package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusvoice/internal/domain/department"
	"campusvoice/internal/infrastructure/persistence/mappers"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/db"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/mapper"
)

type DepartmentRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDepartmentRepository(gdb *gorm.DB, logger logger.Interface) department.Repository {
	return &DepartmentRepositoryImpl{db: gdb, logger: logger}
}

func (r *DepartmentRepositoryImpl) Create(ctx context.Context, d *department.Department) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.DepartmentToModel(d)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("department code already exists", d.Code())
		}
		r.logger.Errorw("failed to create department", "code", d.Code(), "error", err)
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

func (r *DepartmentRepositoryImpl) GetByID(ctx context.Context, departmentID string) (*department.Department, error) {
	var model models.DepartmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", departmentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("department not found", departmentID)
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return mappers.DepartmentToDomain(&model)
}

func (r *DepartmentRepositoryImpl) Exists(ctx context.Context, departmentID string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.DepartmentModel{}).
		Where("id = ?", departmentID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check department: %w", err)
	}
	return count > 0, nil
}

func (r *DepartmentRepositoryImpl) List(ctx context.Context) ([]*department.Department, error) {
	var list []*models.DepartmentModel
	if err := db.GetTxFromContext(ctx, r.db).Order("code ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return mapper.MapSliceWithError(list, mappers.DepartmentToDomain)
}
