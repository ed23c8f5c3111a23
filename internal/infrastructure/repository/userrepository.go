package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusvoice/internal/domain/user"
	"campusvoice/internal/infrastructure/persistence/mappers"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/biztime"
	"campusvoice/internal/shared/db"
	"campusvoice/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(gdb *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "user_id", model.ID, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.logger.Infow("user created successfully", "user_id", model.ID, "role", model.Role)
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, userID string) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.NewNotFoundError(userID)
		}
		r.logger.Errorw("failed to get user by ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

type credibilityRow struct {
	ID          string
	Credibility int
}

func (r *UserRepositoryImpl) GetCredibilities(ctx context.Context, userIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []credibilityRow
	err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Select("id, credibility").
		Where("id IN ?", userIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load credibility: %w", err)
	}
	for _, row := range rows {
		out[row.ID] = row.Credibility
	}
	return out, nil
}

// AdjustCredibility clamps in SQL so two concurrent rewards cannot overwrite
// each other.
func (r *UserRepositoryImpl) AdjustCredibility(ctx context.Context, userID string, delta int) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"credibility": gorm.Expr(
				"CASE WHEN credibility + ? < ? THEN ? WHEN credibility + ? > ? THEN ? ELSE credibility + ? END",
				delta, user.MinCredibility, user.MinCredibility,
				delta, user.MaxCredibility, user.MaxCredibility,
				delta,
			),
			"updated_at": biztime.ToMillis(biztime.NowUTC()),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to adjust credibility", "user_id", userID, "delta", delta, "error", result.Error)
		return 0, fmt.Errorf("failed to adjust credibility: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, user.NewNotFoundError(userID)
	}

	var model models.UserModel
	if err := tx.Select("credibility").Where("id = ?", userID).First(&model).Error; err != nil {
		return 0, fmt.Errorf("failed to read adjusted credibility: %w", err)
	}
	return model.Credibility, nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Scopes(
			db.WhereIfNotEmpty("role", filter.Role.String()),
			db.WhereIfNotEmpty("department_id", filter.DepartmentID),
		).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var list []*models.UserModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
