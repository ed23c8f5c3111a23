package mappers

import (
	"fmt"

	"campusvoice/internal/domain/user"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/biztime"
	"campusvoice/internal/shared/mapper"
)

// UserMapper handles the conversion between users and their rows.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	role, ok := authorization.ParseUserRole(model.Role)
	if !ok {
		return nil, fmt.Errorf("invalid role %q for user %s", model.Role, model.ID)
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Name,
		role,
		model.Credibility,
		model.DepartmentID,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           entity.ID(),
		Name:         entity.Name().String(),
		Role:         entity.Role().String(),
		Credibility:  entity.Credibility(),
		DepartmentID: entity.DepartmentID(),
		CreatedAt:    biztime.ToMillis(entity.CreatedAt()),
		UpdatedAt:    biztime.ToMillis(entity.UpdatedAt()),
	}
}

func (m *UserMapperImpl) ToEntities(list []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSliceWithError(list, m.ToEntity)
}
