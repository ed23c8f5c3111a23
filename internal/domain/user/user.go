package user

import (
	"fmt"
	"time"

	vo "campusvoice/internal/domain/user/value_objects"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/id"
)

// User is a campus member. Students report, support, contest and vote;
// admins run the issue lifecycle for their department.
type User struct {
	id           string
	name         *vo.Name
	role         authorization.UserRole
	credibility  int
	departmentID string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser registers a member with the default credibility. Only admins
// belong to a department.
func NewUser(name string, role authorization.UserRole, departmentID string, now time.Time) (*User, error) {
	n, err := vo.NewName(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role", role.String())
	}
	if departmentID != "" && !role.IsAdmin() {
		return nil, errors.NewValidationError("only admins can belong to a department")
	}

	return &User{
		id:           id.NewUserID(),
		name:         n,
		role:         role,
		credibility:  DefaultCredibility,
		departmentID: departmentID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(userID, name string, role authorization.UserRole, credibility int, departmentID string, createdAt, updatedAt time.Time) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}
	n, err := vo.NewName(name)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           userID,
		name:         n,
		role:         role,
		credibility:  ClampCredibility(credibility),
		departmentID: departmentID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() string                   { return u.id }
func (u *User) Name() *vo.Name               { return u.name }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) Credibility() int             { return u.credibility }
func (u *User) DepartmentID() string         { return u.departmentID }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// Actor returns the identity the user acts under.
func (u *User) Actor() authorization.Actor {
	return authorization.Actor{ID: u.id, Role: u.role, Name: u.name.DisplayName()}
}

// ApplyCredibility applies a rule and returns the delta actually applied
// after clamping.
func (u *User) ApplyCredibility(rule CredibilityRule, now time.Time) (int, error) {
	if !rule.IsValid() {
		return 0, errors.NewValidationError("unknown credibility rule", string(rule))
	}
	before := u.credibility
	u.credibility = ClampCredibility(before + rule.Delta())
	u.updatedAt = now
	return u.credibility - before, nil
}
