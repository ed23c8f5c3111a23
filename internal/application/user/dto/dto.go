package dto

import (
	"time"

	"campusvoice/internal/domain/user"
)

// CreateUserRequest registers a campus member.
type CreateUserRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Role         string `json:"role" binding:"required,oneof=ADMIN STUDENT admin student"`
	DepartmentID string `json:"department_id,omitempty"`
}

type ListUsersRequest struct {
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	Role         string `form:"role"`
	DepartmentID string `form:"department_id"`
}

// AdjustCredibilityRequest applies one named credibility rule.
type AdjustCredibilityRequest struct {
	Rule string `json:"rule" binding:"required,oneof=ISSUE_RESOLVED SUPPORTED_RESOLVED FAKE_REPORT MALICIOUS_CONTEST"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DisplayName  string    `json:"display_name"`
	Initials     string    `json:"initials"`
	Role         string    `json:"role"`
	Credibility  int       `json:"credibility"`
	DepartmentID string    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListUsersResponse struct {
	Items    []*UserResponse `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type CredibilityResponse struct {
	UserID      string `json:"user_id"`
	Rule        string `json:"rule"`
	Credibility int    `json:"credibility"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID(),
		Name:         u.Name().String(),
		DisplayName:  u.Name().DisplayName(),
		Initials:     u.Name().Initials(),
		Role:         u.Role().String(),
		Credibility:  u.Credibility(),
		DepartmentID: u.DepartmentID(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}
