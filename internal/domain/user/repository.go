package user

import (
	"context"

	"campusvoice/internal/shared/authorization"
)

// Repository persists campus members and their credibility.
type Repository interface {
	Create(ctx context.Context, user *User) error

	// GetByID fails with a NotFoundError for unknown IDs.
	GetByID(ctx context.Context, userID string) (*User, error)

	// GetCredibilities returns the current score of every known user among
	// userIDs. Unknown IDs are absent from the map.
	GetCredibilities(ctx context.Context, userIDs []string) (map[string]int, error)

	// AdjustCredibility applies delta inside the database and clamps the
	// result, so concurrent adjustments never lose updates. It returns the
	// new score.
	AdjustCredibility(ctx context.Context, userID string, delta int) (int, error)

	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}

// ListFilter narrows user listings.
type ListFilter struct {
	Page         int
	PageSize     int
	Role         authorization.UserRole
	DepartmentID string
}
