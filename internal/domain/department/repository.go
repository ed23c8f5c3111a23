package department

import "context"

type Repository interface {
	// Create fails with a ConflictError when the code is taken.
	Create(ctx context.Context, department *Department) error
	// GetByID fails with a NotFoundError for unknown IDs.
	GetByID(ctx context.Context, departmentID string) (*Department, error)
	Exists(ctx context.Context, departmentID string) (bool, error)
	List(ctx context.Context) ([]*Department, error)
}
