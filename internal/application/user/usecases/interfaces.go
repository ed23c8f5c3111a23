package usecases

import (
	"context"
	"time"
)

// Clock supplies the current time.
type Clock func() time.Time

// DepartmentChecker resolves department references for admin accounts.
type DepartmentChecker interface {
	Exists(ctx context.Context, departmentID string) (bool, error)
}
