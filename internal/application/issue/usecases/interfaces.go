package usecases

import (
	"context"
	"time"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/shared/authorization"
)

// Clock supplies the current time to every use case.
type Clock func() time.Time

// TransactionRunner runs fn inside one database transaction. AfterCommit
// defers work until that transaction has committed.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	AfterCommit(ctx context.Context, fn func(ctx context.Context))
}

// CredibilityStore is the slice of the user repository the lifecycle needs.
type CredibilityStore interface {
	GetCredibilities(ctx context.Context, userIDs []string) (map[string]int, error)
	AdjustCredibility(ctx context.Context, userID string, delta int) (int, error)
}

// DepartmentChecker resolves department references on submission.
type DepartmentChecker interface {
	Exists(ctx context.Context, departmentID string) (bool, error)
}

type SubmitIssueExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor, req dto.SubmitIssueRequest) (*dto.IssueDTO, error)
}

type TransitionExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, issueID string) (*dto.IssueDetailDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, req dto.ListIssuesRequest) (*dto.ListIssuesResponse, error)
}
