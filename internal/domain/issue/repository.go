package issue

import (
	"context"
	"time"

	vo "campusvoice/internal/domain/issue/valueobjects"
)

// Repository persists the issue aggregate. Update is a versioned write: it
// fails with a StaleStateError when the row changed since it was read.
type Repository interface {
	Create(ctx context.Context, issue *Issue) error
	GetByID(ctx context.Context, issueID string) (*Issue, error)
	// GetByIDForUpdate reads the issue and locks its row until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, issueID string) (*Issue, error)
	Update(ctx context.Context, issue *Issue) error
	List(ctx context.Context, filter Filter) ([]*Issue, error)
}

// Filter narrows ListIssues. Empty fields match everything.
type Filter struct {
	Status       *vo.IssueStatus
	Category     *vo.Category
	DepartmentID string
	CreatorID    string
}

type SupportRepository interface {
	// Create fails with a DuplicateActionError when the user already
	// supports the issue.
	Create(ctx context.Context, support *Support) error
	Exists(ctx context.Context, issueID, userID string) (bool, error)
	ListByIssue(ctx context.Context, issueID string) ([]*Support, error)
	CountByIssue(ctx context.Context, issueID string) (int, error)
	// CredibilitySums returns Σ supporter credibility per issue.
	CredibilitySums(ctx context.Context, issueIDs []string) (map[string]int, error)
}

type ContestRepository interface {
	Create(ctx context.Context, contest *Contest) error
	Exists(ctx context.Context, issueID, userID string, round int) (bool, error)
	ListByRound(ctx context.Context, issueID string, round int) ([]*Contest, error)
	CountByRound(ctx context.Context, issueID string, round int) (int, error)
}

type RevalidationVoteRepository interface {
	Create(ctx context.Context, vote *RevalidationVote) error
	Exists(ctx context.Context, issueID, userID string, round int) (bool, error)
	Tally(ctx context.Context, issueID string, round int) (VoteTally, error)
	// DeleteByIssue removes every vote ever cast on the issue.
	DeleteByIssue(ctx context.Context, issueID string) error
	CountByIssue(ctx context.Context, issueID string) (int, error)
}

type TimelineRepository interface {
	Append(ctx context.Context, entries ...*TimelineEvent) error
	ListByIssue(ctx context.Context, issueID string) ([]*TimelineEvent, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByIssue(ctx context.Context, issueID string) ([]*Comment, error)
}

type ProposalRepository interface {
	Create(ctx context.Context, proposal *Proposal) error
	GetByID(ctx context.Context, proposalID string) (*Proposal, error)
	ListByIssue(ctx context.Context, issueID string) ([]*Proposal, error)
	// AddVote records the user's upvote and increments the proposal's
	// counter. A second vote fails with a DuplicateActionError.
	AddVote(ctx context.Context, proposalID, userID string, at time.Time) error
}
