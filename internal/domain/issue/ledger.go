package issue

import (
	"time"

	vo "campusvoice/internal/domain/issue/valueobjects"
)

// Support is a student's endorsement. At most one exists per (issue, user).
type Support struct {
	IssueID   string
	UserID    string
	CreatedAt time.Time
}

// Contest is a student's objection to a resolution or rejection. At most one
// exists per (issue, user, resolution round).
type Contest struct {
	IssueID         string
	UserID          string
	ResolutionRound int
	Reason          string
	CreatedAt       time.Time
}

// RevalidationVote is a verdict on a re-resolution. At most one exists per
// (issue, user, revalidation round).
type RevalidationVote struct {
	IssueID           string
	UserID            string
	RevalidationRound int
	VoteType          vo.VoteType
	CreatedAt         time.Time
}

func NewSupport(issueID, userID string, now time.Time) *Support {
	return &Support{IssueID: issueID, UserID: userID, CreatedAt: now}
}

func NewContest(i *Issue, userID, reason string, now time.Time) *Contest {
	return &Contest{
		IssueID:         i.ID(),
		UserID:          userID,
		ResolutionRound: i.ResolutionRound(),
		Reason:          reason,
		CreatedAt:       now,
	}
}

func NewRevalidationVote(i *Issue, userID string, voteType vo.VoteType, now time.Time) *RevalidationVote {
	return &RevalidationVote{
		IssueID:           i.ID(),
		UserID:            userID,
		RevalidationRound: i.RevalidationRound(),
		VoteType:          voteType,
		CreatedAt:         now,
	}
}

// VoteTally counts the votes of one revalidation round.
type VoteTally struct {
	Confirms int
	Rejects  int
}
