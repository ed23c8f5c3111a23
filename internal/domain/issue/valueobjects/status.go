package valueobjects

import (
	"fmt"
	"slices"
)

type IssueStatus string

const (
	StatusPendingApproval     IssueStatus = "PENDING_APPROVAL"
	StatusOpen                IssueStatus = "OPEN"
	StatusInReview            IssueStatus = "IN_REVIEW"
	StatusResolved            IssueStatus = "RESOLVED"
	StatusRejected            IssueStatus = "REJECTED"
	StatusPendingRevalidation IssueStatus = "PENDING_REVALIDATION"
	StatusReResolved          IssueStatus = "RE_RESOLVED"
	StatusFinalClosed         IssueStatus = "FINAL_CLOSED"
)

var issueStatusTransitions = map[IssueStatus][]IssueStatus{
	StatusPendingApproval: {
		StatusOpen,
		StatusRejected,
	},
	StatusOpen: {
		StatusInReview,
		StatusResolved,
	},
	StatusInReview: {
		StatusResolved,
	},
	StatusResolved: {
		StatusPendingRevalidation,
	},
	StatusRejected: {
		StatusPendingRevalidation,
	},
	StatusPendingRevalidation: {
		StatusOpen,
		StatusReResolved,
	},
	StatusReResolved: {
		StatusFinalClosed,
		StatusOpen,
	},
	StatusFinalClosed: {},
}

// patchableTransitions are the moves a direct field update may make. They
// change nothing but the status.
var patchableTransitions = map[IssueStatus][]IssueStatus{
	StatusPendingApproval: {StatusOpen},
	StatusOpen:            {StatusInReview},
}

// AllStatuses lists every lifecycle status in lifecycle order.
var AllStatuses = []IssueStatus{
	StatusPendingApproval,
	StatusOpen,
	StatusInReview,
	StatusResolved,
	StatusRejected,
	StatusPendingRevalidation,
	StatusReResolved,
	StatusFinalClosed,
}

func (s IssueStatus) String() string {
	return string(s)
}

func (s IssueStatus) IsValid() bool {
	_, ok := issueStatusTransitions[s]
	return ok
}

func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	return slices.Contains(issueStatusTransitions[s], next)
}

// CanPatchTo reports whether a direct field update may move the status.
func (s IssueStatus) CanPatchTo(next IssueStatus) bool {
	return slices.Contains(patchableTransitions[s], next)
}

// IsTerminal reports whether no transition leaves the status.
func (s IssueStatus) IsTerminal() bool {
	return s == StatusFinalClosed
}

// IsContestable reports whether students may file contests in this status.
func (s IssueStatus) IsContestable() bool {
	return s == StatusResolved || s == StatusRejected
}

// AllowsContestedFlag reports whether the contested flag may be set.
func (s IssueStatus) AllowsContestedFlag() bool {
	switch s {
	case StatusResolved, StatusRejected, StatusPendingRevalidation, StatusReResolved:
		return true
	}
	return false
}

// IsUnresolved reports whether the issue still awaits a resolution.
func (s IssueStatus) IsUnresolved() bool {
	return s == StatusPendingApproval || s == StatusOpen || s == StatusInReview
}

// AcceptsSupport reports whether new supports may be recorded.
func (s IssueStatus) AcceptsSupport() bool {
	return s != StatusFinalClosed && s != StatusRejected
}

func NewIssueStatus(s string) (IssueStatus, error) {
	status := IssueStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid issue status: %s", s)
	}
	return status, nil
}
