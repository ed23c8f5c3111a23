package dto

import "time"

// IssueDTO is the wire form of an issue. PriorityScore is computed at read time.
type IssueDTO struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	DescriptionHTML       string     `json:"description_html,omitempty"`
	Category              string     `json:"category"`
	DepartmentID          string     `json:"department_id"`
	Status                string     `json:"status"`
	Urgency               string     `json:"urgency"`
	Deadline              time.Time  `json:"deadline"`
	Overdue               bool       `json:"overdue"`
	CreatorID             string     `json:"creator_id"`
	PriorityScore         float64    `json:"priority_score"`
	SupportCount          int        `json:"support_count"`
	ContestCount          int        `json:"contest_count"`
	Contested             bool       `json:"contested"`
	ContestWindowEnd      *time.Time `json:"contest_window_end,omitempty"`
	RevalidationWindowEnd *time.Time `json:"revalidation_window_end,omitempty"`
	ResolutionSummary     string     `json:"resolution_summary,omitempty"`
	ResolutionEvidenceURL string     `json:"resolution_evidence_url,omitempty"`
	EvidenceURL           string     `json:"evidence_url,omitempty"`
	RejectionReason       string     `json:"rejection_reason,omitempty"`
	ResolutionRound       int        `json:"resolution_round"`
	RevalidationRound     int        `json:"revalidation_round"`
	Version               int        `json:"version"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
	ClosedAt              *time.Time `json:"closed_at,omitempty"`
}

// IssueDetailDTO adds the issue's collections.
type IssueDetailDTO struct {
	IssueDTO
	Timeline  []*TimelineEventDTO `json:"timeline"`
	Comments  []*CommentDTO       `json:"comments"`
	Proposals []*ProposalDTO      `json:"proposals"`
}

type TimelineEventDTO struct {
	ID        uint           `json:"id"`
	Type      string         `json:"type"`
	ActorID   string         `json:"actor_id,omitempty"`
	Note      string         `json:"note,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type CommentDTO struct {
	ID          string    `json:"id"`
	IssueID     string    `json:"issue_id"`
	UserID      string    `json:"user_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProposalDTO struct {
	ID          string    `json:"id"`
	IssueID     string    `json:"issue_id"`
	UserID      string    `json:"user_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	VoteCount   int       `json:"vote_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ContestResultDTO reports a contest and whether it escalated the issue.
type ContestResultDTO struct {
	Issue     *IssueDTO `json:"issue"`
	Escalated bool      `json:"escalated"`
}

// VoteResultDTO reports a revalidation vote and the round's tally.
type VoteResultDTO struct {
	Issue    *IssueDTO `json:"issue"`
	Confirms int       `json:"confirms"`
	Rejects  int       `json:"rejects"`
	Outcome  string    `json:"outcome"`
}

type SubmitIssueRequest struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Description  string     `json:"description" binding:"required,max=5000"`
	Category     string     `json:"category" binding:"required"`
	DepartmentID string     `json:"department_id" binding:"required"`
	Urgency      string     `json:"urgency" binding:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Deadline     *time.Time `json:"deadline"`
	EvidenceURL  string     `json:"evidence_url" binding:"omitempty,url"`
}

type RejectIssueRequest struct {
	Reason   string `json:"reason" binding:"max=2000"`
	MarkFake bool   `json:"mark_fake"`
}

type ResolveIssueRequest struct {
	Summary     string `json:"summary" binding:"required,max=5000"`
	EvidenceURL string `json:"evidence_url" binding:"omitempty,url"`
}

type ContestIssueRequest struct {
	Reason string `json:"reason" binding:"required,max=2000"`
}

type ContestDecisionRequest struct {
	Decision    string `json:"decision" binding:"required,oneof=ACCEPT REJECT"`
	Explanation string `json:"explanation" binding:"max=2000"`
	// Penalize applies the malicious-contest penalty to every contester of
	// the dismissed round. Ignored for ACCEPT.
	Penalize bool `json:"penalize"`
}

type RevalidationVoteRequest struct {
	Vote string `json:"vote" binding:"required,oneof=confirm reject"`
}

// UpdateIssueFieldsRequest is the admin field patch. Absent keys are left
// untouched; unknown keys are refused by the handler.
type UpdateIssueFieldsRequest struct {
	Status                *string  `json:"status"`
	PriorityScore         *float64 `json:"priority_score" binding:"omitempty,gte=0"`
	SupportCount          *int     `json:"support_count" binding:"omitempty,gte=1"`
	ContestCount          *int     `json:"contest_count" binding:"omitempty,gte=0"`
	ResolutionEvidenceURL *string  `json:"resolution_evidence_url" binding:"omitempty,url"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type AddProposalRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// ListIssuesRequest filters and pages the ranked issue list.
type ListIssuesRequest struct {
	Status       string
	Category     string
	DepartmentID string
	CreatorID    string
	Page         int
	PageSize     int
}

type ListIssuesResponse struct {
	Items    []*IssueDTO
	Total    int64
	Page     int
	PageSize int
}
