package dto

import (
	"time"

	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/mapper"
)

// ToIssueDTO converts an issue. score is the read-time priority score.
func ToIssueDTO(i *issue.Issue, score float64, now time.Time) *IssueDTO {
	if i == nil {
		return nil
	}
	return &IssueDTO{
		ID:                    i.ID(),
		Title:                 i.Title(),
		Description:           i.Description(),
		Category:              i.Category().String(),
		DepartmentID:          i.DepartmentID(),
		Status:                i.Status().String(),
		Urgency:               i.Urgency().String(),
		Deadline:              i.Deadline(),
		Overdue:               i.IsOverdue(now),
		CreatorID:             i.CreatorID(),
		PriorityScore:         score,
		SupportCount:          i.SupportCount(),
		ContestCount:          i.ContestCount(),
		Contested:             i.IsContested(),
		ContestWindowEnd:      i.ContestWindowEnd(),
		RevalidationWindowEnd: i.RevalidationWindowEnd(),
		ResolutionSummary:     i.ResolutionSummary(),
		ResolutionEvidenceURL: i.ResolutionEvidenceURL(),
		EvidenceURL:           i.EvidenceURL(),
		RejectionReason:       i.RejectionReason(),
		ResolutionRound:       i.ResolutionRound(),
		RevalidationRound:     i.RevalidationRound(),
		Version:               i.Version(),
		CreatedAt:             i.CreatedAt(),
		UpdatedAt:             i.UpdatedAt(),
		ResolvedAt:            i.ResolvedAt(),
		ClosedAt:              i.ClosedAt(),
	}
}

func ToTimelineEventDTO(e *issue.TimelineEvent) *TimelineEventDTO {
	return &TimelineEventDTO{
		ID:        e.ID,
		Type:      e.Type.String(),
		ActorID:   e.ActorID,
		Note:      e.Note,
		Metadata:  e.Metadata,
		CreatedAt: e.CreatedAt,
	}
}

func ToTimelineEventDTOs(list []*issue.TimelineEvent) []*TimelineEventDTO {
	return mapper.MapSlice(list, ToTimelineEventDTO)
}

// ToCommentDTO converts a comment; html is its rendered content.
func ToCommentDTO(c *issue.Comment, html string) *CommentDTO {
	return &CommentDTO{
		ID:          c.ID(),
		IssueID:     c.IssueID(),
		UserID:      c.UserID(),
		Content:     c.Content(),
		ContentHTML: html,
		CreatedAt:   c.CreatedAt(),
	}
}

// ToProposalDTO converts a proposal; html is its rendered content.
func ToProposalDTO(p *issue.Proposal, html string) *ProposalDTO {
	return &ProposalDTO{
		ID:          p.ID(),
		IssueID:     p.IssueID(),
		UserID:      p.UserID(),
		Content:     p.Content(),
		ContentHTML: html,
		VoteCount:   p.VoteCount(),
		CreatedAt:   p.CreatedAt(),
	}
}
