package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"campusvoice/internal/domain/issue"
	vo "campusvoice/internal/domain/issue/valueobjects"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/biztime"
	"campusvoice/internal/shared/mapper"
)

// IssueMapper converts the issue aggregate and its ledgers to rows and back.
type IssueMapper interface {
	ToModel(i *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)
	ToDomainList(models []*models.IssueModel) ([]*issue.Issue, error)

	SupportToModel(s *issue.Support) *models.SupportModel
	SupportToDomain(model *models.SupportModel) *issue.Support
	ContestToModel(c *issue.Contest) *models.ContestModel
	ContestToDomain(model *models.ContestModel) *issue.Contest
	VoteToModel(v *issue.RevalidationVote) *models.RevalidationVoteModel

	TimelineToModel(e *issue.TimelineEvent) (*models.TimelineEventModel, error)
	TimelineToDomain(model *models.TimelineEventModel) (*issue.TimelineEvent, error)
	CommentToModel(c *issue.Comment) *models.IssueCommentModel
	CommentToDomain(model *models.IssueCommentModel) *issue.Comment
	ProposalToModel(p *issue.Proposal) *models.ProposalModel
	ProposalToDomain(model *models.ProposalModel) *issue.Proposal
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(i *issue.Issue) *models.IssueModel {
	return &models.IssueModel{
		ID:                    i.ID(),
		Title:                 i.Title(),
		Description:           i.Description(),
		Category:              i.Category().String(),
		DepartmentID:          i.DepartmentID(),
		Status:                i.Status().String(),
		Urgency:               i.Urgency().String(),
		Deadline:              biztime.ToMillis(i.Deadline()),
		CreatorID:             i.CreatorID(),
		PriorityScore:         i.PriorityScore(),
		SupportCount:          i.SupportCount(),
		ContestCount:          i.ContestCount(),
		Contested:             i.IsContested(),
		ContestWindowEnd:      biztime.OptionalToMillis(i.ContestWindowEnd()),
		RevalidationWindowEnd: biztime.OptionalToMillis(i.RevalidationWindowEnd()),
		ResolutionSummary:     i.ResolutionSummary(),
		ResolutionEvidenceURL: i.ResolutionEvidenceURL(),
		EvidenceURL:           i.EvidenceURL(),
		RejectionReason:       i.RejectionReason(),
		ResolutionRound:       i.ResolutionRound(),
		RevalidationRound:     i.RevalidationRound(),
		Rewarded:              i.Rewarded(),
		Version:               i.Version(),
		CreatedAt:             biztime.ToMillis(i.CreatedAt()),
		UpdatedAt:             biztime.ToMillis(i.UpdatedAt()),
		ResolvedAt:            biztime.OptionalToMillis(i.ResolvedAt()),
		ClosedAt:              biztime.OptionalToMillis(i.ClosedAt()),
	}
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	i, err := issue.ReconstructIssue(issue.ReconstructParams{
		ID:                    model.ID,
		Title:                 model.Title,
		Description:           model.Description,
		Category:              vo.Category(model.Category),
		DepartmentID:          model.DepartmentID,
		Status:                vo.IssueStatus(model.Status),
		Urgency:               vo.Urgency(model.Urgency),
		Deadline:              biztime.FromMillis(model.Deadline),
		CreatorID:             model.CreatorID,
		PriorityScore:         model.PriorityScore,
		SupportCount:          model.SupportCount,
		ContestCount:          model.ContestCount,
		Contested:             model.Contested,
		ContestWindowEnd:      biztime.OptionalFromMillis(model.ContestWindowEnd),
		RevalidationWindowEnd: biztime.OptionalFromMillis(model.RevalidationWindowEnd),
		ResolutionSummary:     model.ResolutionSummary,
		ResolutionEvidenceURL: model.ResolutionEvidenceURL,
		EvidenceURL:           model.EvidenceURL,
		RejectionReason:       model.RejectionReason,
		ResolutionRound:       model.ResolutionRound,
		RevalidationRound:     model.RevalidationRound,
		Rewarded:              model.Rewarded,
		Version:               model.Version,
		CreatedAt:             biztime.FromMillis(model.CreatedAt),
		UpdatedAt:             biztime.FromMillis(model.UpdatedAt),
		ResolvedAt:            biztime.OptionalFromMillis(model.ResolvedAt),
		ClosedAt:              biztime.OptionalFromMillis(model.ClosedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct issue (id=%s): %w", model.ID, err)
	}
	return i, nil
}

func (m *IssueMapperImpl) ToDomainList(list []*models.IssueModel) ([]*issue.Issue, error) {
	return mapper.MapSliceWithError(list, m.ToDomain)
}

func (m *IssueMapperImpl) SupportToModel(s *issue.Support) *models.SupportModel {
	return &models.SupportModel{
		IssueID:   s.IssueID,
		UserID:    s.UserID,
		CreatedAt: biztime.ToMillis(s.CreatedAt),
	}
}

func (m *IssueMapperImpl) SupportToDomain(model *models.SupportModel) *issue.Support {
	return &issue.Support{
		IssueID:   model.IssueID,
		UserID:    model.UserID,
		CreatedAt: biztime.FromMillis(model.CreatedAt),
	}
}

func (m *IssueMapperImpl) ContestToModel(c *issue.Contest) *models.ContestModel {
	return &models.ContestModel{
		IssueID:         c.IssueID,
		UserID:          c.UserID,
		ResolutionRound: c.ResolutionRound,
		Reason:          c.Reason,
		CreatedAt:       biztime.ToMillis(c.CreatedAt),
	}
}

func (m *IssueMapperImpl) ContestToDomain(model *models.ContestModel) *issue.Contest {
	return &issue.Contest{
		IssueID:         model.IssueID,
		UserID:          model.UserID,
		ResolutionRound: model.ResolutionRound,
		Reason:          model.Reason,
		CreatedAt:       biztime.FromMillis(model.CreatedAt),
	}
}

func (m *IssueMapperImpl) VoteToModel(v *issue.RevalidationVote) *models.RevalidationVoteModel {
	return &models.RevalidationVoteModel{
		IssueID:           v.IssueID,
		UserID:            v.UserID,
		RevalidationRound: v.RevalidationRound,
		VoteType:          string(v.VoteType),
		CreatedAt:         biztime.ToMillis(v.CreatedAt),
	}
}

func (m *IssueMapperImpl) TimelineToModel(e *issue.TimelineEvent) (*models.TimelineEventModel, error) {
	model := &models.TimelineEventModel{
		ID:        e.ID,
		IssueID:   e.IssueID,
		Type:      string(e.Type),
		ActorID:   e.ActorID,
		Note:      e.Note,
		CreatedAt: biztime.ToMillis(e.CreatedAt),
	}
	if len(e.Metadata) > 0 {
		raw, err := json.Marshal(e.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal timeline metadata (issue=%s): %w", e.IssueID, err)
		}
		model.Metadata = datatypes.JSON(raw)
	}
	return model, nil
}

func (m *IssueMapperImpl) TimelineToDomain(model *models.TimelineEventModel) (*issue.TimelineEvent, error) {
	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal timeline metadata (id=%d): %w", model.ID, err)
		}
	}
	return &issue.TimelineEvent{
		ID:        model.ID,
		IssueID:   model.IssueID,
		Type:      vo.TimelineEventType(model.Type),
		ActorID:   model.ActorID,
		Note:      model.Note,
		Metadata:  metadata,
		CreatedAt: biztime.FromMillis(model.CreatedAt),
	}, nil
}

func (m *IssueMapperImpl) CommentToModel(c *issue.Comment) *models.IssueCommentModel {
	return &models.IssueCommentModel{
		ID:        c.ID(),
		IssueID:   c.IssueID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: biztime.ToMillis(c.CreatedAt()),
	}
}

func (m *IssueMapperImpl) CommentToDomain(model *models.IssueCommentModel) *issue.Comment {
	return issue.ReconstructComment(model.ID, model.IssueID, model.UserID, model.Content, biztime.FromMillis(model.CreatedAt))
}

func (m *IssueMapperImpl) ProposalToModel(p *issue.Proposal) *models.ProposalModel {
	return &models.ProposalModel{
		ID:        p.ID(),
		IssueID:   p.IssueID(),
		UserID:    p.UserID(),
		Content:   p.Content(),
		VoteCount: p.VoteCount(),
		CreatedAt: biztime.ToMillis(p.CreatedAt()),
	}
}

func (m *IssueMapperImpl) ProposalToDomain(model *models.ProposalModel) *issue.Proposal {
	return issue.ReconstructProposal(model.ID, model.IssueID, model.UserID, model.Content, model.VoteCount, biztime.FromMillis(model.CreatedAt))
}
