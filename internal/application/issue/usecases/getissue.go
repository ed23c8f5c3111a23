package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/services/markdown"
)

type GetIssueUseCase struct {
	issues    issue.Repository
	timeline  issue.TimelineRepository
	comments  issue.CommentRepository
	proposals issue.ProposalRepository
	scorer    *Scorer
	markdown  markdown.MarkdownService
	clock     Clock
	logger    logger.Interface
}

func NewGetIssueUseCase(
	issues issue.Repository,
	timeline issue.TimelineRepository,
	comments issue.CommentRepository,
	proposals issue.ProposalRepository,
	scorer *Scorer,
	markdownService markdown.MarkdownService,
	clock Clock,
	logger logger.Interface,
) *GetIssueUseCase {
	return &GetIssueUseCase{
		issues:    issues,
		timeline:  timeline,
		comments:  comments,
		proposals: proposals,
		scorer:    scorer,
		markdown:  markdownService,
		clock:     clock,
		logger:    logger,
	}
}

// Execute loads an issue with its timeline, comments and proposals. The
// collections and the score are fetched concurrently.
func (uc *GetIssueUseCase) Execute(ctx context.Context, issueID string) (*dto.IssueDetailDTO, error) {
	i, err := uc.issues.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	now := uc.clock()

	var (
		timeline  []*issue.TimelineEvent
		comments  []*issue.Comment
		proposals []*issue.Proposal
		score     float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		timeline, err = uc.timeline.ListByIssue(gctx, issueID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = uc.comments.ListByIssue(gctx, issueID)
		return err
	})
	g.Go(func() error {
		var err error
		proposals, err = uc.proposals.ListByIssue(gctx, issueID)
		return err
	})
	g.Go(func() error {
		var err error
		score, err = uc.scorer.Score(gctx, i, now)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load issue details", "issue_id", issueID, "error", err)
		return nil, err
	}

	detail := &dto.IssueDetailDTO{
		IssueDTO:  *dto.ToIssueDTO(i, score, now),
		Timeline:  dto.ToTimelineEventDTOs(timeline),
		Comments:  make([]*dto.CommentDTO, 0, len(comments)),
		Proposals: make([]*dto.ProposalDTO, 0, len(proposals)),
	}
	if detail.DescriptionHTML, err = uc.markdown.ToHTMLSanitized(i.Description()); err != nil {
		return nil, err
	}
	for _, c := range comments {
		html, err := uc.markdown.ToHTMLSanitized(c.Content())
		if err != nil {
			return nil, err
		}
		detail.Comments = append(detail.Comments, dto.ToCommentDTO(c, html))
	}
	for _, p := range proposals {
		html, err := uc.markdown.ToHTMLSanitized(p.Content())
		if err != nil {
			return nil, err
		}
		detail.Proposals = append(detail.Proposals, dto.ToProposalDTO(p, html))
	}
	return detail, nil
}
