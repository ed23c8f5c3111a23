package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/services/markdown"
)

type AddCommentUseCase struct {
	issues   issue.Repository
	comments issue.CommentRepository
	markdown markdown.MarkdownService
	clock    Clock
	logger   logger.Interface
}

func NewAddCommentUseCase(
	issues issue.Repository,
	comments issue.CommentRepository,
	markdownService markdown.MarkdownService,
	clock Clock,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{issues: issues, comments: comments, markdown: markdownService, clock: clock, logger: logger}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string, req dto.AddCommentRequest) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "issue_id", issueID, "actor_id", actor.ID)

	if actor.ID == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if _, err := uc.issues.GetByID(ctx, issueID); err != nil {
		return nil, err
	}

	comment, err := issue.NewComment(issueID, actor.ID, req.Content, uc.clock())
	if err != nil {
		return nil, err
	}
	if err := uc.comments.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "issue_id", issueID, "error", err)
		return nil, err
	}

	html, err := uc.markdown.ToHTMLSanitized(comment.Content())
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("comment added", "issue_id", issueID, "comment_id", comment.ID())
	return dto.ToCommentDTO(comment, html), nil
}

type AddProposalUseCase struct {
	issues    issue.Repository
	proposals issue.ProposalRepository
	markdown  markdown.MarkdownService
	clock     Clock
	logger    logger.Interface
}

func NewAddProposalUseCase(
	issues issue.Repository,
	proposals issue.ProposalRepository,
	markdownService markdown.MarkdownService,
	clock Clock,
	logger logger.Interface,
) *AddProposalUseCase {
	return &AddProposalUseCase{issues: issues, proposals: proposals, markdown: markdownService, clock: clock, logger: logger}
}

// Execute records a student's proposed fix. Closed issues take no proposals.
func (uc *AddProposalUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string, req dto.AddProposalRequest) (*dto.ProposalDTO, error) {
	uc.logger.Infow("executing add proposal use case", "issue_id", issueID, "actor_id", actor.ID)

	if err := actor.Require(authorization.RoleStudent, "propose solutions"); err != nil {
		return nil, err
	}
	i, err := uc.issues.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if i.Status().IsTerminal() {
		return nil, errors.NewInvalidStateError("cannot add a proposal to a closed issue")
	}

	proposal, err := issue.NewProposal(issueID, actor.ID, req.Content, uc.clock())
	if err != nil {
		return nil, err
	}
	if err := uc.proposals.Create(ctx, proposal); err != nil {
		uc.logger.Errorw("failed to save proposal", "issue_id", issueID, "error", err)
		return nil, err
	}

	html, err := uc.markdown.ToHTMLSanitized(proposal.Content())
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("proposal added", "issue_id", issueID, "proposal_id", proposal.ID())
	return dto.ToProposalDTO(proposal, html), nil
}

type VoteProposalUseCase struct {
	proposals issue.ProposalRepository
	tx        TransactionRunner
	markdown  markdown.MarkdownService
	clock     Clock
	logger    logger.Interface
}

func NewVoteProposalUseCase(
	proposals issue.ProposalRepository,
	tx TransactionRunner,
	markdownService markdown.MarkdownService,
	clock Clock,
	logger logger.Interface,
) *VoteProposalUseCase {
	return &VoteProposalUseCase{proposals: proposals, tx: tx, markdown: markdownService, clock: clock, logger: logger}
}

// Execute upvotes a proposal once per student.
func (uc *VoteProposalUseCase) Execute(ctx context.Context, actor authorization.Actor, proposalID string) (*dto.ProposalDTO, error) {
	uc.logger.Infow("executing vote proposal use case", "proposal_id", proposalID, "actor_id", actor.ID)

	if err := actor.Require(authorization.RoleStudent, "vote on proposals"); err != nil {
		return nil, err
	}

	var proposal *issue.Proposal
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.proposals.AddVote(ctx, proposalID, actor.ID, uc.clock()); err != nil {
			return err
		}
		var err error
		proposal, err = uc.proposals.GetByID(ctx, proposalID)
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to vote on proposal", "proposal_id", proposalID, "actor_id", actor.ID, "error", err)
		return nil, err
	}

	html, err := uc.markdown.ToHTMLSanitized(proposal.Content())
	if err != nil {
		return nil, err
	}
	return dto.ToProposalDTO(proposal, html), nil
}
