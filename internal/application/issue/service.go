package issue

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/application/issue/usecases"
	domain "campusvoice/internal/domain/issue"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/services/markdown"
)

// Repositories groups the persistence ports of the issue context.
type Repositories struct {
	Issues    domain.Repository
	Supports  domain.SupportRepository
	Contests  domain.ContestRepository
	Votes     domain.RevalidationVoteRepository
	Timeline  domain.TimelineRepository
	Comments  domain.CommentRepository
	Proposals domain.ProposalRepository
}

type ServiceDDD struct {
	logger logger.Interface

	submitIssue       *usecases.SubmitIssueUseCase
	approveIssue      *usecases.ApproveIssueUseCase
	rejectIssue       *usecases.RejectIssueUseCase
	startReview       *usecases.StartReviewUseCase
	resolveIssue      *usecases.ResolveIssueUseCase
	reResolveIssue    *usecases.ReResolveIssueUseCase
	supportIssue      *usecases.SupportIssueUseCase
	contestIssue      *usecases.ContestIssueUseCase
	decideContest     *usecases.DecideContestUseCase
	revalidationVote  *usecases.RevalidationVoteUseCase
	updateIssueFields *usecases.UpdateIssueFieldsUseCase
	getIssue          *usecases.GetIssueUseCase
	listIssues        *usecases.ListIssuesUseCase
	addComment        *usecases.AddCommentUseCase
	addProposal       *usecases.AddProposalUseCase
	voteProposal      *usecases.VoteProposalUseCase
}

func NewServiceDDD(
	repos Repositories,
	users usecases.CredibilityStore,
	departments usecases.DepartmentChecker,
	tx usecases.TransactionRunner,
	publisher events.EventPublisher,
	committed events.EventPublisher,
	markdownService markdown.MarkdownService,
	clock usecases.Clock,
	logger logger.Interface,
) *ServiceDDD {
	store := usecases.NewIssueStore(repos.Issues, repos.Timeline, publisher, committed, tx, logger)
	scorer := usecases.NewScorer(repos.Supports)

	return &ServiceDDD{
		logger: logger,

		submitIssue:       usecases.NewSubmitIssueUseCase(store, repos.Supports, users, departments, tx, clock, logger),
		approveIssue:      usecases.NewApproveIssueUseCase(repos.Issues, store, scorer, tx, clock, logger),
		rejectIssue:       usecases.NewRejectIssueUseCase(repos.Issues, store, scorer, users, tx, clock, logger),
		startReview:       usecases.NewStartReviewUseCase(repos.Issues, store, scorer, tx, clock, logger),
		resolveIssue:      usecases.NewResolveIssueUseCase(repos.Issues, store, scorer, repos.Supports, users, tx, clock, logger),
		reResolveIssue:    usecases.NewReResolveIssueUseCase(repos.Issues, store, scorer, tx, clock, logger),
		supportIssue:      usecases.NewSupportIssueUseCase(repos.Issues, repos.Supports, store, scorer, tx, clock, logger),
		contestIssue:      usecases.NewContestIssueUseCase(repos.Issues, repos.Contests, store, scorer, tx, clock, logger),
		decideContest:     usecases.NewDecideContestUseCase(repos.Issues, store, scorer, repos.Contests, users, tx, clock, logger),
		revalidationVote:  usecases.NewRevalidationVoteUseCase(repos.Issues, repos.Votes, store, scorer, tx, clock, logger),
		updateIssueFields: usecases.NewUpdateIssueFieldsUseCase(repos.Issues, store, scorer, repos.Supports, repos.Contests, tx, clock, logger),
		getIssue:          usecases.NewGetIssueUseCase(repos.Issues, repos.Timeline, repos.Comments, repos.Proposals, scorer, markdownService, clock, logger),
		listIssues:        usecases.NewListIssuesUseCase(repos.Issues, scorer, clock, logger),
		addComment:        usecases.NewAddCommentUseCase(repos.Issues, repos.Comments, markdownService, clock, logger),
		addProposal:       usecases.NewAddProposalUseCase(repos.Issues, repos.Proposals, markdownService, clock, logger),
		voteProposal:      usecases.NewVoteProposalUseCase(repos.Proposals, tx, markdownService, clock, logger),
	}
}

func (s *ServiceDDD) SubmitIssue(ctx context.Context, actor authorization.Actor, req dto.SubmitIssueRequest) (*dto.IssueDTO, error) {
	return s.submitIssue.Execute(ctx, actor, req)
}

func (s *ServiceDDD) ApproveIssue(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error) {
	return s.approveIssue.Execute(ctx, actor, issueID)
}

func (s *ServiceDDD) RejectIssue(ctx context.Context, actor authorization.Actor, issueID string, req dto.RejectIssueRequest) (*dto.IssueDTO, error) {
	return s.rejectIssue.Execute(ctx, actor, issueID, req)
}

func (s *ServiceDDD) StartReview(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error) {
	return s.startReview.Execute(ctx, actor, issueID)
}

func (s *ServiceDDD) ResolveIssue(ctx context.Context, actor authorization.Actor, issueID string, req dto.ResolveIssueRequest) (*dto.IssueDTO, error) {
	return s.resolveIssue.Execute(ctx, actor, issueID, req)
}

func (s *ServiceDDD) ReResolveIssue(ctx context.Context, actor authorization.Actor, issueID string, req dto.ResolveIssueRequest) (*dto.IssueDTO, error) {
	return s.reResolveIssue.Execute(ctx, actor, issueID, req)
}

func (s *ServiceDDD) SupportIssue(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error) {
	return s.supportIssue.Execute(ctx, actor, issueID)
}

func (s *ServiceDDD) ContestIssue(ctx context.Context, actor authorization.Actor, issueID string, req dto.ContestIssueRequest) (*dto.ContestResultDTO, error) {
	return s.contestIssue.Execute(ctx, actor, issueID, req)
}

func (s *ServiceDDD) DecideContest(ctx context.Context, actor authorization.Actor, issueID string, req dto.ContestDecisionRequest) (*dto.IssueDTO, error) {
	return s.decideContest.Execute(ctx, actor, issueID, req)
}

func (s *ServiceDDD) RevalidationVote(ctx context.Context, actor authorization.Actor, issueID string, req dto.RevalidationVoteRequest) (*dto.VoteResultDTO, error) {
	return s.revalidationVote.Execute(ctx, actor, issueID, req)
}

func (s *ServiceDDD) UpdateIssueFields(ctx context.Context, actor authorization.Actor, issueID string, req dto.UpdateIssueFieldsRequest) (*dto.IssueDTO, error) {
	return s.updateIssueFields.Execute(ctx, actor, issueID, req)
}

func (s *ServiceDDD) GetIssue(ctx context.Context, issueID string) (*dto.IssueDetailDTO, error) {
	return s.getIssue.Execute(ctx, issueID)
}

func (s *ServiceDDD) ListIssues(ctx context.Context, req dto.ListIssuesRequest) (*dto.ListIssuesResponse, error) {
	return s.listIssues.Execute(ctx, req)
}

func (s *ServiceDDD) AddComment(ctx context.Context, actor authorization.Actor, issueID string, req dto.AddCommentRequest) (*dto.CommentDTO, error) {
	return s.addComment.Execute(ctx, actor, issueID, req)
}

func (s *ServiceDDD) AddProposal(ctx context.Context, actor authorization.Actor, issueID string, req dto.AddProposalRequest) (*dto.ProposalDTO, error) {
	return s.addProposal.Execute(ctx, actor, issueID, req)
}

func (s *ServiceDDD) VoteProposal(ctx context.Context, actor authorization.Actor, proposalID string) (*dto.ProposalDTO, error) {
	return s.voteProposal.Execute(ctx, actor, proposalID)
}
