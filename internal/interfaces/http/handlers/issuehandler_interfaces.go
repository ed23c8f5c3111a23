package handlers

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/shared/authorization"
)

// issueService is the slice of the issue ServiceDDD used by IssueHandler.
type issueService interface {
	SubmitIssue(ctx context.Context, actor authorization.Actor, req dto.SubmitIssueRequest) (*dto.IssueDTO, error)
	ApproveIssue(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error)
	RejectIssue(ctx context.Context, actor authorization.Actor, issueID string, req dto.RejectIssueRequest) (*dto.IssueDTO, error)
	StartReview(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error)
	ResolveIssue(ctx context.Context, actor authorization.Actor, issueID string, req dto.ResolveIssueRequest) (*dto.IssueDTO, error)
	ReResolveIssue(ctx context.Context, actor authorization.Actor, issueID string, req dto.ResolveIssueRequest) (*dto.IssueDTO, error)
	SupportIssue(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error)
	ContestIssue(ctx context.Context, actor authorization.Actor, issueID string, req dto.ContestIssueRequest) (*dto.ContestResultDTO, error)
	DecideContest(ctx context.Context, actor authorization.Actor, issueID string, req dto.ContestDecisionRequest) (*dto.IssueDTO, error)
	RevalidationVote(ctx context.Context, actor authorization.Actor, issueID string, req dto.RevalidationVoteRequest) (*dto.VoteResultDTO, error)
	UpdateIssueFields(ctx context.Context, actor authorization.Actor, issueID string, req dto.UpdateIssueFieldsRequest) (*dto.IssueDTO, error)
	GetIssue(ctx context.Context, issueID string) (*dto.IssueDetailDTO, error)
	ListIssues(ctx context.Context, req dto.ListIssuesRequest) (*dto.ListIssuesResponse, error)
	AddComment(ctx context.Context, actor authorization.Actor, issueID string, req dto.AddCommentRequest) (*dto.CommentDTO, error)
	AddProposal(ctx context.Context, actor authorization.Actor, issueID string, req dto.AddProposalRequest) (*dto.ProposalDTO, error)
	VoteProposal(ctx context.Context, actor authorization.Actor, proposalID string) (*dto.ProposalDTO, error)
}
