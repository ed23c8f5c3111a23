package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type IssueHandler struct {
	service issueService
	logger  logger.Interface
}

func NewIssueHandler(service issueService, logger logger.Interface) *IssueHandler {
	return &IssueHandler{
		service: service,
		logger:  logger,
	}
}

// SubmitIssue godoc
// @Summary Report an issue
// @Description A student reports a campus issue. The reporter is recorded as its first supporter.
// @Security Bearer
// @Tags issues
// @Accept json
// @Produce json
// @Param request body dto.SubmitIssueRequest true "Issue data"
// @Success 201 {object} utils.APIResponse{data=dto.IssueDTO}
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 403 {object} utils.APIResponse "Students only"
// @Failure 404 {object} utils.APIResponse "Department not found"
// @Router /issues [post]
func (h *IssueHandler) SubmitIssue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.SubmitIssueRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.SubmitIssue(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Issue submitted")
}

// ListIssues godoc
// @Summary List issues by priority
// @Description Issues ordered by live priority score, highest first.
// @Security Bearer
// @Tags issues
// @Produce json
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param department_id query string false "Department filter"
// @Param creator_id query string false "Reporter filter"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /issues [get]
func (h *IssueHandler) ListIssues(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	req := dto.ListIssuesRequest{
		Status:       c.Query("status"),
		Category:     c.Query("category"),
		DepartmentID: c.Query("department_id"),
		CreatorID:    c.Query("creator_id"),
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	}

	result, err := h.service.ListIssues(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetIssue godoc
// @Summary Get an issue
// @Description Issue with its timeline, comments and proposals.
// @Security Bearer
// @Tags issues
// @Produce json
// @Param id path string true "Issue ID"
// @Success 200 {object} utils.APIResponse{data=dto.IssueDetailDTO}
// @Failure 404 {object} utils.APIResponse "Issue not found"
// @Router /issues/{id} [get]
func (h *IssueHandler) GetIssue(c *gin.Context) {
	result, err := h.service.GetIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ApproveIssue godoc
// @Summary Approve a pending issue
// @Security Bearer
// @Tags issues
// @Produce json
// @Param id path string true "Issue ID"
// @Success 200 {object} utils.APIResponse{data=dto.IssueDTO}
// @Failure 409 {object} utils.APIResponse "Invalid state or stale update"
// @Router /issues/{id}/approve [post]
func (h *IssueHandler) ApproveIssue(c *gin.Context) {
	h.transition(c, h.service.ApproveIssue)
}

// StartReview godoc
// @Summary Move an open issue into review
// @Security Bearer
// @Tags issues
// @Produce json
// @Param id path string true "Issue ID"
// @Success 200 {object} utils.APIResponse{data=dto.IssueDTO}
// @Failure 409 {object} utils.APIResponse "Invalid state or stale update"
// @Router /issues/{id}/review [post]
func (h *IssueHandler) StartReview(c *gin.Context) {
	h.transition(c, h.service.StartReview)
}

// SupportIssue godoc
// @Summary Support an issue
// @Description Adds the caller's credibility to the issue's priority. One support per student.
// @Security Bearer
// @Tags issues
// @Produce json
// @Param id path string true "Issue ID"
// @Success 200 {object} utils.APIResponse{data=dto.IssueDTO}
// @Failure 409 {object} utils.APIResponse "Already supported or issue closed"
// @Router /issues/{id}/support [post]
func (h *IssueHandler) SupportIssue(c *gin.Context) {
	h.transition(c, h.service.SupportIssue)
}

func (h *IssueHandler) transition(c *gin.Context, fn func(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error)) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	result, err := fn(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RejectIssue godoc
// @Summary Reject an issue
// @Security Bearer
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body dto.RejectIssueRequest true "Reason"
// @Success 200 {object} utils.APIResponse{data=dto.IssueDTO}
// @Router /issues/{id}/reject [post]
func (h *IssueHandler) RejectIssue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.RejectIssueRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.RejectIssue(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ResolveIssue godoc
// @Summary Resolve an issue
// @Description Records the resolution and opens the contest window.
// @Security Bearer
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body dto.ResolveIssueRequest true "Resolution"
// @Success 200 {object} utils.APIResponse{data=dto.IssueDTO}
// @Router /issues/{id}/resolve [post]
func (h *IssueHandler) ResolveIssue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.ResolveIssueRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.ResolveIssue(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReResolveIssue godoc
// @Summary Re-resolve an escalated issue
// @Description Posts a new resolution and opens the revalidation window.
// @Security Bearer
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body dto.ResolveIssueRequest true "Resolution"
// @Success 200 {object} utils.APIResponse{data=dto.IssueDTO}
// @Router /issues/{id}/re-resolve [post]
func (h *IssueHandler) ReResolveIssue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.ResolveIssueRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.ReResolveIssue(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ContestIssue godoc
// @Summary Contest a resolution or rejection
// @Security Bearer
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body dto.ContestIssueRequest true "Reason"
// @Success 201 {object} utils.APIResponse{data=dto.ContestResultDTO}
// @Failure 409 {object} utils.APIResponse "Already contested or window closed"
// @Router /issues/{id}/contests [post]
func (h *IssueHandler) ContestIssue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.ContestIssueRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.ContestIssue(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Contest recorded")
}

// DecideContest godoc
// @Summary Accept or dismiss the contests on an escalated issue
// @Security Bearer
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body dto.ContestDecisionRequest true "Decision"
// @Success 200 {object} utils.APIResponse{data=dto.IssueDTO}
// @Router /issues/{id}/contest-decision [post]
func (h *IssueHandler) DecideContest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.ContestDecisionRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.DecideContest(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RevalidationVote godoc
// @Summary Vote on a re-resolution
// @Security Bearer
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body dto.RevalidationVoteRequest true "confirm or reject"
// @Success 201 {object} utils.APIResponse{data=dto.VoteResultDTO}
// @Router /issues/{id}/revalidation-votes [post]
func (h *IssueHandler) RevalidationVote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.RevalidationVoteRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.RevalidationVote(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Vote recorded")
}

// UpdateIssueFields godoc
// @Summary Patch issue fields
// @Description Admin correction of status, counters, score or evidence URL. Unknown keys are refused.
// @Security Bearer
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body dto.UpdateIssueFieldsRequest true "Fields"
// @Success 200 {object} utils.APIResponse{data=dto.IssueDTO}
// @Router /issues/{id} [patch]
func (h *IssueHandler) UpdateIssueFields(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.UpdateIssueFieldsRequest
	if !bindStrictJSON(c, &req) {
		return
	}
	result, err := h.service.UpdateIssueFields(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment godoc
// @Summary Comment on an issue
// @Security Bearer
// @Tags discussion
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body dto.AddCommentRequest true "Markdown content"
// @Success 201 {object} utils.APIResponse{data=dto.CommentDTO}
// @Router /issues/{id}/comments [post]
func (h *IssueHandler) AddComment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.AddComment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Comment added")
}

// AddProposal godoc
// @Summary Propose a solution
// @Security Bearer
// @Tags discussion
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param request body dto.AddProposalRequest true "Markdown content"
// @Success 201 {object} utils.APIResponse{data=dto.ProposalDTO}
// @Router /issues/{id}/proposals [post]
func (h *IssueHandler) AddProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.AddProposalRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.AddProposal(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Proposal added")
}

// VoteProposal godoc
// @Summary Upvote a proposal
// @Security Bearer
// @Tags discussion
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} utils.APIResponse{data=dto.ProposalDTO}
// @Failure 409 {object} utils.APIResponse "Already voted"
// @Router /proposals/{id}/votes [post]
func (h *IssueHandler) VoteProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	result, err := h.service.VoteProposal(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
