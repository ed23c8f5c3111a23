package routes

import (
	"github.com/gin-gonic/gin"

	"campusvoice/internal/domain/permission"
	"campusvoice/internal/interfaces/http/handlers"
)

type IssueRouteConfig struct {
	IssueHandler *handlers.IssueHandler
	Guards       *Guards
}

// SetupIssueRoutes configures the issue lifecycle, participation and
// discussion routes.
func SetupIssueRoutes(engine *gin.Engine, cfg *IssueRouteConfig) {
	g := cfg.Guards
	h := cfg.IssueHandler

	issues := engine.Group("/issues")
	issues.Use(g.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		issues.POST("", g.limit(), g.can(permission.ResourceIssue, permission.ActionSubmit), h.SubmitIssue)
		issues.GET("", g.can(permission.ResourceIssue, permission.ActionRead), h.ListIssues)

		// Student participation
		issues.POST("/:id/support", g.limit(), g.can(permission.ResourceIssue, permission.ActionSupport), h.SupportIssue)
		issues.POST("/:id/contests", g.limit(), g.can(permission.ResourceIssue, permission.ActionContest), h.ContestIssue)
		issues.POST("/:id/revalidation-votes", g.limit(), g.can(permission.ResourceIssue, permission.ActionVote), h.RevalidationVote)
		issues.POST("/:id/comments", g.limit(), g.can(permission.ResourceComment, permission.ActionCreate), h.AddComment)
		issues.POST("/:id/proposals", g.limit(), g.can(permission.ResourceProposal, permission.ActionCreate), h.AddProposal)

		// Admin lifecycle
		issues.POST("/:id/approve", g.can(permission.ResourceIssue, permission.ActionApprove), h.ApproveIssue)
		issues.POST("/:id/reject", g.can(permission.ResourceIssue, permission.ActionReject), h.RejectIssue)
		issues.POST("/:id/review", g.can(permission.ResourceIssue, permission.ActionReview), h.StartReview)
		issues.POST("/:id/resolve", g.can(permission.ResourceIssue, permission.ActionResolve), h.ResolveIssue)
		issues.POST("/:id/contest-decision", g.can(permission.ResourceIssue, permission.ActionDecide), h.DecideContest)
		issues.POST("/:id/re-resolve", g.can(permission.ResourceIssue, permission.ActionReResolve), h.ReResolveIssue)

		// Generic parameterized routes (must come LAST)
		issues.GET("/:id", g.can(permission.ResourceIssue, permission.ActionRead), h.GetIssue)
		issues.PATCH("/:id", g.can(permission.ResourceIssue, permission.ActionUpdate), h.UpdateIssueFields)
	}

	proposals := engine.Group("/proposals")
	proposals.Use(g.AuthMiddleware.RequireAuth())
	{
		proposals.POST("/:id/votes", g.limit(), g.can(permission.ResourceProposal, permission.ActionVote), h.VoteProposal)
	}
}
