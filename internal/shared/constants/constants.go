package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserName  = "user_name"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers             = "users"
	TableDepartments       = "departments"
	TableIssues            = "issues"
	TableIssueSupports     = "issue_supports"
	TableIssueContests     = "issue_contests"
	TableRevalidationVotes = "issue_revalidation_votes"
	TableTimelineEvents    = "issue_timeline_events"
	TableComments          = "issue_comments"
	TableProposals         = "issue_proposals"
	TableProposalVotes     = "issue_proposal_votes"
	TableNotifications     = "notifications"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
