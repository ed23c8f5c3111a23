package permission

// Resources guarded by role policies.
const (
	ResourceIssue        = "issue"
	ResourceComment      = "comment"
	ResourceProposal     = "proposal"
	ResourceUser         = "user"
	ResourceDepartment   = "department"
	ResourceNotification = "notification"
)

// Actions on those resources.
const (
	ActionRead      = "read"
	ActionSubmit    = "submit"
	ActionSupport   = "support"
	ActionContest   = "contest"
	ActionVote      = "vote"
	ActionApprove   = "approve"
	ActionReject    = "reject"
	ActionReview    = "review"
	ActionResolve   = "resolve"
	ActionDecide    = "decide"
	ActionReResolve = "re_resolve"
	ActionUpdate    = "update"
	ActionCreate    = "create"
	ActionAdjust    = "adjust"
)

// PermissionEnforcer answers whether a role may perform an action on a
// resource.
type PermissionEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	RemovePolicy(role string, resource string, action string) error
	PoliciesForRole(role string) ([][]string, error)
	LoadPolicy() error
}
