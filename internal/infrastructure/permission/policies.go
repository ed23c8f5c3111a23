package permission

import (
	"fmt"

	"campusvoice/internal/domain/permission"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

var (
	admin   = authorization.RoleAdmin.String()
	student = authorization.RoleStudent.String()
)

// DefaultPolicies is the campus role matrix. Students drive the
// participation side of an issue; admins drive its lifecycle.
var DefaultPolicies = [][]string{
	{student, permission.ResourceIssue, permission.ActionRead},
	{student, permission.ResourceIssue, permission.ActionSubmit},
	{student, permission.ResourceIssue, permission.ActionSupport},
	{student, permission.ResourceIssue, permission.ActionContest},
	{student, permission.ResourceIssue, permission.ActionVote},
	{student, permission.ResourceComment, permission.ActionCreate},
	{student, permission.ResourceProposal, permission.ActionCreate},
	{student, permission.ResourceProposal, permission.ActionVote},
	{student, permission.ResourceDepartment, permission.ActionRead},
	{student, permission.ResourceNotification, permission.ActionRead},
	{student, permission.ResourceNotification, permission.ActionUpdate},

	{admin, permission.ResourceIssue, permission.ActionRead},
	{admin, permission.ResourceIssue, permission.ActionApprove},
	{admin, permission.ResourceIssue, permission.ActionReject},
	{admin, permission.ResourceIssue, permission.ActionReview},
	{admin, permission.ResourceIssue, permission.ActionResolve},
	{admin, permission.ResourceIssue, permission.ActionDecide},
	{admin, permission.ResourceIssue, permission.ActionReResolve},
	{admin, permission.ResourceIssue, permission.ActionUpdate},
	{admin, permission.ResourceComment, permission.ActionCreate},
	{admin, permission.ResourceUser, permission.ActionRead},
	{admin, permission.ResourceUser, permission.ActionCreate},
	{admin, permission.ResourceUser, permission.ActionAdjust},
	{admin, permission.ResourceDepartment, permission.ActionRead},
	{admin, permission.ResourceDepartment, permission.ActionCreate},
	{admin, permission.ResourceNotification, permission.ActionRead},
	{admin, permission.ResourceNotification, permission.ActionUpdate},
}

// SeedDefaultPolicies adds any missing default policy. Existing rows are
// left alone.
func SeedDefaultPolicies(e permission.PermissionEnforcer, log logger.Interface) error {
	for _, p := range DefaultPolicies {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}
	log.Infow("default permissions seeded", "count", len(DefaultPolicies))
	return nil
}
