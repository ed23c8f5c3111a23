package authorization

import (
	"fmt"

	"campusvoice/internal/shared/errors"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID   string
	Role UserRole
	Name string
}

// SystemActor is the identity used by operator commands such as bootstrapping
// the first admin account.
var SystemActor = Actor{ID: "system", Role: RoleAdmin, Name: "system"}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// Require returns a ForbiddenError unless the actor holds role.
// Use cases call it before touching any state.
func (a Actor) Require(role UserRole, action string) error {
	if a.ID == "" {
		return errors.NewUnauthorizedError("authentication required")
	}
	if a.Role != role {
		return errors.NewForbiddenError(
			fmt.Sprintf("%s role required to %s", role, action),
			fmt.Sprintf("actor role is %s", a.Role),
		)
	}
	return nil
}
