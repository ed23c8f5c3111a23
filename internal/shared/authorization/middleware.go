package authorization

import (
	"github.com/gin-gonic/gin"

	"campusvoice/internal/shared/constants"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/utils"
)

// ActorFromContext rebuilds the actor stored on the gin context by the auth
// middleware.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	userID := c.GetString(constants.ContextKeyUserID)
	if userID == "" {
		return Actor{}, false
	}
	return Actor{
		ID:   userID,
		Role: UserRole(c.GetString(constants.ContextKeyUserRole)),
		Name: c.GetString(constants.ContextKeyUserName),
	}, true
}

// RequireAdmin aborts with 403 unless the authenticated actor is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
			c.Abort()
			return
		}
		if !actor.IsAdmin() {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
