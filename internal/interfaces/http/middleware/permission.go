package middleware

import (
	"github.com/gin-gonic/gin"

	"campusvoice/internal/domain/permission"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/constants"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.PermissionEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks the actor's role against the policy table.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := authorization.ActorFromContext(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(actor.Role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", actor.ID, "resource", resource, "action", action)
			utils.ErrorResponseWithError(c, errors.NewInternalError("permission check failed"))
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", actor.ID, "role", actor.Role, "resource", resource, "action", action)
			appErr := errors.NewForbiddenError(constants.ErrMsgForbidden, resource+":"+action)
			_ = c.Error(appErr)
			utils.ErrorResponseWithError(c, appErr)
			c.Abort()
			return
		}

		c.Next()
	}
}
