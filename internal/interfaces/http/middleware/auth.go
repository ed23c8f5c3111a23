package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/constants"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

// TokenVerifier turns a bearer token into the actor it was issued to.
type TokenVerifier interface {
	Verify(token string) (authorization.Actor, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		actor, err := m.verifier.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// SetActor stores actor on the context the way authorization.ActorFromContext
// reads it back.
func SetActor(c *gin.Context, actor authorization.Actor) {
	c.Set(constants.ContextKeyUserID, actor.ID)
	c.Set(constants.ContextKeyUserRole, actor.Role.String())
	c.Set(constants.ContextKeyUserName, actor.Name)
}
