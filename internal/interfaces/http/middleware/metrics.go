package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/shared/errors"
)

// RefusalRecorder counts requests refused with an application error.
type RefusalRecorder interface {
	RecordRefusal(ctx context.Context, errorType string)
}

// Refusals records the type of the last application error attached to the
// context. Handlers and middlewares attach errors with c.Error.
func Refusals(recorder RefusalRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		if appErr := errors.GetAppError(c.Errors.Last().Err); appErr != nil && appErr.Type != errors.ErrorTypeInternal {
			recorder.RecordRefusal(c.Request.Context(), string(appErr.Type))
		}
	}
}
