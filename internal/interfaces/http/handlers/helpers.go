package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/constants"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/utils"
)

// fail attaches err for the logging and refusal middlewares, then writes the
// error response.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	utils.ErrorResponseWithError(c, err)
}

// currentActor writes a 401 and reports false when the request carries no
// authenticated actor.
func currentActor(c *gin.Context) (authorization.Actor, bool) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		fail(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
		return authorization.Actor{}, false
	}
	return actor, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}

// bindStrictJSON refuses bodies carrying keys the request type does not
// declare. gin's binding.EnableDecoderDisallowUnknownFields is process-wide,
// so strictness is applied per route here instead.
func bindStrictJSON(c *gin.Context, req any) bool {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		fail(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		fail(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}
