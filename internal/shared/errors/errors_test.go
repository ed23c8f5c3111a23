package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("title is required"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("issue not found"), ErrorTypeNotFound, http.StatusNotFound},
		{"forbidden", NewForbiddenError("admin role required"), ErrorTypeForbidden, http.StatusForbidden},
		{"invalid state", NewInvalidStateError("cannot resolve"), ErrorTypeInvalidState, http.StatusConflict},
		{"duplicate", NewDuplicateActionError("already supported"), ErrorTypeDuplicateAction, http.StatusConflict},
		{"window", NewWindowExpiredError("contest window closed"), ErrorTypeWindowExpired, http.StatusGone},
		{"stale", NewStaleStateError("issue changed"), ErrorTypeStaleState, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.True(t, IsType(tt.err, tt.wantType))
		})
	}
}

func TestAppError_ErrorIncludesDetails(t *testing.T) {
	err := NewWindowExpiredError("contest window closed", "closed 2 days ago")
	assert.Equal(t, "window_expired: contest window closed (closed 2 days ago)", err.Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("support issue: %w", NewDuplicateActionError("you already supported this issue"))

	appErr := GetAppError(wrapped)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, ErrorTypeDuplicateAction, appErr.Type)
	}
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'a-b' for key 'idx'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: issue_supports.issue_id, issue_supports.user_id")))
	assert.True(t, IsDuplicateError(fmt.Errorf("ERROR: duplicate key value violates unique constraint")))
	assert.False(t, IsDuplicateError(fmt.Errorf("record not found")))
	assert.False(t, IsDuplicateError(nil))
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, IsTransientError(fmt.Errorf("Error 1213: Deadlock found when trying to get lock")))
	assert.True(t, IsTransientError(fmt.Errorf("database is locked")))
	assert.False(t, IsTransientError(NewStaleStateError("issue changed")))
	assert.False(t, IsTransientError(fmt.Errorf("syntax error")))
	assert.False(t, IsTransientError(nil))
}
