package user

import "campusvoice/internal/shared/errors"

// NewNotFoundError reports an unknown user ID.
func NewNotFoundError(userID string) error {
	return errors.NewNotFoundError("user not found", userID)
}
