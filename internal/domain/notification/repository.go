package notification

import "context"

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	// GetByID fails with a NotFoundError for unknown IDs.
	GetByID(ctx context.Context, notificationID string) (*Notification, error)
	Update(ctx context.Context, notification *Notification) error
	ListByRecipient(ctx context.Context, filter ListFilter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
}

// ListFilter selects a page of one member's inbox, newest first.
type ListFilter struct {
	RecipientID string
	UnreadOnly  bool
	Page        int
	PageSize    int
}
