package notification

import (
	"fmt"
	"time"

	"campusvoice/internal/shared/id"
)

// Notification is an inbox entry telling a member that something happened
// to an issue they care about.
type Notification struct {
	id          string
	recipientID string
	issueID     string
	templateKey string
	title       string
	message     string
	readAt      *time.Time
	createdAt   time.Time
}

func NewNotification(recipientID, issueID, templateKey, title, message string, now time.Time) (*Notification, error) {
	if recipientID == "" {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if templateKey == "" {
		return nil, fmt.Errorf("template key is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}

	return &Notification{
		id:          id.NewNotificationID(),
		recipientID: recipientID,
		issueID:     issueID,
		templateKey: templateKey,
		title:       title,
		message:     message,
		createdAt:   now,
	}, nil
}

func ReconstructNotification(
	notificationID, recipientID, issueID, templateKey, title, message string,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if notificationID == "" {
		return nil, fmt.Errorf("notification ID cannot be empty")
	}
	if recipientID == "" {
		return nil, fmt.Errorf("recipient ID is required")
	}

	return &Notification{
		id:          notificationID,
		recipientID: recipientID,
		issueID:     issueID,
		templateKey: templateKey,
		title:       title,
		message:     message,
		readAt:      readAt,
		createdAt:   createdAt,
	}, nil
}

func (n *Notification) ID() string          { return n.id }
func (n *Notification) RecipientID() string { return n.recipientID }
func (n *Notification) IssueID() string     { return n.issueID }
func (n *Notification) TemplateKey() string { return n.templateKey }
func (n *Notification) Title() string       { return n.title }
func (n *Notification) Message() string     { return n.message }
func (n *Notification) ReadAt() *time.Time  { return n.readAt }
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) IsRead() bool {
	return n.readAt != nil
}

// MarkRead is idempotent; the first read time is kept.
func (n *Notification) MarkRead(now time.Time) {
	if n.readAt != nil {
		return
	}
	n.readAt = &now
}
