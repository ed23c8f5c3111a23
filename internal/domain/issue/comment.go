package issue

import (
	"fmt"
	"strings"
	"time"

	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/id"
)

const MaxCommentLength = 5000

type Comment struct {
	id        string
	issueID   string
	userID    string
	content   string
	createdAt time.Time
}

func NewComment(issueID, userID, content string, now time.Time) (*Comment, error) {
	content = strings.TrimSpace(content)
	if issueID == "" {
		return nil, errors.NewValidationError("issue ID is required")
	}
	if userID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}
	if content == "" {
		return nil, errors.NewValidationError("content cannot be empty")
	}
	if len(content) > MaxCommentLength {
		return nil, errors.NewValidationError(fmt.Sprintf("content exceeds maximum length of %d characters", MaxCommentLength))
	}

	return &Comment{
		id:        id.NewCommentID(),
		issueID:   issueID,
		userID:    userID,
		content:   content,
		createdAt: now,
	}, nil
}

func ReconstructComment(commentID, issueID, userID, content string, createdAt time.Time) *Comment {
	return &Comment{
		id:        commentID,
		issueID:   issueID,
		userID:    userID,
		content:   content,
		createdAt: createdAt,
	}
}

func (c *Comment) ID() string           { return c.id }
func (c *Comment) IssueID() string      { return c.issueID }
func (c *Comment) UserID() string       { return c.userID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
