package issue

import (
	"time"

	vo "campusvoice/internal/domain/issue/valueobjects"
)

// TimelineEvent is an append-only audit entry on an issue.
type TimelineEvent struct {
	ID        uint
	IssueID   string
	Type      vo.TimelineEventType
	ActorID   string
	Note      string
	Metadata  map[string]any
	CreatedAt time.Time
}

func NewTimelineEvent(issueID string, t vo.TimelineEventType, actorID, note string, metadata map[string]any, at time.Time) *TimelineEvent {
	return &TimelineEvent{
		IssueID:   issueID,
		Type:      t,
		ActorID:   actorID,
		Note:      note,
		Metadata:  metadata,
		CreatedAt: at,
	}
}
