package issue

import (
	"time"

	"campusvoice/internal/domain/shared/events"
)

// Event types double as notification template keys.
const (
	EventTypeSubmitted        = "issue.submitted"
	EventTypeApproved         = "issue.approved"
	EventTypeRejected         = "issue.rejected"
	EventTypeReviewStarted    = "issue.review_started"
	EventTypeResolved         = "issue.resolved"
	EventTypeContestReceived  = "issue.contest_received"
	EventTypeEscalated        = "issue.escalated"
	EventTypeReopened         = "issue.reopened"
	EventTypeContestDismissed = "issue.contest_dismissed"
	EventTypeReResolved       = "issue.re_resolved"
	EventTypeFinalClosed      = "issue.final_closed"
	EventTypeSupported        = "issue.supported"
	EventTypeFieldsUpdated    = "issue.fields_updated"
)

// NotifiableEventTypes are the events that produce a notification for the
// issue creator.
var NotifiableEventTypes = []string{
	EventTypeApproved,
	EventTypeRejected,
	EventTypeResolved,
	EventTypeContestReceived,
	EventTypeEscalated,
	EventTypeReopened,
	EventTypeContestDismissed,
	EventTypeReResolved,
	EventTypeFinalClosed,
}

// LifecycleEvent is emitted by every issue transition. RecipientID is the
// user who should hear about it; TemplateKey selects the message.
type LifecycleEvent struct {
	events.BaseEvent
	IssueID     string `json:"issue_id"`
	IssueTitle  string `json:"issue_title"`
	ActorID     string `json:"actor_id"`
	RecipientID string `json:"recipient_id"`
	TemplateKey string `json:"template_key"`
	FromStatus  string `json:"from_status"`
	ToStatus    string `json:"to_status"`
	Note        string `json:"note,omitempty"`
}

func newLifecycleEvent(eventType string, i *Issue, actorID, from, note string, at time.Time) LifecycleEvent {
	return LifecycleEvent{
		BaseEvent:   events.NewBaseEvent(i.id, eventType, at),
		IssueID:     i.id,
		IssueTitle:  i.title,
		ActorID:     actorID,
		RecipientID: i.creatorID,
		TemplateKey: eventType,
		FromStatus:  from,
		ToStatus:    i.status.String(),
		Note:        note,
	}
}
