package valueobjects

// TimelineEventType labels an entry in an issue's audit trail.
type TimelineEventType string

const (
	TimelineSubmitted            TimelineEventType = "SUBMITTED"
	TimelineApproved             TimelineEventType = "APPROVED"
	TimelineRejected             TimelineEventType = "REJECTED"
	TimelineInReview             TimelineEventType = "IN_REVIEW"
	TimelineResolved             TimelineEventType = "RESOLVED"
	TimelineContested            TimelineEventType = "CONTESTED"
	TimelineEscalated            TimelineEventType = "ESCALATED"
	TimelineContestAccepted      TimelineEventType = "CONTEST_ACCEPTED"
	TimelineContestDismissed     TimelineEventType = "CONTEST_DISMISSED"
	TimelineReResolved           TimelineEventType = "RE_RESOLVED"
	TimelineFinalClosed          TimelineEventType = "FINAL_CLOSED"
	TimelineRevalidationRejected TimelineEventType = "REVALIDATION_REJECTED"
	TimelineFieldsUpdated        TimelineEventType = "FIELDS_UPDATED"
)

func (t TimelineEventType) String() string {
	return string(t)
}
