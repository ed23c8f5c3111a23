package issue

import (
	"fmt"
	"strings"
	"time"

	vo "campusvoice/internal/domain/issue/valueobjects"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/shared/biztime"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/id"
)

// Issue is the aggregate root of the lifecycle state machine. Every mutator
// validates its guard against the current status before touching any field,
// records a timeline entry and a domain event, and leaves the aggregate
// untouched when it returns an error.
type Issue struct {
	id                    string
	title                 string
	description           string
	category              vo.Category
	departmentID          string
	status                vo.IssueStatus
	urgency               vo.Urgency
	deadline              time.Time
	creatorID             string
	priorityScore         float64
	supportCount          int
	contestCount          int
	contested             bool
	contestWindowEnd      *time.Time
	revalidationWindowEnd *time.Time
	resolutionSummary     string
	resolutionEvidenceURL string
	evidenceURL           string
	rejectionReason       string
	resolutionRound       int
	revalidationRound     int
	rewarded              bool
	version               int
	createdAt             time.Time
	updatedAt             time.Time
	resolvedAt            *time.Time
	closedAt              *time.Time

	events   []events.DomainEvent
	timeline []*TimelineEvent
}

// SubmitParams carries the student's submission.
type SubmitParams struct {
	Title        string
	Description  string
	Category     vo.Category
	DepartmentID string
	Urgency      vo.Urgency
	Deadline     *time.Time
	EvidenceURL  string
	CreatorID    string
}

// NewIssue creates a PENDING_APPROVAL issue. The creator's own support is
// counted from the start; the caller persists the matching Support row.
// When no deadline is given it is derived from category and urgency.
func NewIssue(p SubmitParams, now time.Time) (*Issue, error) {
	title := strings.TrimSpace(p.Title)
	description := strings.TrimSpace(p.Description)

	switch {
	case title == "":
		return nil, errors.NewValidationError("title is required")
	case len(title) > MaxTitleLength:
		return nil, errors.NewValidationError(fmt.Sprintf("title exceeds maximum length of %d characters", MaxTitleLength))
	case description == "":
		return nil, errors.NewValidationError("description is required")
	case len(description) > MaxDescriptionLength:
		return nil, errors.NewValidationError(fmt.Sprintf("description exceeds maximum length of %d characters", MaxDescriptionLength))
	case !p.Category.IsValid():
		return nil, errors.NewValidationError("invalid category", p.Category.String())
	case !p.Urgency.IsValid():
		return nil, errors.NewValidationError("invalid urgency", p.Urgency.String())
	case strings.TrimSpace(p.DepartmentID) == "":
		return nil, errors.NewValidationError("department_id is required")
	case p.CreatorID == "":
		return nil, errors.NewValidationError("creator is required")
	}

	deadline := CalculateDeadline(p.Category, p.Urgency, now)
	if p.Deadline != nil {
		if !p.Deadline.After(now) {
			return nil, errors.NewValidationError("deadline must be in the future")
		}
		deadline = p.Deadline.UTC()
	}

	i := &Issue{
		id:           id.NewIssueID(),
		title:        title,
		description:  description,
		category:     p.Category,
		departmentID: p.DepartmentID,
		status:       vo.StatusPendingApproval,
		urgency:      p.Urgency,
		deadline:     deadline,
		creatorID:    p.CreatorID,
		supportCount: 1,
		evidenceURL:  p.EvidenceURL,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}

	i.appendTimeline(vo.TimelineSubmitted, p.CreatorID, "", nil, now)
	i.recordEvent(EventTypeSubmitted, p.CreatorID, "", "", now)

	return i, nil
}

// ReconstructParams holds persisted state for ReconstructIssue.
type ReconstructParams struct {
	ID                    string
	Title                 string
	Description           string
	Category              vo.Category
	DepartmentID          string
	Status                vo.IssueStatus
	Urgency               vo.Urgency
	Deadline              time.Time
	CreatorID             string
	PriorityScore         float64
	SupportCount          int
	ContestCount          int
	Contested             bool
	ContestWindowEnd      *time.Time
	RevalidationWindowEnd *time.Time
	ResolutionSummary     string
	ResolutionEvidenceURL string
	EvidenceURL           string
	RejectionReason       string
	ResolutionRound       int
	RevalidationRound     int
	Rewarded              bool
	Version               int
	CreatedAt             time.Time
	UpdatedAt             time.Time
	ResolvedAt            *time.Time
	ClosedAt              *time.Time
}

// ReconstructIssue rebuilds an issue from persistence.
func ReconstructIssue(p ReconstructParams) (*Issue, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("issue ID cannot be empty")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", p.Status)
	}
	if !p.Category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", p.Category)
	}
	if !p.Urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency: %s", p.Urgency)
	}

	return &Issue{
		id:                    p.ID,
		title:                 p.Title,
		description:           p.Description,
		category:              p.Category,
		departmentID:          p.DepartmentID,
		status:                p.Status,
		urgency:               p.Urgency,
		deadline:              p.Deadline,
		creatorID:             p.CreatorID,
		priorityScore:         p.PriorityScore,
		supportCount:          p.SupportCount,
		contestCount:          p.ContestCount,
		contested:             p.Contested,
		contestWindowEnd:      p.ContestWindowEnd,
		revalidationWindowEnd: p.RevalidationWindowEnd,
		resolutionSummary:     p.ResolutionSummary,
		resolutionEvidenceURL: p.ResolutionEvidenceURL,
		evidenceURL:           p.EvidenceURL,
		rejectionReason:       p.RejectionReason,
		resolutionRound:       p.ResolutionRound,
		revalidationRound:     p.RevalidationRound,
		rewarded:              p.Rewarded,
		version:               p.Version,
		createdAt:             p.CreatedAt,
		updatedAt:             p.UpdatedAt,
		resolvedAt:            p.ResolvedAt,
		closedAt:              p.ClosedAt,
	}, nil
}

func (i *Issue) ID() string                        { return i.id }
func (i *Issue) Title() string                     { return i.title }
func (i *Issue) Description() string               { return i.description }
func (i *Issue) Category() vo.Category             { return i.category }
func (i *Issue) DepartmentID() string              { return i.departmentID }
func (i *Issue) Status() vo.IssueStatus            { return i.status }
func (i *Issue) Urgency() vo.Urgency               { return i.urgency }
func (i *Issue) Deadline() time.Time               { return i.deadline }
func (i *Issue) CreatorID() string                 { return i.creatorID }
func (i *Issue) PriorityScore() float64            { return i.priorityScore }
func (i *Issue) SupportCount() int                 { return i.supportCount }
func (i *Issue) ContestCount() int                 { return i.contestCount }
func (i *Issue) IsContested() bool                 { return i.contested }
func (i *Issue) ContestWindowEnd() *time.Time      { return i.contestWindowEnd }
func (i *Issue) RevalidationWindowEnd() *time.Time { return i.revalidationWindowEnd }
func (i *Issue) ResolutionSummary() string         { return i.resolutionSummary }
func (i *Issue) ResolutionEvidenceURL() string     { return i.resolutionEvidenceURL }
func (i *Issue) EvidenceURL() string               { return i.evidenceURL }
func (i *Issue) RejectionReason() string           { return i.rejectionReason }
func (i *Issue) ResolutionRound() int              { return i.resolutionRound }
func (i *Issue) RevalidationRound() int            { return i.revalidationRound }
func (i *Issue) Rewarded() bool                    { return i.rewarded }
func (i *Issue) Version() int                      { return i.version }
func (i *Issue) CreatedAt() time.Time              { return i.createdAt }
func (i *Issue) UpdatedAt() time.Time              { return i.updatedAt }
func (i *Issue) ResolvedAt() *time.Time            { return i.resolvedAt }
func (i *Issue) ClosedAt() *time.Time              { return i.closedAt }

// SetVersion is called by the repository after a successful versioned write.
func (i *Issue) SetVersion(v int) {
	i.version = v
}

// PullEvents returns and clears the recorded domain events.
func (i *Issue) PullEvents() []events.DomainEvent {
	out := i.events
	i.events = nil
	return out
}

// PullTimeline returns and clears timeline entries not yet persisted.
func (i *Issue) PullTimeline() []*TimelineEvent {
	out := i.timeline
	i.timeline = nil
	return out
}

// Approve moves a pending submission into the open queue.
func (i *Issue) Approve(actorID string, now time.Time) error {
	if err := i.guard(vo.StatusOpen, "approve"); err != nil {
		return err
	}
	from := i.status
	i.status = vo.StatusOpen
	i.touch(now)

	i.appendTimeline(vo.TimelineApproved, actorID, "", nil, now)
	i.recordEvent(EventTypeApproved, actorID, from.String(), "", now)
	return nil
}

// Reject refuses a pending submission. A rejection opens a contest window
// just like a resolution does.
func (i *Issue) Reject(actorID, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if len(reason) > MaxReasonLength {
		return errors.NewValidationError(fmt.Sprintf("reason exceeds maximum length of %d characters", MaxReasonLength))
	}
	if err := i.guard(vo.StatusRejected, "reject"); err != nil {
		return err
	}
	from := i.status
	i.status = vo.StatusRejected
	i.rejectionReason = reason
	i.openContestWindow(now)
	i.touch(now)

	i.appendTimeline(vo.TimelineRejected, actorID, reason, nil, now)
	i.recordEvent(EventTypeRejected, actorID, from.String(), reason, now)
	return nil
}

// StartReview marks an open issue as being worked on.
func (i *Issue) StartReview(actorID string, now time.Time) error {
	if err := i.guard(vo.StatusInReview, "start review of"); err != nil {
		return err
	}
	from := i.status
	i.status = vo.StatusInReview
	i.touch(now)

	i.appendTimeline(vo.TimelineInReview, actorID, "", nil, now)
	i.recordEvent(EventTypeReviewStarted, actorID, from.String(), "", now)
	return nil
}

// Resolve records the admin's resolution and opens the contest window.
func (i *Issue) Resolve(actorID, summary, evidenceURL string, now time.Time) error {
	summary, err := validateSummary(summary)
	if err != nil {
		return err
	}
	if err := i.guard(vo.StatusResolved, "resolve"); err != nil {
		return err
	}
	from := i.status
	i.status = vo.StatusResolved
	i.resolutionSummary = summary
	i.resolutionEvidenceURL = evidenceURL
	i.resolvedAt = &now
	i.openContestWindow(now)
	i.touch(now)

	i.appendTimeline(vo.TimelineResolved, actorID, summary, evidenceMetadata(evidenceURL), now)
	i.recordEvent(EventTypeResolved, actorID, from.String(), summary, now)
	return nil
}

// EnsureContestOpen checks that a contest may be filed right now.
func (i *Issue) EnsureContestOpen(now time.Time) error {
	if !i.status.IsContestable() {
		return errors.NewInvalidStateError(
			fmt.Sprintf("cannot contest an issue in status %s", i.status),
			"only RESOLVED or REJECTED issues can be contested",
		)
	}
	return checkWindow("contest", i.contestWindowEnd, now)
}

// RecordContest counts a contest for the current resolution round. It
// reports whether the contest tipped the issue into PENDING_REVALIDATION.
// The caller guarantees the contester has not contested this round.
func (i *Issue) RecordContest(actorID, reason string, now time.Time) (bool, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return false, errors.NewValidationError("contest reason is required")
	}
	if len(reason) > MaxReasonLength {
		return false, errors.NewValidationError(fmt.Sprintf("reason exceeds maximum length of %d characters", MaxReasonLength))
	}
	if err := i.EnsureContestOpen(now); err != nil {
		return false, err
	}

	from := i.status
	i.contestCount++
	i.contested = true
	i.touch(now)
	i.appendTimeline(vo.TimelineContested, actorID, reason, map[string]any{"contest_count": i.contestCount}, now)
	i.recordEvent(EventTypeContestReceived, actorID, from.String(), reason, now)

	if i.contestCount < ContestThreshold {
		return false, nil
	}

	i.status = vo.StatusPendingRevalidation
	i.appendTimeline(vo.TimelineEscalated, actorID, "", map[string]any{"contest_count": i.contestCount}, now)
	i.recordEvent(EventTypeEscalated, actorID, from.String(), "", now)
	return true, nil
}

// DecideContest applies an admin ruling on an escalated issue. ACCEPT
// reopens the issue. REJECT dismisses the contests of the round: the count
// is reset so a later round needs a full threshold of fresh contests, and
// the issue waits in PENDING_REVALIDATION for a re-resolution.
func (i *Issue) DecideContest(actorID string, decision vo.ContestDecision, explanation string, now time.Time) error {
	if !decision.IsValid() {
		return errors.NewValidationError("decision must be ACCEPT or REJECT")
	}
	if i.status != vo.StatusPendingRevalidation {
		return errors.NewInvalidStateError(
			fmt.Sprintf("cannot decide contests for an issue in status %s", i.status),
			"contest decisions require PENDING_REVALIDATION",
		)
	}
	explanation = strings.TrimSpace(explanation)
	from := i.status

	if decision == vo.DecisionAccept {
		i.reopen()
		i.touch(now)
		i.appendTimeline(vo.TimelineContestAccepted, actorID, explanation, nil, now)
		i.recordEvent(EventTypeReopened, actorID, from.String(), explanation, now)
		return nil
	}

	dismissed := i.contestCount
	i.contestCount = 0
	i.contested = false
	i.touch(now)
	i.appendTimeline(vo.TimelineContestDismissed, actorID, explanation, map[string]any{"dismissed_contests": dismissed}, now)
	i.recordEvent(EventTypeContestDismissed, actorID, from.String(), explanation, now)
	return nil
}

// ReResolve posts a new resolution for an escalated issue and opens the
// revalidation vote.
func (i *Issue) ReResolve(actorID, summary, evidenceURL string, now time.Time) error {
	summary, err := validateSummary(summary)
	if err != nil {
		return err
	}
	if err := i.guard(vo.StatusReResolved, "re-resolve"); err != nil {
		return err
	}
	from := i.status
	i.status = vo.StatusReResolved
	i.resolutionSummary = summary
	i.resolutionEvidenceURL = evidenceURL
	i.resolvedAt = &now
	end := now.Add(WindowDuration)
	i.revalidationWindowEnd = &end
	i.revalidationRound++
	i.touch(now)

	i.appendTimeline(vo.TimelineReResolved, actorID, summary, evidenceMetadata(evidenceURL), now)
	i.recordEvent(EventTypeReResolved, actorID, from.String(), summary, now)
	return nil
}

// EnsureRevalidationOpen checks that a revalidation vote may be cast now.
func (i *Issue) EnsureRevalidationOpen(now time.Time) error {
	if i.status != vo.StatusReResolved {
		return errors.NewInvalidStateError(
			fmt.Sprintf("cannot vote on an issue in status %s", i.status),
			"revalidation votes require RE_RESOLVED",
		)
	}
	return checkWindow("revalidation", i.revalidationWindowEnd, now)
}

// RevalidationOutcome is the effect of a vote tally on the issue.
type RevalidationOutcome int

const (
	RevalidationPending RevalidationOutcome = iota
	RevalidationConfirmed
	RevalidationRejected
)

// ApplyRevalidationTally settles the round once either side reaches the
// threshold. A rejected round reopens the issue; the caller must then clear
// every vote recorded for it.
func (i *Issue) ApplyRevalidationTally(actorID string, confirms, rejects int, now time.Time) (RevalidationOutcome, error) {
	if i.status != vo.StatusReResolved {
		return RevalidationPending, errors.NewInvalidStateError(
			fmt.Sprintf("cannot settle revalidation for an issue in status %s", i.status),
		)
	}
	from := i.status
	tally := map[string]any{"confirms": confirms, "rejects": rejects}

	switch {
	case confirms >= RevalidationThreshold:
		i.status = vo.StatusFinalClosed
		i.closedAt = &now
		i.contested = false
		i.touch(now)
		i.appendTimeline(vo.TimelineFinalClosed, actorID, "", tally, now)
		i.recordEvent(EventTypeFinalClosed, actorID, from.String(), "", now)
		return RevalidationConfirmed, nil
	case rejects >= RevalidationThreshold:
		i.reopen()
		i.touch(now)
		i.appendTimeline(vo.TimelineRevalidationRejected, actorID, "", tally, now)
		i.recordEvent(EventTypeReopened, actorID, from.String(), "", now)
		return RevalidationRejected, nil
	default:
		return RevalidationPending, nil
	}
}

// RecordSupport counts one more supporter.
func (i *Issue) RecordSupport(actorID string, now time.Time) error {
	if !i.status.AcceptsSupport() {
		return errors.NewInvalidStateError(
			fmt.Sprintf("cannot support an issue in status %s", i.status),
		)
	}
	i.supportCount++
	i.touch(now)
	i.recordEvent(EventTypeSupported, actorID, i.status.String(), "", now)
	return nil
}

// RefreshPriorityScore stores a freshly computed score.
func (i *Issue) RefreshPriorityScore(score float64) {
	i.priorityScore = score
}

// NeedsResolutionRewards reports whether credibility rewards for resolving
// this issue are still owed. Rewards are granted once, on the first
// resolution.
func (i *Issue) NeedsResolutionRewards() bool {
	return i.status == vo.StatusResolved && !i.rewarded
}

// MarkRewarded records that resolution rewards were granted.
func (i *Issue) MarkRewarded() {
	i.rewarded = true
}

// FieldsPatch is a typed partial update of the admin-editable fields. Nil
// fields are left untouched.
type FieldsPatch struct {
	Status                *vo.IssueStatus
	PriorityScore         *float64
	SupportCount          *int
	ContestCount          *int
	ResolutionEvidenceURL *string
}

// IsEmpty reports whether the patch changes nothing.
func (p FieldsPatch) IsEmpty() bool {
	return p.Status == nil && p.PriorityScore == nil && p.SupportCount == nil &&
		p.ContestCount == nil && p.ResolutionEvidenceURL == nil
}

// ApplyPatch applies an admin field patch. A status change is limited to
// the transitions that carry no other state. Counter values must match the ledger sizes supplied by
// the caller, so the patch can repair drifted counters but never invent
// them. The contested flag is re-derived afterwards.
func (i *Issue) ApplyPatch(actorID string, p FieldsPatch, supportRows, contestRows int, now time.Time) error {
	if p.IsEmpty() {
		return errors.NewValidationError("patch contains no fields")
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return errors.NewValidationError("invalid status", p.Status.String())
		}
		if *p.Status != i.status && !i.status.CanPatchTo(*p.Status) {
			return errors.NewInvalidStateError(
				fmt.Sprintf("cannot change status from %s to %s by patch", i.status, *p.Status),
				"resolutions, rejections and dispute outcomes go through their own operations",
			)
		}
	}
	if p.PriorityScore != nil && *p.PriorityScore < 0 {
		return errors.NewValidationError("priority_score must not be negative")
	}
	if p.SupportCount != nil && *p.SupportCount != supportRows {
		return errors.NewValidationError(
			"support_count must equal the number of recorded supports",
			fmt.Sprintf("recorded supports: %d", supportRows),
		)
	}
	if p.ContestCount != nil && *p.ContestCount != contestRows {
		return errors.NewValidationError(
			"contest_count must equal the number of contests in the current round",
			fmt.Sprintf("recorded contests: %d", contestRows),
		)
	}

	changed := map[string]any{}
	if p.Status != nil && *p.Status != i.status {
		changed["status"] = p.Status.String()
		i.status = *p.Status
	}
	if p.PriorityScore != nil {
		changed["priority_score"] = *p.PriorityScore
		i.priorityScore = *p.PriorityScore
	}
	if p.SupportCount != nil {
		changed["support_count"] = *p.SupportCount
		i.supportCount = *p.SupportCount
	}
	if p.ContestCount != nil {
		changed["contest_count"] = *p.ContestCount
		i.contestCount = *p.ContestCount
	}
	if p.ResolutionEvidenceURL != nil {
		changed["resolution_evidence_url"] = *p.ResolutionEvidenceURL
		i.resolutionEvidenceURL = *p.ResolutionEvidenceURL
	}
	i.contested = i.contestCount > 0 && i.status.AllowsContestedFlag()
	i.touch(now)

	i.appendTimeline(vo.TimelineFieldsUpdated, actorID, "", changed, now)
	i.recordEvent(EventTypeFieldsUpdated, actorID, "", "", now)
	return nil
}

// IsOverdue reports whether an unresolved issue is past its deadline.
func (i *Issue) IsOverdue(now time.Time) bool {
	return i.status.IsUnresolved() && now.After(i.deadline)
}

func (i *Issue) guard(to vo.IssueStatus, action string) error {
	if i.status.CanTransitionTo(to) {
		return nil
	}
	if i.status.IsTerminal() {
		return errors.NewInvalidStateError(
			fmt.Sprintf("cannot %s a %s issue", action, i.status),
			"the issue is closed and accepts no further transitions",
		)
	}
	return errors.NewInvalidStateError(
		fmt.Sprintf("cannot %s an issue in status %s", action, i.status),
	)
}

func (i *Issue) openContestWindow(now time.Time) {
	end := now.Add(WindowDuration)
	i.contestWindowEnd = &end
	i.resolutionRound++
	i.contestCount = 0
	i.contested = false
}

// reopen sends the issue back to OPEN and discards all dispute state.
func (i *Issue) reopen() {
	i.status = vo.StatusOpen
	i.contestCount = 0
	i.contested = false
	i.contestWindowEnd = nil
	i.revalidationWindowEnd = nil
	i.resolvedAt = nil
}

func (i *Issue) touch(now time.Time) {
	i.updatedAt = now
}

func (i *Issue) appendTimeline(t vo.TimelineEventType, actorID, note string, metadata map[string]any, now time.Time) {
	i.timeline = append(i.timeline, NewTimelineEvent(i.id, t, actorID, note, metadata, now))
}

func (i *Issue) recordEvent(eventType, actorID, from, note string, now time.Time) {
	i.events = append(i.events, newLifecycleEvent(eventType, i, actorID, from, note, now))
}

func validateSummary(summary string) (string, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", errors.NewValidationError("resolution summary is required")
	}
	if len(summary) > MaxSummaryLength {
		return "", errors.NewValidationError(fmt.Sprintf("summary exceeds maximum length of %d characters", MaxSummaryLength))
	}
	return summary, nil
}

func checkWindow(kind string, end *time.Time, now time.Time) error {
	if end == nil {
		return errors.NewWindowExpiredError(fmt.Sprintf("the %s window is not open", kind))
	}
	if !now.Before(*end) {
		return errors.NewWindowExpiredError(
			fmt.Sprintf("the %s window has closed", kind),
			fmt.Sprintf("closed %s", biztime.HumanizeSince(*end, now)),
		)
	}
	return nil
}

func evidenceMetadata(url string) map[string]any {
	if url == "" {
		return nil
	}
	return map[string]any{"evidence_url": url}
}
