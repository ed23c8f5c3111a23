package issue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/department"
	domain "campusvoice/internal/domain/issue"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/infrastructure/migration"
	"campusvoice/internal/infrastructure/repository"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/db"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/services/markdown"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	t      *testing.T
	svc    *ServiceDDD
	repos  Repositories
	users  user.Repository
	deptID string
	admin  authorization.Actor

	mu        sync.Mutex
	now       time.Time
	events    []string
	committed []string
	failOn    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewNopLogger()
	f := &fixture{t: t, now: t0}

	f.users = repository.NewUserRepository(gdb, log)
	departments := repository.NewDepartmentRepository(gdb, log)
	dept, err := department.NewDepartment("Estates", "EST", t0)
	require.NoError(t, err)
	require.NoError(t, departments.Create(context.Background(), dept))
	f.deptID = dept.ID()

	dispatcher := events.NewInMemoryEventDispatcher()
	require.NoError(t, dispatcher.Subscribe(events.WildcardEventType, events.HandlerFunc(
		func(_ context.Context, e events.DomainEvent) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if e.GetEventType() == f.failOn {
				return errors.New("handler unavailable")
			}
			f.events = append(f.events, e.GetEventType())
			return nil
		})))
	committed := events.NewInMemoryEventDispatcher()
	require.NoError(t, committed.Subscribe(events.WildcardEventType, events.HandlerFunc(
		func(_ context.Context, e events.DomainEvent) error {
			f.mu.Lock()
			f.committed = append(f.committed, e.GetEventType())
			f.mu.Unlock()
			return nil
		})))

	f.repos = Repositories{
		Issues:    repository.NewIssueRepository(gdb, log),
		Supports:  repository.NewSupportRepository(gdb, log),
		Contests:  repository.NewContestRepository(gdb, log),
		Votes:     repository.NewRevalidationVoteRepository(gdb, log),
		Timeline:  repository.NewTimelineRepository(gdb, log),
		Comments:  repository.NewCommentRepository(gdb, log),
		Proposals: repository.NewProposalRepository(gdb, log),
	}
	f.svc = NewServiceDDD(
		f.repos,
		f.users,
		departments,
		db.NewTransactionManager(gdb, db.WithMaxRetries(0)),
		dispatcher,
		committed,
		markdown.NewMarkdownService(),
		f.clock,
		log,
	)
	f.admin = f.member("Dean Office", authorization.RoleAdmin)
	return f
}

func (f *fixture) clock() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fixture) advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func (f *fixture) member(name string, role authorization.UserRole) authorization.Actor {
	f.t.Helper()
	u, err := user.NewUser(name, role, "", t0)
	require.NoError(f.t, err)
	require.NoError(f.t, f.users.Create(context.Background(), u))
	return authorization.Actor{ID: u.ID(), Role: role, Name: name}
}

func (f *fixture) student(name string) authorization.Actor {
	return f.member(name, authorization.RoleStudent)
}

func (f *fixture) credibility(actor authorization.Actor) int {
	f.t.Helper()
	creds, err := f.users.GetCredibilities(context.Background(), []string{actor.ID})
	require.NoError(f.t, err)
	return creds[actor.ID]
}

func (f *fixture) submit(creator authorization.Actor, urgency string) *dto.IssueDTO {
	f.t.Helper()
	out, err := f.svc.SubmitIssue(context.Background(), creator, dto.SubmitIssueRequest{
		Title:        "Broken AC in hall 3",
		Description:  "The AC has been off for a week",
		Category:     "INFRASTRUCTURE",
		DepartmentID: f.deptID,
		Urgency:      urgency,
	})
	require.NoError(f.t, err)
	return out
}

// resolvedIssue returns an approved and resolved issue.
func (f *fixture) resolvedIssue(creator authorization.Actor) string {
	f.t.Helper()
	ctx := context.Background()
	id := f.submit(creator, "HIGH").ID
	_, err := f.svc.ApproveIssue(ctx, f.admin, id)
	require.NoError(f.t, err)
	_, err = f.svc.ResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Compressor replaced"})
	require.NoError(f.t, err)
	return id
}

// escalatedIssue returns a resolved issue contested by three students.
func (f *fixture) escalatedIssue(creator authorization.Actor) (string, []authorization.Actor) {
	f.t.Helper()
	id := f.resolvedIssue(creator)
	contesters := []authorization.Actor{f.student("Carol Diaz"), f.student("Dan Wu"), f.student("Erin Osei")}
	for _, c := range contesters {
		_, err := f.svc.ContestIssue(context.Background(), c, id, dto.ContestIssueRequest{Reason: "Still hot"})
		require.NoError(f.t, err)
	}
	return id, contesters
}

func assertErrorType(t *testing.T, err error, want apperrors.ErrorType) {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected an application error, got %v", err)
	assert.Equal(t, want, appErr.Type)
}

// committedCount counts events of eventType delivered after commit.
func (f *fixture) committedCount(eventType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.committed {
		if e == eventType {
			n++
		}
	}
	return n
}

func TestSubmitIssue(t *testing.T) {
	f := newFixture(t)
	alice := f.student("Alice Mensah")

	out := f.submit(alice, "HIGH")

	assert.Equal(t, "PENDING_APPROVAL", out.Status)
	assert.Equal(t, 1, out.SupportCount)
	assert.Equal(t, 0, out.ContestCount)
	assert.Equal(t, alice.ID, out.CreatorID)
	assert.Equal(t, 150.0, out.PriorityScore)
	assert.Contains(t, f.events, domain.EventTypeSubmitted)

	// the creator's support is recorded, so a second support is refused
	_, err := f.svc.ApproveIssue(context.Background(), f.admin, out.ID)
	require.NoError(t, err)
	_, err = f.svc.SupportIssue(context.Background(), alice, out.ID)
	assertErrorType(t, err, apperrors.ErrorTypeDuplicateAction)
}

func TestSubmitIssue_Refusals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SubmitIssue(ctx, f.admin, dto.SubmitIssueRequest{
		Title: "x", Description: "y", Category: "INFRASTRUCTURE", DepartmentID: f.deptID, Urgency: "LOW",
	})
	assertErrorType(t, err, apperrors.ErrorTypeForbidden)

	_, err = f.svc.SubmitIssue(ctx, f.student("Alice Mensah"), dto.SubmitIssueRequest{
		Title: "x", Description: "y", Category: "INFRASTRUCTURE", DepartmentID: "dep_missing", Urgency: "LOW",
	})
	assertErrorType(t, err, apperrors.ErrorTypeNotFound)
}

func TestLifecycle_HappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, bob := f.student("Alice Mensah"), f.student("Bob Okafor")

	id := f.submit(alice, "MEDIUM").ID

	out, err := f.svc.ApproveIssue(ctx, f.admin, id)
	require.NoError(t, err)
	assert.Equal(t, "OPEN", out.Status)

	out, err = f.svc.SupportIssue(ctx, bob, id)
	require.NoError(t, err)
	assert.Equal(t, 2, out.SupportCount)

	out, err = f.svc.StartReview(ctx, f.admin, id)
	require.NoError(t, err)
	assert.Equal(t, "IN_REVIEW", out.Status)

	out, err = f.svc.ResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Fixed", EvidenceURL: "https://example.edu/p.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "RESOLVED", out.Status)
	require.NotNil(t, out.ContestWindowEnd)
	assert.Equal(t, f.clock().Add(domain.WindowDuration), *out.ContestWindowEnd)

	_, err = f.svc.ApproveIssue(ctx, f.admin, id)
	assertErrorType(t, err, apperrors.ErrorTypeInvalidState)

	detail, err := f.svc.GetIssue(ctx, id)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(detail.Timeline), 4)
}

func TestLifecycle_AdminOnlyTransitions(t *testing.T) {
	f := newFixture(t)
	alice := f.student("Alice Mensah")
	id := f.submit(alice, "LOW").ID

	_, err := f.svc.ApproveIssue(context.Background(), alice, id)
	assertErrorType(t, err, apperrors.ErrorTypeForbidden)

	_, err = f.svc.SupportIssue(context.Background(), f.admin, id)
	assertErrorType(t, err, apperrors.ErrorTypeForbidden)
}

func TestResolutionRewards_GrantedOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, bob := f.student("Alice Mensah"), f.student("Bob Okafor")

	id := f.submit(alice, "HIGH").ID
	_, err := f.svc.ApproveIssue(ctx, f.admin, id)
	require.NoError(t, err)
	_, err = f.svc.SupportIssue(ctx, bob, id)
	require.NoError(t, err)
	_, err = f.svc.ResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Fixed"})
	require.NoError(t, err)

	assert.Equal(t, 55, f.credibility(alice))
	assert.Equal(t, 52, f.credibility(bob))

	// escalate, reopen and resolve again: no second payout
	for _, c := range []authorization.Actor{f.student("Carol Diaz"), f.student("Dan Wu"), f.student("Erin Osei")} {
		_, err := f.svc.ContestIssue(ctx, c, id, dto.ContestIssueRequest{Reason: "not fixed"})
		require.NoError(t, err)
	}
	_, err = f.svc.DecideContest(ctx, f.admin, id, dto.ContestDecisionRequest{Decision: "ACCEPT"})
	require.NoError(t, err)
	_, err = f.svc.ResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Fixed for real"})
	require.NoError(t, err)

	assert.Equal(t, 55, f.credibility(alice))
	assert.Equal(t, 52, f.credibility(bob))
}

func TestContest_EscalatesAtThreshold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.resolvedIssue(f.student("Alice Mensah"))

	contesters := []authorization.Actor{f.student("Carol Diaz"), f.student("Dan Wu"), f.student("Erin Osei")}

	res, err := f.svc.ContestIssue(ctx, contesters[0], id, dto.ContestIssueRequest{Reason: "still hot"})
	require.NoError(t, err)
	assert.False(t, res.Escalated)
	assert.True(t, res.Issue.Contested)
	assert.Equal(t, "RESOLVED", res.Issue.Status)

	_, err = f.svc.ContestIssue(ctx, contesters[0], id, dto.ContestIssueRequest{Reason: "again"})
	assertErrorType(t, err, apperrors.ErrorTypeDuplicateAction)

	_, err = f.svc.ContestIssue(ctx, contesters[1], id, dto.ContestIssueRequest{Reason: "still hot"})
	require.NoError(t, err)
	res, err = f.svc.ContestIssue(ctx, contesters[2], id, dto.ContestIssueRequest{Reason: "still hot"})
	require.NoError(t, err)

	assert.True(t, res.Escalated)
	assert.Equal(t, "PENDING_REVALIDATION", res.Issue.Status)
	assert.Equal(t, 3, res.Issue.ContestCount)
	assert.Contains(t, f.events, domain.EventTypeEscalated)
}

func TestContest_WindowExpires(t *testing.T) {
	f := newFixture(t)
	id := f.resolvedIssue(f.student("Alice Mensah"))

	f.advance(domain.WindowDuration)

	_, err := f.svc.ContestIssue(context.Background(), f.student("Carol Diaz"), id, dto.ContestIssueRequest{Reason: "late"})
	assertErrorType(t, err, apperrors.ErrorTypeWindowExpired)
}

func TestContest_RejectedIssue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.student("Alice Mensah")
	id := f.submit(alice, "LOW").ID

	out, err := f.svc.RejectIssue(ctx, f.admin, id, dto.RejectIssueRequest{Reason: "duplicate report", MarkFake: true})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", out.Status)
	assert.Equal(t, 35, f.credibility(alice))

	_, err = f.svc.SupportIssue(ctx, f.student("Carol Diaz"), id)
	assertErrorType(t, err, apperrors.ErrorTypeInvalidState)

	res, err := f.svc.ContestIssue(ctx, f.student("Bob Okafor"), id, dto.ContestIssueRequest{Reason: "not a duplicate"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Issue.ContestCount)
}

func TestDecideContest_Accept(t *testing.T) {
	f := newFixture(t)
	id, _ := f.escalatedIssue(f.student("Alice Mensah"))

	out, err := f.svc.DecideContest(context.Background(), f.admin, id, dto.ContestDecisionRequest{Decision: "ACCEPT", Explanation: "agreed"})
	require.NoError(t, err)
	assert.Equal(t, "OPEN", out.Status)
	assert.Equal(t, 0, out.ContestCount)
	assert.False(t, out.Contested)
	assert.Nil(t, out.ContestWindowEnd)
}

func TestDecideContest_DismissWithPenalty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, contesters := f.escalatedIssue(f.student("Alice Mensah"))

	out, err := f.svc.DecideContest(ctx, f.admin, id, dto.ContestDecisionRequest{Decision: "REJECT", Explanation: "works", Penalize: true})
	require.NoError(t, err)
	assert.Equal(t, "PENDING_REVALIDATION", out.Status)
	assert.Equal(t, 0, out.ContestCount)
	assert.False(t, out.Contested)
	for _, c := range contesters {
		assert.Equal(t, 35, f.credibility(c))
	}

	_, err = f.svc.DecideContest(ctx, f.admin, id, dto.ContestDecisionRequest{Decision: "MAYBE"})
	assertErrorType(t, err, apperrors.ErrorTypeValidation)
}

func TestRevalidation_Confirmed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, _ := f.escalatedIssue(f.student("Alice Mensah"))

	out, err := f.svc.ReResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Unit replaced"})
	require.NoError(t, err)
	assert.Equal(t, "RE_RESOLVED", out.Status)
	require.NotNil(t, out.RevalidationWindowEnd)

	voters := []authorization.Actor{f.student("Fay Lin"), f.student("Gus Ade"), f.student("Hana Ito")}
	var res *dto.VoteResultDTO
	for n, v := range voters {
		res, err = f.svc.RevalidationVote(ctx, v, id, dto.RevalidationVoteRequest{Vote: "confirm"})
		require.NoError(t, err)
		if n < 2 {
			assert.Equal(t, "PENDING", res.Outcome)
		}
	}
	assert.Equal(t, "CONFIRMED", res.Outcome)
	assert.Equal(t, 3, res.Confirms)
	assert.Equal(t, "FINAL_CLOSED", res.Issue.Status)
	assert.False(t, res.Issue.Contested)

	_, err = f.svc.SupportIssue(ctx, f.student("Ivy Park"), id)
	assertErrorType(t, err, apperrors.ErrorTypeInvalidState)
}

func TestRevalidation_RejectedReopensAndClearsVotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, _ := f.escalatedIssue(f.student("Alice Mensah"))
	_, err := f.svc.ReResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Unit replaced"})
	require.NoError(t, err)

	confirmer := f.student("Fay Lin")
	_, err = f.svc.RevalidationVote(ctx, confirmer, id, dto.RevalidationVoteRequest{Vote: "confirm"})
	require.NoError(t, err)

	_, err = f.svc.RevalidationVote(ctx, confirmer, id, dto.RevalidationVoteRequest{Vote: "reject"})
	assertErrorType(t, err, apperrors.ErrorTypeDuplicateAction)

	var res *dto.VoteResultDTO
	for _, v := range []authorization.Actor{f.student("Gus Ade"), f.student("Hana Ito"), f.student("Ivy Park")} {
		res, err = f.svc.RevalidationVote(ctx, v, id, dto.RevalidationVoteRequest{Vote: "reject"})
		require.NoError(t, err)
	}
	assert.Equal(t, "REJECTED", res.Outcome)
	assert.Equal(t, "OPEN", res.Issue.Status)

	remaining, err := f.repos.Votes.CountByIssue(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	// a fresh round starts from an empty ballot; the earlier confirmer may vote again
	_, err = f.svc.ResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Second attempt"})
	require.NoError(t, err)
	for _, c := range []authorization.Actor{f.student("Jo Kim"), f.student("Kai Ng"), f.student("Lea Roy")} {
		_, err = f.svc.ContestIssue(ctx, c, id, dto.ContestIssueRequest{Reason: "still broken"})
		require.NoError(t, err)
	}
	_, err = f.svc.ReResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Third attempt"})
	require.NoError(t, err)

	res, err = f.svc.RevalidationVote(ctx, confirmer, id, dto.RevalidationVoteRequest{Vote: "confirm"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Confirms)
	assert.Equal(t, 0, res.Rejects)
}

func TestRevalidation_WindowExpires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, _ := f.escalatedIssue(f.student("Alice Mensah"))
	_, err := f.svc.ReResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Unit replaced"})
	require.NoError(t, err)

	f.advance(domain.WindowDuration + time.Minute)

	_, err = f.svc.RevalidationVote(ctx, f.student("Fay Lin"), id, dto.RevalidationVoteRequest{Vote: "confirm"})
	assertErrorType(t, err, apperrors.ErrorTypeWindowExpired)
}

func TestSupportIssue_ConcurrentDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.submit(f.student("Alice Mensah"), "LOW").ID
	_, err := f.svc.ApproveIssue(ctx, f.admin, id)
	require.NoError(t, err)

	bob := f.student("Bob Okafor")

	const attempts = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupes     int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.SupportIssue(ctx, bob, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperrors.IsType(err, apperrors.ErrorTypeDuplicateAction):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, dupes)

	detail, err := f.svc.GetIssue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.SupportCount)
}

func TestContestIssue_ConcurrentDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.resolvedIssue(f.student("Alice Mensah"))
	carol := f.student("Carol Diaz")

	const attempts = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupes     int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.ContestIssue(ctx, carol, id, dto.ContestIssueRequest{Reason: "still hot"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperrors.IsType(err, apperrors.ErrorTypeDuplicateAction):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, dupes)

	detail, err := f.svc.GetIssue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.ContestCount)
	assert.Equal(t, "RESOLVED", detail.Status)
}

func TestAdminTransitions_ConcurrentApproveAndReject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.submit(f.student("Alice Mensah"), "LOW").ID

	var (
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.svc.ApproveIssue(ctx, f.admin, id)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.svc.RejectIssue(ctx, f.admin, id, dto.RejectIssueRequest{Reason: "duplicate report"})
	}()
	wg.Wait()

	var winner int
	switch {
	case errs[0] == nil && errs[1] != nil:
		winner = 0
	case errs[1] == nil && errs[0] != nil:
		winner = 1
	default:
		t.Fatalf("expected exactly one success, got approve=%v reject=%v", errs[0], errs[1])
	}
	loser := errs[1-winner]
	assert.True(t,
		apperrors.IsType(loser, apperrors.ErrorTypeStaleState) || apperrors.IsType(loser, apperrors.ErrorTypeInvalidState),
		"unexpected error %v", loser)

	detail, err := f.svc.GetIssue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "OPEN", 1: "REJECTED"}[winner], detail.Status)
}

func TestCommittedEvents_OnlyAfterCommit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.resolvedIssue(f.student("Alice Mensah"))
	carol := f.student("Carol Diaz")

	f.mu.Lock()
	f.failOn = domain.EventTypeContestReceived
	f.mu.Unlock()

	_, err := f.svc.ContestIssue(ctx, carol, id, dto.ContestIssueRequest{Reason: "still hot"})
	require.Error(t, err)
	assert.Zero(t, f.committedCount(domain.EventTypeContestReceived))

	detail, err := f.svc.GetIssue(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, detail.ContestCount)

	f.mu.Lock()
	f.failOn = ""
	f.mu.Unlock()

	_, err = f.svc.ContestIssue(ctx, carol, id, dto.ContestIssueRequest{Reason: "still hot"})
	require.NoError(t, err)
	assert.Equal(t, 1, f.committedCount(domain.EventTypeContestReceived))
	assert.Equal(t, 1, f.committedCount(domain.EventTypeResolved))
}

func TestAdminOperations_RoleCheckedBeforeInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, _ := f.escalatedIssue(f.student("Alice Mensah"))
	bob := f.student("Bob Okafor")
	badURL := "ftp://files.example.edu/photo.jpg"
	bogus := "CONTESTED"

	_, err := f.svc.DecideContest(ctx, bob, id, dto.ContestDecisionRequest{Decision: "MAYBE"})
	assertErrorType(t, err, apperrors.ErrorTypeForbidden)

	_, err = f.svc.ResolveIssue(ctx, bob, id, dto.ResolveIssueRequest{Summary: "done", EvidenceURL: badURL})
	assertErrorType(t, err, apperrors.ErrorTypeForbidden)

	_, err = f.svc.ReResolveIssue(ctx, bob, id, dto.ResolveIssueRequest{Summary: "done", EvidenceURL: badURL})
	assertErrorType(t, err, apperrors.ErrorTypeForbidden)

	_, err = f.svc.UpdateIssueFields(ctx, bob, id, dto.UpdateIssueFieldsRequest{Status: &bogus})
	assertErrorType(t, err, apperrors.ErrorTypeForbidden)

	_, err = f.svc.DecideContest(ctx, f.admin, id, dto.ContestDecisionRequest{Decision: "MAYBE"})
	assertErrorType(t, err, apperrors.ErrorTypeValidation)
}

func TestUpdateIssueFields_StatusPatchKeepsLifecycleIntact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.student("Alice Mensah")

	id := f.submit(alice, "HIGH").ID
	_, err := f.svc.ApproveIssue(ctx, f.admin, id)
	require.NoError(t, err)

	resolved := "RESOLVED"
	_, err = f.svc.UpdateIssueFields(ctx, f.admin, id, dto.UpdateIssueFieldsRequest{Status: &resolved})
	assertErrorType(t, err, apperrors.ErrorTypeInvalidState)
	assert.Equal(t, 50, f.credibility(alice))

	// the dedicated operation still opens the contest window
	_, err = f.svc.ResolveIssue(ctx, f.admin, id, dto.ResolveIssueRequest{Summary: "Compressor replaced"})
	require.NoError(t, err)
	res, err := f.svc.ContestIssue(ctx, f.student("Zoe Quinn"), id, dto.ContestIssueRequest{Reason: "still hot"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Issue.ContestCount)

	escalated, _ := f.escalatedIssue(f.student("Bob Okafor"))
	open := "OPEN"
	_, err = f.svc.UpdateIssueFields(ctx, f.admin, escalated, dto.UpdateIssueFieldsRequest{Status: &open})
	assertErrorType(t, err, apperrors.ErrorTypeInvalidState)
	detail, err := f.svc.GetIssue(ctx, escalated)
	require.NoError(t, err)
	assert.Equal(t, "PENDING_REVALIDATION", detail.Status)
	assert.Equal(t, 3, detail.ContestCount)

	_, err = f.svc.ReResolveIssue(ctx, f.admin, escalated, dto.ResolveIssueRequest{Summary: "Unit replaced"})
	require.NoError(t, err)
	closed := "FINAL_CLOSED"
	_, err = f.svc.UpdateIssueFields(ctx, f.admin, escalated, dto.UpdateIssueFieldsRequest{Status: &closed})
	assertErrorType(t, err, apperrors.ErrorTypeInvalidState)
	detail, err = f.svc.GetIssue(ctx, escalated)
	require.NoError(t, err)
	assert.Equal(t, "RE_RESOLVED", detail.Status)
}

func TestUpdateIssueFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.submit(f.student("Alice Mensah"), "LOW").ID

	two, one := 2, 1
	_, err := f.svc.UpdateIssueFields(ctx, f.admin, id, dto.UpdateIssueFieldsRequest{SupportCount: &two})
	assertErrorType(t, err, apperrors.ErrorTypeValidation)

	closed := "FINAL_CLOSED"
	_, err = f.svc.UpdateIssueFields(ctx, f.admin, id, dto.UpdateIssueFieldsRequest{Status: &closed})
	assertErrorType(t, err, apperrors.ErrorTypeInvalidState)

	open := "OPEN"
	out, err := f.svc.UpdateIssueFields(ctx, f.admin, id, dto.UpdateIssueFieldsRequest{Status: &open, SupportCount: &one})
	require.NoError(t, err)
	assert.Equal(t, "OPEN", out.Status)
	assert.Equal(t, 1, out.SupportCount)

	_, err = f.svc.UpdateIssueFields(ctx, f.admin, id, dto.UpdateIssueFieldsRequest{})
	assertErrorType(t, err, apperrors.ErrorTypeValidation)

	_, err = f.svc.UpdateIssueFields(ctx, f.student("Bob Okafor"), id, dto.UpdateIssueFieldsRequest{Status: &open})
	assertErrorType(t, err, apperrors.ErrorTypeForbidden)
}

func TestListIssues_RankedByLiveScore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, bob, carol := f.student("Alice Mensah"), f.student("Bob Okafor"), f.student("Carol Diaz")

	_, err := f.users.AdjustCredibility(ctx, bob.ID, 20)
	require.NoError(t, err)

	low := f.submit(carol, "LOW").ID
	high := f.submit(alice, "HIGH").ID
	for _, id := range []string{low, high} {
		_, err := f.svc.ApproveIssue(ctx, f.admin, id)
		require.NoError(t, err)
	}
	_, err = f.svc.SupportIssue(ctx, bob, high)
	require.NoError(t, err)

	f.advance(48 * time.Hour)

	list, err := f.svc.ListIssues(ctx, dto.ListIssuesRequest{Status: "OPEN"})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, high, list.Items[0].ID)
	assert.Equal(t, 362.0, list.Items[0].PriorityScore)
	assert.Equal(t, 52.0, list.Items[1].PriorityScore)

	page, err := f.svc.ListIssues(ctx, dto.ListIssuesRequest{Page: 2, PageSize: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, low, page.Items[0].ID)

	_, err = f.svc.ListIssues(ctx, dto.ListIssuesRequest{Status: "DONE"})
	assertErrorType(t, err, apperrors.ErrorTypeValidation)
}

func TestDiscussion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, bob := f.student("Alice Mensah"), f.student("Bob Okafor")
	id := f.submit(alice, "LOW").ID

	comment, err := f.svc.AddComment(ctx, bob, id, dto.AddCommentRequest{Content: "Same in **hall 4**"})
	require.NoError(t, err)
	assert.Contains(t, comment.ContentHTML, "<strong>hall 4</strong>")

	proposal, err := f.svc.AddProposal(ctx, bob, id, dto.AddProposalRequest{Content: "Install fans <script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, proposal.ContentHTML, "<script>")

	voted, err := f.svc.VoteProposal(ctx, alice, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, voted.VoteCount)

	_, err = f.svc.VoteProposal(ctx, alice, proposal.ID)
	assertErrorType(t, err, apperrors.ErrorTypeDuplicateAction)

	detail, err := f.svc.GetIssue(ctx, id)
	require.NoError(t, err)
	assert.Len(t, detail.Comments, 1)
	assert.Len(t, detail.Proposals, 1)
}
