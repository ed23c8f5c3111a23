package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/application/notification/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/domain/notification"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/shared/authorization"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

type mockNotificationRepo struct {
	stored    map[string]*notification.Notification
	createErr error
	updates   int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{stored: map[string]*notification.Notification{}}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.stored[n.ID()] = n
	return nil
}

func (m *mockNotificationRepo) GetByID(_ context.Context, id string) (*notification.Notification, error) {
	n, ok := m.stored[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("notification not found", id)
	}
	return n, nil
}

func (m *mockNotificationRepo) Update(_ context.Context, n *notification.Notification) error {
	m.updates++
	m.stored[n.ID()] = n
	return nil
}

func (m *mockNotificationRepo) ListByRecipient(_ context.Context, f notification.ListFilter) ([]*notification.Notification, int64, error) {
	var out []*notification.Notification
	for _, n := range m.stored {
		if n.RecipientID() != f.RecipientID || (f.UnreadOnly && n.IsRead()) {
			continue
		}
		out = append(out, n)
	}
	return out, int64(len(out)), nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, recipientID string) (int64, error) {
	var count int64
	for _, n := range m.stored {
		if n.RecipientID() == recipientID && !n.IsRead() {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) only(t *testing.T) *notification.Notification {
	t.Helper()
	require.Len(t, m.stored, 1)
	for _, n := range m.stored {
		return n
	}
	return nil
}

func lifecycleEvent(eventType, actorID, note string) issue.LifecycleEvent {
	return issue.LifecycleEvent{
		BaseEvent:   events.NewBaseEvent("iss_1", eventType, now),
		IssueID:     "iss_1",
		IssueTitle:  "Broken AC",
		ActorID:     actorID,
		RecipientID: "usr_creator",
		TemplateKey: eventType,
		FromStatus:  "PENDING_APPROVAL",
		ToStatus:    "REJECTED",
		Note:        note,
	}
}

func TestIssueEventHandler_RendersTemplate(t *testing.T) {
	repo := newMockNotificationRepo()
	h := NewIssueEventHandler(repo, notification.DefaultCatalog(), fixedClock, logger.NewNopLogger())

	require.NoError(t, h.Handle(context.Background(), lifecycleEvent(issue.EventTypeRejected, "usr_admin", "duplicate")))

	n := repo.only(t)
	assert.Equal(t, "usr_creator", n.RecipientID())
	assert.Equal(t, "iss_1", n.IssueID())
	assert.Equal(t, "Your issue was rejected", n.Title())
	assert.Equal(t, `"Broken AC" was rejected: duplicate. You can contest this within 7 days.`, n.Message())
	assert.Equal(t, now, n.CreatedAt())
}

func TestIssueEventHandler_Skips(t *testing.T) {
	tests := []struct {
		name  string
		event events.DomainEvent
	}{
		{"own action", lifecycleEvent(issue.EventTypeRejected, "usr_creator", "")},
		{"unknown template", lifecycleEvent("issue.archived", "usr_admin", "")},
		{"foreign event", events.NewBaseEvent("x", "user.created", now)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockNotificationRepo()
			h := NewIssueEventHandler(repo, notification.DefaultCatalog(), fixedClock, logger.NewNopLogger())

			require.NoError(t, h.Handle(context.Background(), tt.event))
			assert.Empty(t, repo.stored)
		})
	}
}

func TestIssueEventHandler_StoreFailurePropagates(t *testing.T) {
	repo := newMockNotificationRepo()
	repo.createErr = errors.New("disk full")
	h := NewIssueEventHandler(repo, notification.DefaultCatalog(), fixedClock, logger.NewNopLogger())

	err := h.Handle(context.Background(), lifecycleEvent(issue.EventTypeApproved, "usr_admin", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestIssueEventHandler_Subscribe(t *testing.T) {
	dispatcher := events.NewInMemoryEventDispatcher()
	repo := newMockNotificationRepo()
	h := NewIssueEventHandler(repo, notification.DefaultCatalog(), fixedClock, logger.NewNopLogger())
	require.NoError(t, h.Subscribe(dispatcher))

	require.NoError(t, dispatcher.PublishAll(context.Background(), []events.DomainEvent{lifecycleEvent(issue.EventTypeResolved, "usr_admin", "fixed")}))
	assert.Len(t, repo.stored, 1)

	// supports are not notifiable
	require.NoError(t, dispatcher.PublishAll(context.Background(), []events.DomainEvent{lifecycleEvent(issue.EventTypeSupported, "usr_b", "")}))
	assert.Len(t, repo.stored, 1)
}

func TestIssueEventHandler_SubscribeRequiresCompleteCatalog(t *testing.T) {
	h := NewIssueEventHandler(newMockNotificationRepo(), notification.NewCatalog(), fixedClock, logger.NewNopLogger())

	err := h.Subscribe(events.NewInMemoryEventDispatcher())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no notification template")
}

func TestListNotifications(t *testing.T) {
	repo := newMockNotificationRepo()
	h := NewIssueEventHandler(repo, notification.DefaultCatalog(), fixedClock, logger.NewNopLogger())
	ctx := context.Background()
	require.NoError(t, h.Handle(ctx, lifecycleEvent(issue.EventTypeApproved, "usr_admin", "")))
	require.NoError(t, h.Handle(ctx, lifecycleEvent(issue.EventTypeResolved, "usr_admin", "")))

	uc := NewListNotificationsUseCase(repo, logger.NewNopLogger())

	out, err := uc.Execute(ctx, authorization.Actor{ID: "usr_creator", Role: authorization.RoleStudent}, dto.ListNotificationsRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, int64(2), out.Unread)
	assert.Equal(t, 1, out.Page)

	out, err = uc.Execute(ctx, authorization.Actor{ID: "usr_other", Role: authorization.RoleStudent}, dto.ListNotificationsRequest{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	_, err = uc.Execute(ctx, authorization.Actor{}, dto.ListNotificationsRequest{})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestMarkNotificationRead(t *testing.T) {
	repo := newMockNotificationRepo()
	n, err := notification.NewNotification("usr_creator", "iss_1", issue.EventTypeApproved, "t", "m", now)
	require.NoError(t, err)
	repo.stored[n.ID()] = n

	later := now.Add(time.Hour)
	uc := NewMarkNotificationReadUseCase(repo, func() time.Time { return later }, logger.NewNopLogger())
	ctx := context.Background()

	_, err = uc.Execute(ctx, authorization.Actor{ID: "usr_other", Role: authorization.RoleStudent}, n.ID())
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))

	owner := authorization.Actor{ID: "usr_creator", Role: authorization.RoleStudent}
	out, err := uc.Execute(ctx, owner, n.ID())
	require.NoError(t, err)
	assert.True(t, out.Read)
	require.NotNil(t, out.ReadAt)
	assert.Equal(t, later, *out.ReadAt)

	// marking twice is a no-op
	_, err = uc.Execute(ctx, owner, n.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updates)

	_, err = uc.Execute(ctx, owner, "ntf_missing")
	assert.True(t, apperrors.IsNotFoundError(err))
}
