package usecases

import (
	"context"
	"fmt"

	"campusvoice/internal/domain/issue"
	"campusvoice/internal/domain/notification"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/shared/logger"
)

// IssueEventHandler turns notifiable lifecycle events into inbox entries for
// the issue creator. It runs inside the publisher's transaction, so a
// failed render or insert rolls the transition back.
type IssueEventHandler struct {
	repo    notification.Repository
	catalog *notification.Catalog
	clock   Clock
	logger  logger.Interface
}

func NewIssueEventHandler(
	repo notification.Repository,
	catalog *notification.Catalog,
	clock Clock,
	logger logger.Interface,
) *IssueEventHandler {
	return &IssueEventHandler{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
		logger:  logger,
	}
}

// Subscribe registers the handler for every notifiable event type.
func (h *IssueEventHandler) Subscribe(subscriber events.EventSubscriber) error {
	for _, eventType := range issue.NotifiableEventTypes {
		if _, ok := h.catalog.Lookup(eventType); !ok {
			return fmt.Errorf("no notification template for %s", eventType)
		}
		if err := subscriber.Subscribe(eventType, h); err != nil {
			return err
		}
	}
	return nil
}

func (h *IssueEventHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(issue.LifecycleEvent)
	if !ok {
		return nil
	}
	if e.RecipientID == "" || e.RecipientID == e.ActorID {
		return nil
	}

	tmpl, ok := h.catalog.Lookup(e.TemplateKey)
	if !ok {
		h.logger.Warnw("no template for lifecycle event", "template_key", e.TemplateKey, "issue_id", e.IssueID)
		return nil
	}

	title, message, err := tmpl.Render(notification.TemplateData{
		IssueID:    e.IssueID,
		IssueTitle: e.IssueTitle,
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		Note:       e.Note,
	})
	if err != nil {
		h.logger.Errorw("failed to render notification", "template_key", e.TemplateKey, "error", err)
		return err
	}

	n, err := notification.NewNotification(e.RecipientID, e.IssueID, e.TemplateKey, title, message, h.clock())
	if err != nil {
		return err
	}
	if err := h.repo.Create(ctx, n); err != nil {
		h.logger.Errorw("failed to store notification", "recipient_id", e.RecipientID, "issue_id", e.IssueID, "error", err)
		return fmt.Errorf("failed to store notification: %w", err)
	}

	h.logger.Debugw("notification queued", "recipient_id", e.RecipientID, "template_key", e.TemplateKey)
	return nil
}
