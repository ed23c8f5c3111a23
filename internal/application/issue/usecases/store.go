package usecases

import (
	"context"
	"fmt"
	"time"

	"campusvoice/internal/domain/issue"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/shared/logger"
)

// IssueStore writes an issue together with the timeline entries and domain
// events it recorded. Callers run it inside a transaction. Events go to two
// publishers: transactional handlers share the caller's transaction, while
// committed handlers only see events whose transaction committed.
type IssueStore struct {
	issues    issue.Repository
	timeline  issue.TimelineRepository
	publisher events.EventPublisher
	committed events.EventPublisher
	tx        TransactionRunner
	logger    logger.Interface
}

func NewIssueStore(
	issues issue.Repository,
	timeline issue.TimelineRepository,
	publisher events.EventPublisher,
	committed events.EventPublisher,
	tx TransactionRunner,
	logger logger.Interface,
) *IssueStore {
	return &IssueStore{
		issues:    issues,
		timeline:  timeline,
		publisher: publisher,
		committed: committed,
		tx:        tx,
		logger:    logger,
	}
}

func (s *IssueStore) Create(ctx context.Context, i *issue.Issue) error {
	if err := s.issues.Create(ctx, i); err != nil {
		return err
	}
	return s.flush(ctx, i)
}

// Save performs the versioned update.
func (s *IssueStore) Save(ctx context.Context, i *issue.Issue) error {
	if err := s.issues.Update(ctx, i); err != nil {
		return err
	}
	return s.flush(ctx, i)
}

func (s *IssueStore) flush(ctx context.Context, i *issue.Issue) error {
	if entries := i.PullTimeline(); len(entries) > 0 {
		if err := s.timeline.Append(ctx, entries...); err != nil {
			return err
		}
	}
	evts := i.PullEvents()
	if len(evts) == 0 {
		return nil
	}
	if err := s.publisher.PublishAll(ctx, evts); err != nil {
		return fmt.Errorf("failed to publish issue events: %w", err)
	}
	if s.committed != nil {
		s.tx.AfterCommit(ctx, func(ctx context.Context) {
			if err := s.committed.PublishAll(ctx, evts); err != nil {
				s.logger.Warnw("failed to publish committed issue events",
					"issue_id", i.ID(),
					"error", err,
				)
			}
		})
	}
	return nil
}

// Scorer computes read-time priority scores from the support ledger.
type Scorer struct {
	supports issue.SupportRepository
}

func NewScorer(supports issue.SupportRepository) *Scorer {
	return &Scorer{supports: supports}
}

func (s *Scorer) Score(ctx context.Context, i *issue.Issue, now time.Time) (float64, error) {
	scores, err := s.ScoreAll(ctx, []*issue.Issue{i}, now)
	if err != nil {
		return 0, err
	}
	return scores[i.ID()], nil
}

// ScoreAll scores many issues with one credibility query.
func (s *Scorer) ScoreAll(ctx context.Context, list []*issue.Issue, now time.Time) (map[string]float64, error) {
	ids := make([]string, 0, len(list))
	for _, i := range list {
		ids = append(ids, i.ID())
	}
	sums, err := s.supports.CredibilitySums(ctx, ids)
	if err != nil {
		return nil, err
	}
	scores := make(map[string]float64, len(list))
	for _, i := range list {
		scores[i.ID()] = issue.PriorityScore(i.Urgency(), i.CreatedAt(), sums[i.ID()], now)
	}
	return scores, nil
}
