package usecases

import (
	"context"

	"campusvoice/internal/domain/issue"
	"campusvoice/internal/domain/user"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

// credibilityLedger applies credibility rules raised by lifecycle actions.
type credibilityLedger struct {
	users    CredibilityStore
	supports issue.SupportRepository
	contests issue.ContestRepository
	logger   logger.Interface
}

func (l *credibilityLedger) apply(ctx context.Context, userID string, rule user.CredibilityRule) error {
	score, err := l.users.AdjustCredibility(ctx, userID, rule.Delta())
	if apperrors.IsNotFoundError(err) {
		l.logger.Warnw("skipping credibility rule for unknown user", "user_id", userID, "rule", rule)
		return nil
	}
	if err != nil {
		return err
	}
	l.logger.Infow("credibility adjusted", "user_id", userID, "rule", rule, "credibility", score)
	return nil
}

// grantResolutionRewards pays the creator and every other supporter once
// per issue.
func (l *credibilityLedger) grantResolutionRewards(ctx context.Context, i *issue.Issue) error {
	if !i.NeedsResolutionRewards() {
		return nil
	}
	supports, err := l.supports.ListByIssue(ctx, i.ID())
	if err != nil {
		return err
	}

	if err := l.apply(ctx, i.CreatorID(), user.RuleIssueResolved); err != nil {
		return err
	}
	for _, s := range supports {
		if s.UserID == i.CreatorID() {
			continue
		}
		if err := l.apply(ctx, s.UserID, user.RuleSupportedResolved); err != nil {
			return err
		}
	}
	i.MarkRewarded()
	return nil
}

func (l *credibilityLedger) penalizeFakeReport(ctx context.Context, i *issue.Issue) error {
	return l.apply(ctx, i.CreatorID(), user.RuleFakeReport)
}

// penalizeContesters charges every contester of the issue's current round.
func (l *credibilityLedger) penalizeContesters(ctx context.Context, i *issue.Issue) error {
	contests, err := l.contests.ListByRound(ctx, i.ID(), i.ResolutionRound())
	if err != nil {
		return err
	}
	for _, c := range contests {
		if err := l.apply(ctx, c.UserID, user.RuleMaliciousContest); err != nil {
			return err
		}
	}
	return nil
}
