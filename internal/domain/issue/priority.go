package issue

import (
	"math"
	"time"

	vo "campusvoice/internal/domain/issue/valueobjects"
	"campusvoice/internal/shared/biztime"
)

// PriorityScore ranks an issue:
//
//	round1(Σ credibility(supporter) × urgencyWeight + hoursSinceCreated/24)
//
// The age term adds one point per day so old issues are not starved by
// support-driven ranking. Negative ages are treated as zero.
func PriorityScore(urgency vo.Urgency, createdAt time.Time, credibilitySum int, now time.Time) float64 {
	hours := now.Sub(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}
	raw := float64(credibilitySum*urgency.Weight()) + hours/24
	return math.Round(raw*10) / 10
}

// CalculatePriorityScore scores an issue from its supports and the current
// credibility of each supporter. Supporters missing from credibilityByUser
// contribute nothing.
func CalculatePriorityScore(i *Issue, supports []*Support, credibilityByUser map[string]int, now time.Time) float64 {
	sum := 0
	for _, s := range supports {
		sum += credibilityByUser[s.UserID]
	}
	return PriorityScore(i.Urgency(), i.CreatedAt(), sum, now)
}

// CalculateDeadline returns now + baseDays(category) × factor(urgency),
// never less than one day out.
func CalculateDeadline(category vo.Category, urgency vo.Urgency, now time.Time) time.Time {
	days := float64(category.BaseDays()) * urgency.DeadlineFactor()
	if days < 1 {
		days = 1
	}
	return biztime.AddDays(now, days)
}
