package valueobjects

import "fmt"

type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

var urgencyWeights = map[Urgency]int{
	UrgencyLow:      1,
	UrgencyMedium:   2,
	UrgencyHigh:     3,
	UrgencyCritical: 5,
}

var urgencyDeadlineFactors = map[Urgency]float64{
	UrgencyLow:      1.5,
	UrgencyMedium:   1.0,
	UrgencyHigh:     0.5,
	UrgencyCritical: 0.2,
}

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	_, ok := urgencyWeights[u]
	return ok
}

// Weight multiplies each supporter's credibility in the priority score.
func (u Urgency) Weight() int {
	return urgencyWeights[u]
}

// DeadlineFactor scales the category's base days when computing a deadline.
func (u Urgency) DeadlineFactor() float64 {
	if f, ok := urgencyDeadlineFactors[u]; ok {
		return f
	}
	return 1.0
}

func NewUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency: %s", s)
	}
	return u, nil
}
