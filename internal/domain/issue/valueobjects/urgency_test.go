package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgency_WeightsAndFactors(t *testing.T) {
	tests := []struct {
		urgency Urgency
		weight  int
		factor  float64
	}{
		{UrgencyLow, 1, 1.5},
		{UrgencyMedium, 2, 1.0},
		{UrgencyHigh, 3, 0.5},
		{UrgencyCritical, 5, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.urgency.String(), func(t *testing.T) {
			assert.Equal(t, tt.weight, tt.urgency.Weight())
			assert.Equal(t, tt.factor, tt.urgency.DeadlineFactor())
		})
	}

	_, err := NewUrgency("URGENT")
	assert.Error(t, err)
}

func TestCategory_BaseDays(t *testing.T) {
	assert.Equal(t, 7, CategoryInfrastructure.BaseDays())
	assert.Equal(t, 14, CategoryAcademics.BaseDays())
	assert.Equal(t, 2, CategorySafety.BaseDays())
	assert.Equal(t, 7, Category("UNKNOWN").BaseDays())

	_, err := NewCategory("SPORTS")
	assert.Error(t, err)
}

func TestDecisionAndVoteType(t *testing.T) {
	_, err := NewContestDecision("ACCEPT")
	assert.NoError(t, err)
	_, err = NewContestDecision("maybe")
	assert.Error(t, err)

	_, err = NewVoteType("confirm")
	assert.NoError(t, err)
	_, err = NewVoteType("CONFIRM")
	assert.Error(t, err)
}
