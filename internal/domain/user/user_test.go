package user

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	u, err := NewUser("ada lovelace", authorization.RoleStudent, "", now)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.ID(), "usr_"))
	assert.Equal(t, DefaultCredibility, u.Credibility())
	assert.Equal(t, authorization.RoleStudent, u.Role())
	assert.Equal(t, "Ada Lovelace", u.Actor().Name)
	assert.Equal(t, u.ID(), u.Actor().ID)
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name       string
		userName   string
		role       authorization.UserRole
		department string
	}{
		{"bad name", "x", authorization.RoleStudent, ""},
		{"bad role", "Ada Lovelace", "DEAN", ""},
		{"student with department", "Ada Lovelace", authorization.RoleStudent, "dep_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.userName, tt.role, tt.department, now)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestNewUser_AdminWithDepartment(t *testing.T) {
	u, err := NewUser("Grace Hopper", authorization.RoleAdmin, "dep_3", now)

	require.NoError(t, err)
	assert.Equal(t, "dep_3", u.DepartmentID())
	assert.True(t, u.Actor().IsAdmin())
}

func TestUser_ApplyCredibility(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		rule      CredibilityRule
		wantScore int
		wantDelta int
	}{
		{"resolved reward", 50, RuleIssueResolved, 55, 5},
		{"supporter reward", 50, RuleSupportedResolved, 52, 2},
		{"fake report", 50, RuleFakeReport, 35, -15},
		{"malicious contest", 50, RuleMaliciousContest, 35, -15},
		{"clamps at ceiling", 98, RuleIssueResolved, 100, 2},
		{"clamps at floor", 10, RuleFakeReport, 0, -10},
		{"stays at floor", 0, RuleMaliciousContest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ReconstructUser("usr_1", "Ada Lovelace", authorization.RoleStudent, tt.start, "", now, now)
			require.NoError(t, err)

			delta, err := u.ApplyCredibility(tt.rule, now)

			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, u.Credibility())
			assert.Equal(t, tt.wantDelta, delta)
		})
	}
}

func TestUser_ApplyCredibility_UnknownRule(t *testing.T) {
	u, err := NewUser("Ada Lovelace", authorization.RoleStudent, "", now)
	require.NoError(t, err)

	_, err = u.ApplyCredibility("BRIBERY", now)

	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, DefaultCredibility, u.Credibility())
}

func TestClampCredibility(t *testing.T) {
	assert.Equal(t, 0, ClampCredibility(-40))
	assert.Equal(t, 100, ClampCredibility(140))
	assert.Equal(t, 73, ClampCredibility(73))
}

func TestReconstructUser_ClampsStoredScore(t *testing.T) {
	u, err := ReconstructUser("usr_1", "Ada Lovelace", authorization.RoleStudent, 250, "", now, now)
	require.NoError(t, err)
	assert.Equal(t, MaxCredibility, u.Credibility())

	_, err = ReconstructUser("", "Ada Lovelace", authorization.RoleStudent, 50, "", now, now)
	assert.Error(t, err)
}
