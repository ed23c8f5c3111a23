package user

const (
	MinCredibility     = 0
	MaxCredibility     = 100
	DefaultCredibility = 50
)

// CredibilityRule names a reason for adjusting a member's credibility.
type CredibilityRule string

const (
	RuleIssueResolved     CredibilityRule = "ISSUE_RESOLVED"
	RuleSupportedResolved CredibilityRule = "SUPPORTED_RESOLVED"
	RuleFakeReport        CredibilityRule = "FAKE_REPORT"
	RuleMaliciousContest  CredibilityRule = "MALICIOUS_CONTEST"
)

var credibilityDeltas = map[CredibilityRule]int{
	RuleIssueResolved:     5,
	RuleSupportedResolved: 2,
	RuleFakeReport:        -15,
	RuleMaliciousContest:  -15,
}

func (r CredibilityRule) IsValid() bool {
	_, ok := credibilityDeltas[r]
	return ok
}

// Delta is the signed adjustment before clamping.
func (r CredibilityRule) Delta() int {
	return credibilityDeltas[r]
}

// ClampCredibility bounds a score to [MinCredibility, MaxCredibility].
func ClampCredibility(score int) int {
	return min(max(score, MinCredibility), MaxCredibility)
}
