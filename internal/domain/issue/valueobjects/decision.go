package valueobjects

import "fmt"

// ContestDecision is an admin's ruling on an escalated issue.
type ContestDecision string

const (
	DecisionAccept ContestDecision = "ACCEPT"
	DecisionReject ContestDecision = "REJECT"
)

func (d ContestDecision) IsValid() bool {
	return d == DecisionAccept || d == DecisionReject
}

func NewContestDecision(s string) (ContestDecision, error) {
	d := ContestDecision(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid contest decision: %s", s)
	}
	return d, nil
}

// VoteType is a student's verdict on a re-resolution.
type VoteType string

const (
	VoteConfirm VoteType = "confirm"
	VoteReject  VoteType = "reject"
)

func (v VoteType) IsValid() bool {
	return v == VoteConfirm || v == VoteReject
}

func NewVoteType(s string) (VoteType, error) {
	v := VoteType(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid vote type: %s", s)
	}
	return v, nil
}
