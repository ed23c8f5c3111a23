package issue

import (
	"fmt"
	"strings"
	"time"

	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/id"
)

const MaxProposalLength = 2000

// Proposal is a community-suggested fix for an issue. Students upvote
// proposals; each user may vote once per proposal.
type Proposal struct {
	id        string
	issueID   string
	userID    string
	content   string
	voteCount int
	createdAt time.Time
}

func NewProposal(issueID, userID, content string, now time.Time) (*Proposal, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.NewValidationError("proposal content cannot be empty")
	}
	if len(content) > MaxProposalLength {
		return nil, errors.NewValidationError(fmt.Sprintf("proposal exceeds maximum length of %d characters", MaxProposalLength))
	}

	return &Proposal{
		id:        id.NewProposalID(),
		issueID:   issueID,
		userID:    userID,
		content:   content,
		createdAt: now,
	}, nil
}

func ReconstructProposal(proposalID, issueID, userID, content string, voteCount int, createdAt time.Time) *Proposal {
	return &Proposal{
		id:        proposalID,
		issueID:   issueID,
		userID:    userID,
		content:   content,
		voteCount: voteCount,
		createdAt: createdAt,
	}
}

func (p *Proposal) ID() string           { return p.id }
func (p *Proposal) IssueID() string      { return p.issueID }
func (p *Proposal) UserID() string       { return p.userID }
func (p *Proposal) Content() string      { return p.content }
func (p *Proposal) VoteCount() int       { return p.voteCount }
func (p *Proposal) CreatedAt() time.Time { return p.createdAt }

// RecordVote counts one more upvote.
func (p *Proposal) RecordVote() {
	p.voteCount++
}
