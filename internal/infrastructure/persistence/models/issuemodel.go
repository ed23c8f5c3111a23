package models

import (
	"gorm.io/datatypes"

	"campusvoice/internal/shared/constants"
)

// IssueModel is the issues row. Timestamps are Unix milliseconds.
type IssueModel struct {
	ID                    string  `gorm:"primaryKey;size:32"`
	Title                 string  `gorm:"size:200;not null"`
	Description           string  `gorm:"type:text;not null"`
	Category              string  `gorm:"size:30;not null;index"`
	DepartmentID          string  `gorm:"size:32;not null;index"`
	Status                string  `gorm:"size:30;not null;index"`
	Urgency               string  `gorm:"size:20;not null"`
	Deadline              int64   `gorm:"not null"`
	CreatorID             string  `gorm:"size:32;not null;index"`
	PriorityScore         float64 `gorm:"not null;default:0"`
	SupportCount          int     `gorm:"not null;default:1"`
	ContestCount          int     `gorm:"not null;default:0"`
	Contested             bool    `gorm:"not null;default:false"`
	ContestWindowEnd      *int64
	RevalidationWindowEnd *int64
	ResolutionSummary     string `gorm:"type:text"`
	ResolutionEvidenceURL string `gorm:"size:2048"`
	EvidenceURL           string `gorm:"size:2048"`
	RejectionReason       string `gorm:"type:text"`
	ResolutionRound       int    `gorm:"not null;default:0"`
	RevalidationRound     int    `gorm:"not null;default:0"`
	Rewarded              bool   `gorm:"not null;default:false"`
	Version               int    `gorm:"not null;default:1"`
	CreatedAt             int64  `gorm:"not null;index"`
	UpdatedAt             int64  `gorm:"not null"`
	ResolvedAt            *int64
	ClosedAt              *int64
}

func (IssueModel) TableName() string {
	return constants.TableIssues
}

type SupportModel struct {
	ID        uint   `gorm:"primaryKey"`
	IssueID   string `gorm:"size:32;not null;uniqueIndex:uk_issue_supports_issue_user"`
	UserID    string `gorm:"size:32;not null;uniqueIndex:uk_issue_supports_issue_user;index"`
	CreatedAt int64  `gorm:"not null"`
}

func (SupportModel) TableName() string {
	return constants.TableIssueSupports
}

type ContestModel struct {
	ID              uint   `gorm:"primaryKey"`
	IssueID         string `gorm:"size:32;not null;uniqueIndex:uk_issue_contests_issue_user_round"`
	UserID          string `gorm:"size:32;not null;uniqueIndex:uk_issue_contests_issue_user_round"`
	ResolutionRound int    `gorm:"not null;uniqueIndex:uk_issue_contests_issue_user_round"`
	Reason          string `gorm:"type:text;not null"`
	CreatedAt       int64  `gorm:"not null"`
}

func (ContestModel) TableName() string {
	return constants.TableIssueContests
}

type RevalidationVoteModel struct {
	ID                uint   `gorm:"primaryKey"`
	IssueID           string `gorm:"size:32;not null;uniqueIndex:uk_issue_revalidation_votes_issue_user_round"`
	UserID            string `gorm:"size:32;not null;uniqueIndex:uk_issue_revalidation_votes_issue_user_round"`
	RevalidationRound int    `gorm:"not null;uniqueIndex:uk_issue_revalidation_votes_issue_user_round"`
	VoteType          string `gorm:"size:10;not null"`
	CreatedAt         int64  `gorm:"not null"`
}

func (RevalidationVoteModel) TableName() string {
	return constants.TableRevalidationVotes
}

type TimelineEventModel struct {
	ID        uint           `gorm:"primaryKey"`
	IssueID   string         `gorm:"size:32;not null;index:idx_issue_timeline_issue_created"`
	Type      string         `gorm:"size:40;not null"`
	ActorID   string         `gorm:"size:32"`
	Note      string         `gorm:"type:text"`
	Metadata  datatypes.JSON `gorm:"type:json"`
	CreatedAt int64          `gorm:"not null;index:idx_issue_timeline_issue_created"`
}

func (TimelineEventModel) TableName() string {
	return constants.TableTimelineEvents
}

type IssueCommentModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	IssueID   string `gorm:"size:32;not null;index"`
	UserID    string `gorm:"size:32;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"not null"`
}

func (IssueCommentModel) TableName() string {
	return constants.TableComments
}

type ProposalModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	IssueID   string `gorm:"size:32;not null;index"`
	UserID    string `gorm:"size:32;not null"`
	Content   string `gorm:"type:text;not null"`
	VoteCount int    `gorm:"not null;default:0"`
	CreatedAt int64  `gorm:"not null"`
}

func (ProposalModel) TableName() string {
	return constants.TableProposals
}

type ProposalVoteModel struct {
	ID         uint   `gorm:"primaryKey"`
	ProposalID string `gorm:"size:32;not null;uniqueIndex:uk_issue_proposal_votes_proposal_user"`
	UserID     string `gorm:"size:32;not null;uniqueIndex:uk_issue_proposal_votes_proposal_user"`
	CreatedAt  int64  `gorm:"not null"`
}

func (ProposalVoteModel) TableName() string {
	return constants.TableProposalVotes
}
