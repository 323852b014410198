package model

import "time"

// VoteDirection is the direction of a vote on a report.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// ValidDirection reports whether d is a known vote direction.
func ValidDirection(d VoteDirection) bool {
	return d == VoteUp || d == VoteDown
}

// Value returns +1 for an upvote and -1 for a downvote.
func (d VoteDirection) Value() int {
	if d == VoteUp {
		return 1
	}
	return -1
}

// Vote is an individual vote record. The pair (ReportID, VoterID) is unique,
// enforced by the primary key of the report_votes table.
type Vote struct {
	ReportID  string    `json:"reportId"`
	VoterID   string    `json:"voterId"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// VoteRequest is the API request body for POST /api/reports/:id/vote.
type VoteRequest struct {
	Direction VoteDirection `json:"direction"`
}
