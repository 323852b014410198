package model

import "time"

// Comment is a user comment on a report. Author is the commenter's display
// name (or username) at posting time.
type Comment struct {
	ID        string    `json:"id"`
	ReportID  string    `json:"reportId"`
	Author    string    `json:"author,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentRequest is the API request body for posting a comment.
// Text is accepted as a legacy alias for Body.
type CommentRequest struct {
	Body string `json:"body"`
	Text string `json:"text"`
}
