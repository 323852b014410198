package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nischal373/PAILA/internal/model"
)

// CommentStore is the persistence surface CommentService needs.
type CommentStore interface {
	ListByReport(ctx context.Context, reportID string) ([]model.Comment, error)
	Add(ctx context.Context, c *model.Comment) error
}

type CommentService struct {
	comments CommentStore
	logger   zerolog.Logger
}

func NewCommentService(comments CommentStore, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, logger: logger}
}

// List returns the comments on a report, newest first.
func (s *CommentService) List(ctx context.Context, reportID string) ([]model.Comment, error) {
	return s.comments.ListByReport(ctx, reportID)
}

// Add posts a comment on a report. The author is the session user's display
// name, captured at posting time.
func (s *CommentService) Add(ctx context.Context, reportID, author, body string) (*model.Comment, error) {
	c := &model.Comment{
		ID:        uuid.NewString(),
		ReportID:  reportID,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Add(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("report_id", reportID).Msg("comment added")
	return c, nil
}
