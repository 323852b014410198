package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Nischal373/PAILA/internal/model"
)

// VoteStore is the persistence surface VoteService needs.
type VoteStore interface {
	CastVote(ctx context.Context, reportID, voterID string, direction model.VoteDirection) (*model.Report, error)
}

type VoteService struct {
	votes  VoteStore
	cache  *CacheService
	logger zerolog.Logger
}

func NewVoteService(votes VoteStore, cache *CacheService, logger zerolog.Logger) *VoteService {
	return &VoteService{votes: votes, cache: cache, logger: logger}
}

// Cast records a vote and returns the report with updated counters. The
// store guarantees one vote per (report, voter): duplicates surface as
// repository.ErrDuplicateVote and unknown reports as repository.ErrNotFound.
func (s *VoteService) Cast(ctx context.Context, reportID, voterID string, direction model.VoteDirection) (*model.Report, error) {
	rep, err := s.votes.CastVote(ctx, reportID, voterID, direction)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateReport(ctx, reportID); err != nil {
			s.logger.Warn().Err(err).Str("report_id", reportID).Msg("cache: invalidate report failed")
		}
	}

	s.logger.Debug().
		Str("report_id", reportID).
		Str("direction", string(direction)).
		Msg("vote cast")
	return rep, nil
}
