package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nischal373/PAILA/internal/metrics"
	"github.com/Nischal373/PAILA/internal/model"
)

// Defaults applied to sparse report submissions.
const (
	DefaultReportTitle = "Unnamed pothole"
	DefaultDepartment  = "Department of Roads"
)

const leaderboardLimit = 10

// ReportStore is the persistence surface ReportService needs.
type ReportStore interface {
	List(ctx context.Context) ([]model.Report, error)
	GetByID(ctx context.Context, id string) (*model.Report, error)
	Create(ctx context.Context, rep *model.Report) error
	UpdateStatus(ctx context.Context, id string, status model.ReportStatus, fixedTime *time.Time) (*model.Report, error)
	Stats(ctx context.Context) (*model.StatsResponse, error)
}

type ReportService struct {
	reports ReportStore
	cache   *CacheService
	logger  zerolog.Logger
}

func NewReportService(reports ReportStore, cache *CacheService, logger zerolog.Logger) *ReportService {
	return &ReportService{reports: reports, cache: cache, logger: logger}
}

// List returns all reports, newest first, through the cache.
func (s *ReportService) List(ctx context.Context) ([]model.Report, error) {
	if s.cache != nil {
		if data, err := s.cache.GetReportList(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("cache: report list read failed")
		} else if data != nil {
			var reports []model.Report
			if err := json.Unmarshal(data, &reports); err == nil {
				metrics.CacheHits.Inc()
				return reports, nil
			}
		}
		metrics.CacheMisses.Inc()
	}

	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetReportList(ctx, reports); err != nil {
			s.logger.Warn().Err(err).Msg("cache: report list write failed")
		}
	}
	return reports, nil
}

// Get returns a single report through the cache.
func (s *ReportService) Get(ctx context.Context, id string) (*model.Report, error) {
	if s.cache != nil {
		if data, err := s.cache.GetReport(ctx, id); err != nil {
			s.logger.Warn().Err(err).Str("report_id", id).Msg("cache: report read failed")
		} else if data != nil {
			var rep model.Report
			if err := json.Unmarshal(data, &rep); err == nil {
				metrics.CacheHits.Inc()
				return &rep, nil
			}
		}
		metrics.CacheMisses.Inc()
	}

	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetReport(ctx, id, rep); err != nil {
			s.logger.Warn().Err(err).Str("report_id", id).Msg("cache: report write failed")
		}
	}
	return rep, nil
}

// Create validates the submission, fills defaults, and persists a new report.
// Coordinates are the only hard requirement; everything else degrades to a
// sensible default so field submissions from flaky mobile clients still land.
func (s *ReportService) Create(ctx context.Context, in model.NewReportInput) (*model.Report, error) {
	if in.Latitude == nil || in.Longitude == nil {
		return nil, &ValidationError{Message: "latitude and longitude are required"}
	}
	if *in.Latitude < -90 || *in.Latitude > 90 {
		return nil, &ValidationError{Message: "latitude must be between -90 and 90"}
	}
	if *in.Longitude < -180 || *in.Longitude > 180 {
		return nil, &ValidationError{Message: "longitude must be between -180 and 180"}
	}

	severity := in.Severity
	if !model.ValidSeverity(severity) {
		severity = model.SeverityMedium
	}
	title := in.Title
	if title == "" {
		title = DefaultReportTitle
	}
	department := in.Department
	if department == "" {
		department = DefaultDepartment
	}

	ward := in.Ward
	if ward == "" && in.Municipality != "" && in.WardNumber != "" {
		ward = in.Municipality + "-" + in.WardNumber
	}

	rep := &model.Report{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  in.Description,
		Latitude:     *in.Latitude,
		Longitude:    *in.Longitude,
		District:     optional(in.District),
		Municipality: optional(in.Municipality),
		WardNumber:   optional(in.WardNumber),
		Ward:         optional(ward),
		Department:   department,
		Severity:     severity,
		Status:       model.StatusReported,
		ReporterName: optional(in.ReporterName),
		ReportTime:   time.Now().UTC(),
		ImageURL:     optional(in.ImageURL),
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateReport(ctx, rep.ID); err != nil {
			s.logger.Warn().Err(err).Msg("cache: invalidate after create failed")
		}
	}

	s.logger.Info().Str("report_id", rep.ID).Msg("report created")
	return rep, nil
}

// UpdateStatus transitions a report's repair status. FixedTime is only
// meaningful for the fixed status: it defaults to now when omitted, and is
// cleared when a report moves back to an open status.
func (s *ReportService) UpdateStatus(ctx context.Context, id string, status model.ReportStatus, fixedTime *time.Time) (*model.Report, error) {
	if status != model.StatusFixed {
		fixedTime = nil
	} else if fixedTime == nil {
		now := time.Now().UTC()
		fixedTime = &now
	}

	rep, err := s.reports.UpdateStatus(ctx, id, status, fixedTime)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateReport(ctx, id); err != nil {
			s.logger.Warn().Err(err).Str("report_id", id).Msg("cache: invalidate after status change failed")
		}
	}

	s.logger.Info().
		Str("report_id", id).
		Str("status", string(status)).
		Msg("report status updated")
	return rep, nil
}

// Leaderboard ranks the worst open-or-fixed potholes by net community votes.
func (s *ReportService) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	reports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildLeaderboard(reports, time.Now().UTC(), leaderboardLimit), nil
}

// Stats returns global aggregate counts.
func (s *ReportService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	return s.reports.Stats(ctx)
}

// BuildLeaderboard ranks reports by net votes descending. Ties keep the
// input order (newest first), so a fresh report outranks a stale one with
// the same score.
func BuildLeaderboard(reports []model.Report, now time.Time, limit int) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(reports))
	for _, rep := range reports {
		entries = append(entries, model.LeaderboardEntry{
			ID:                rep.ID,
			Title:             rep.Title,
			Ward:              rep.Ward,
			Department:        rep.Department,
			NetVotes:          rep.Upvotes - rep.Downvotes,
			Status:            rep.Status,
			OpenDurationHours: OpenDurationHours(rep, now),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].NetVotes > entries[j].NetVotes
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// OpenDurationHours is how long a report has been (or was) open: until its
// fix time for fixed reports, until now otherwise.
func OpenDurationHours(rep model.Report, now time.Time) float64 {
	end := now
	if rep.Status == model.StatusFixed && rep.FixedTime != nil {
		end = *rep.FixedTime
	}
	d := end.Sub(rep.ReportTime)
	if d < 0 {
		d = 0
	}
	return d.Hours()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
