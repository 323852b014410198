package model

import "time"

// ReportStatus is the repair lifecycle state of a pothole report.
type ReportStatus string

const (
	StatusReported   ReportStatus = "reported"
	StatusScheduled  ReportStatus = "scheduled"
	StatusInProgress ReportStatus = "in_progress"
	StatusFixed      ReportStatus = "fixed"
)

// ValidStatus reports whether s is a known repair status.
func ValidStatus(s ReportStatus) bool {
	switch s {
	case StatusReported, StatusScheduled, StatusInProgress, StatusFixed:
		return true
	}
	return false
}

// Severity classifies how bad a pothole is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ValidSeverity reports whether s is a known severity.
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Report is a geotagged pothole report with its vote aggregates.
type Report struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	District     *string      `json:"district,omitempty"`
	Municipality *string      `json:"municipality,omitempty"`
	WardNumber   *string      `json:"wardNumber,omitempty"`
	Ward         *string      `json:"ward,omitempty"`
	Department   string       `json:"department"`
	Severity     Severity     `json:"severity"`
	Confidence   *float64     `json:"potholeConfidence,omitempty"`
	Status       ReportStatus `json:"status"`
	Upvotes      int          `json:"upvotes"`
	Downvotes    int          `json:"downvotes"`
	ReporterName *string      `json:"reporterName,omitempty"`
	ReportTime   time.Time    `json:"reportTime"`
	FixedTime    *time.Time   `json:"fixedTime,omitempty"`
	ImageURL     *string      `json:"imageUrl,omitempty"`
}

// NewReportInput is the API request body for creating a report.
// Coordinates are pointers so a missing field is distinguishable from 0.
type NewReportInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Department   string   `json:"department"`
	Severity     Severity `json:"severity"`
	ReporterName string   `json:"reporterName"`
	District     string   `json:"district"`
	Municipality string   `json:"municipality"`
	WardNumber   string   `json:"wardNumber"`
	Ward         string   `json:"ward"`
	ImageURL     string   `json:"imageUrl"`
}

// StatusUpdateRequest is the API request body for PATCH /api/reports/:id/status.
type StatusUpdateRequest struct {
	Status    ReportStatus `json:"status"`
	FixedTime string       `json:"fixedTime,omitempty"`
}

// LeaderboardEntry ranks a report by community attention.
type LeaderboardEntry struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Ward              *string      `json:"ward,omitempty"`
	Department        string       `json:"department"`
	NetVotes          int          `json:"netVotes"`
	Status            ReportStatus `json:"status"`
	OpenDurationHours float64      `json:"openDurationHours"`
}

// StatsResponse is the API response for global statistics.
type StatsResponse struct {
	TotalReports    int            `json:"totalReports"`
	TotalVotes      int            `json:"totalVotes"`
	TotalUsers      int            `json:"totalUsers"`
	TotalComments   int            `json:"totalComments"`
	FixedReports    int            `json:"fixedReports"`
	ReportsByStatus map[string]int `json:"reportsByStatus"`
}
