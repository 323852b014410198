package middleware

import (
	"strings"
	"testing"

	"github.com/Nischal373/PAILA/internal/model"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "alice", "alice", false},
		{"trims whitespace", "  alice  ", "alice", false},
		{"exactly 3 chars", "bob", "bob", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too short", "ab", "", true},
		{"too long", strings.Repeat("x", 65), "", true},
		{"exactly 64", strings.Repeat("x", 64), strings.Repeat("x", 64), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUsername(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Error("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "secret1", false},
		{"exactly 6 chars", "sixsix", false},
		{"empty", "", true},
		{"too short", "12345", true},
		{"too long", strings.Repeat("x", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := ValidatePassword(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Error("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

func TestValidateReportID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid uuid", "550e8400-e29b-41d4-a716-446655440000", false},
		{"trims whitespace", " 550e8400-e29b-41d4-a716-446655440000 ", false},
		{"empty", "", true},
		{"not a uuid", "abc123", true},
		{"sql injection", "'; DROP TABLE reports--", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateReportID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Error("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if !tt.wantErr && got == "" {
				t.Error("valid id should be returned")
			}
		})
	}
}

func TestValidateDirection(t *testing.T) {
	if msg := ValidateDirection(model.VoteUp); msg != "" {
		t.Errorf("up should be valid: %s", msg)
	}
	if msg := ValidateDirection(model.VoteDown); msg != "" {
		t.Errorf("down should be valid: %s", msg)
	}
	if msg := ValidateDirection("sideways"); msg == "" {
		t.Error("sideways should be rejected")
	}
	if msg := ValidateDirection(""); msg == "" {
		t.Error("empty direction should be rejected")
	}
}

func TestValidateStatus(t *testing.T) {
	for _, s := range []model.ReportStatus{
		model.StatusReported, model.StatusScheduled, model.StatusInProgress, model.StatusFixed,
	} {
		if msg := ValidateStatus(s); msg != "" {
			t.Errorf("%s should be valid: %s", s, msg)
		}
	}
	if msg := ValidateStatus("closed"); msg == "" {
		t.Error("unknown status should be rejected")
	}
}

func TestValidateCommentBody(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "This one is deep", "This one is deep", false},
		{"trims", "  hi  ", "hi", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("x", 2001), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateCommentBody(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Error("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/api/reports", "/api/reports"},
		{"/api/reports/550e8400-e29b-41d4-a716-446655440000", "/api/reports/:id"},
		{"/api/reports/550e8400-e29b-41d4-a716-446655440000/vote", "/api/reports/:id/vote"},
		{"/api/auth/login", "/api/auth/login"},
	}
	for _, tt := range tests {
		if got := sanitizePath(tt.in); got != tt.want {
			t.Errorf("sanitizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
