package config

import (
	"testing"

	"github.com/Nischal373/PAILA/internal/model"
)

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("AUTH_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail without AUTH_SESSION_SECRET")
	}

	t.Setenv("AUTH_SESSION_SECRET", "   ")
	if _, err := Load(); err == nil {
		t.Fatal("Load should fail with a blank AUTH_SESSION_SECRET")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_SESSION_SECRET", "s3cret")
	t.Setenv("AUTH_USERS_JSON", "")
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.IsProduction() {
		t.Error("development config should not report production")
	}
	if len(cfg.BootstrapAccounts) != 0 {
		t.Errorf("expected no bootstrap accounts, got %d", len(cfg.BootstrapAccounts))
	}
}

func TestParseBootstrapAccounts(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"invalid json", "{not json", 0, true},
		{"not an array", `{"username":"a"}`, 0, true},
		{"valid pair", `[{"username":"root","password":"pw","role":"superadmin"},{"username":"bob","password":"pw2"}]`, 2, false},
		{"drops incomplete entries", `[{"username":"nopass"},{"password":"nouser"},{"username":"ok","password":"pw"}]`, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBootstrapAccounts(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d accounts, want %d", len(got), tt.want)
			}
		})
	}
}

func TestParseBootstrapAccountsCoercesRole(t *testing.T) {
	accounts, err := parseBootstrapAccounts(`[
		{"username":"root","password":"pw","role":"superadmin"},
		{"username":"weird","password":"pw","role":"wizard"},
		{"username":"plain","password":"pw"}
	]`)
	if err != nil {
		t.Fatalf("parseBootstrapAccounts: %v", err)
	}

	want := []model.Role{model.RoleSuperAdmin, model.RoleUser, model.RoleUser}
	for i, a := range accounts {
		if a.Role != want[i] {
			t.Errorf("account %q role = %q, want %q", a.Username, a.Role, want[i])
		}
	}
}
