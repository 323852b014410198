package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Nischal373/PAILA/internal/model"
)

func testUser() model.SessionUser {
	return model.SessionUser{
		Username:    "alice",
		Role:        model.RoleUser,
		DisplayName: "Alice",
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCodec("test-secret")

	token, err := c.Encode(testUser())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, ok := c.Decode(token)
	if !ok {
		t.Fatal("Decode rejected a freshly encoded token")
	}
	if got != testUser() {
		t.Errorf("Decode = %+v, want %+v", got, testUser())
	}
}

func TestDecodeRejectsTamperedPayload(t *testing.T) {
	c := NewCodec("test-secret")
	token, err := c.Encode(testUser())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	parts := strings.Split(token, ".")
	payload, _ := base64.RawURLEncoding.DecodeString(parts[0])
	tampered := strings.Replace(string(payload), `"role":"user"`, `"role":"superadmin"`, 1)
	forged := base64.RawURLEncoding.EncodeToString([]byte(tampered)) + "." + parts[1]

	if _, ok := c.Decode(forged); ok {
		t.Error("tampered payload with stale signature must be rejected")
	}
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	token, err := NewCodec("secret-a").Encode(testUser())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, ok := NewCodec("secret-b").Decode(token); ok {
		t.Error("token signed with a different secret must be rejected")
	}
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	c := NewCodec("test-secret")

	// Issue the token 8 days in the past so exp has already elapsed,
	// then verify against the real clock.
	c.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	token, err := c.Encode(testUser())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	c.now = time.Now
	if _, ok := c.Decode(token); ok {
		t.Error("token with exp in the past must be rejected, even with a valid signature")
	}
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	c := NewCodec("test-secret")
	valid, _ := c.Encode(testUser())

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", strings.ReplaceAll(valid, ".", "")},
		{"too many parts", valid + ".extra"},
		{"empty payload", "." + strings.Split(valid, ".")[1]},
		{"empty signature", strings.Split(valid, ".")[0] + "."},
		{"payload not base64", "!!!!." + strings.Split(valid, ".")[1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := c.Decode(tt.token); ok {
				t.Errorf("Decode(%q) accepted a malformed token", tt.token)
			}
		})
	}
}

func TestDecodeRejectsBadClaims(t *testing.T) {
	c := NewCodec("test-secret")

	// Sign arbitrary claims directly so only the claim checks can fail.
	forge := func(cl claims) string {
		payload, err := json.Marshal(cl)
		if err != nil {
			t.Fatalf("marshal claims: %v", err)
		}
		encoded := base64.RawURLEncoding.EncodeToString(payload)
		return encoded + "." + c.sign(encoded)
	}

	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name string
		cl   claims
	}{
		{"missing username", claims{Role: model.RoleUser, Exp: future}},
		{"unknown role", claims{Username: "alice", Role: "root", Exp: future}},
		{"empty role", claims{Username: "alice", Exp: future}},
		{"zero exp", claims{Username: "alice", Role: model.RoleUser}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := c.Decode(forge(tt.cl)); ok {
				t.Errorf("Decode accepted claims %+v", tt.cl)
			}
		})
	}
}
