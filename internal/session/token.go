// Package session creates and verifies signed, expiring session tokens.
//
// A token is "payload.signature" where payload is the base64url-encoded JSON
// claims and signature is an HMAC-SHA256 over the encoded payload. Tokens are
// self-contained: there is no server-side session store and no revocation
// list, so logout only clears the client cookie and a stolen token stays
// valid until its natural expiry. The signing algorithm is fixed; nothing in
// the token selects it.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/Nischal373/PAILA/internal/model"
)

// CookieName is the HTTP cookie carrying the session token.
const CookieName = "paila_session"

// TTL is the fixed session lifetime.
const TTL = 7 * 24 * time.Hour

type claims struct {
	Username    string     `json:"username"`
	Role        model.Role `json:"role"`
	DisplayName string     `json:"displayName,omitempty"`
	Iat         int64      `json:"iat"`
	Exp         int64      `json:"exp"`
}

// Codec signs and verifies session tokens with a server-held secret.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec returns a Codec signing with the given secret.
func NewCodec(secret string) *Codec {
	return &Codec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Encode serializes user into a signed token expiring after TTL.
func (c *Codec) Encode(user model.SessionUser) (string, error) {
	now := c.now().Unix()
	payload, err := json.Marshal(claims{
		Username:    user.Username,
		Role:        user.Role,
		DisplayName: user.DisplayName,
		Iat:         now,
		Exp:         now + int64(TTL.Seconds()),
	})
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + c.sign(encoded), nil
}

// Decode verifies a token and returns the session user it carries.
// The boolean is false for any malformed, tampered, mistyped, or expired
// token; callers never learn which check failed.
func (c *Codec) Decode(token string) (model.SessionUser, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return model.SessionUser{}, false
	}

	expected := c.sign(parts[0])
	if !hmac.Equal([]byte(parts[1]), []byte(expected)) {
		return model.SessionUser{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return model.SessionUser{}, false
	}

	var cl claims
	if err := json.Unmarshal(payload, &cl); err != nil {
		return model.SessionUser{}, false
	}

	if cl.Username == "" || !model.ValidRole(cl.Role) {
		return model.SessionUser{}, false
	}
	if cl.Exp <= c.now().Unix() {
		return model.SessionUser{}, false
	}

	return model.SessionUser{
		Username:    cl.Username,
		Role:        cl.Role,
		DisplayName: cl.DisplayName,
	}, true
}

func (c *Codec) sign(encodedPayload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
