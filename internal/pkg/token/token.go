// Package token issues the mock bearer token returned by the login flow.
// The token is URL-safe base64 over a JSON claims object, with padding
// stripped. It is not signed or encrypted: any holder can decode and alter
// it. It is a placeholder for a real session token and must not be treated
// as a security boundary.
package token

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// Claims is the payload encoded into the mock token
type Claims struct {
	Sub  string `json:"sub"`
	Tipo string `json:"tipo"`
	Tdi  string `json:"tdi,omitempty"`
	Iat  int64  `json:"iat"`
}

// Issue encodes claims with the issued-at set to the current time
func Issue(c Claims) (string, error) {
	return IssueAt(c, time.Now())
}

// IssueAt encodes claims with an explicit issue time. No expiry is embedded.
func IssueAt(c Claims, now time.Time) (string, error) {
	c.Iat = now.Unix()
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode parses a token back into its claims
func Decode(token string) (*Claims, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var c Claims
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
