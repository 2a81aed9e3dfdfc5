// Package password verifies user passwords against the stored
// representation in f_pessoa. The stored value carries no format tag, so the
// format is inferred structurally: bcrypt hash, MD5 hex digest, SHA-1 base64
// digest or plaintext. The legacy digest formats are retained only for
// accounts created before the bcrypt migration.
package password

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt cost used when re-hashing legacy passwords
	DefaultCost = 12
)

// Match identifies which stored format matched during verification
type Match int

const (
	MatchNone Match = iota
	MatchBcrypt
	MatchMD5
	MatchSHA1
	MatchPlain
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Hash hashes a password using bcrypt
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether plain matches the stored representation.
func Verify(plain, stored string) bool {
	return Check(plain, stored) != MatchNone
}

// Check evaluates the format cascade in fixed order and returns which step
// matched. The ordering is load-bearing: a plaintext password that happens
// to look like a 32-char hex digest is checked as MD5 and rejected. Known
// limitation, kept for compatibility with the existing credential data.
func Check(plain, stored string) Match {
	if stored == "" {
		return MatchNone
	}

	if hasBcryptPrefix(stored) {
		// Malformed hashes count as a mismatch, not an error
		if bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil {
			return MatchBcrypt
		}
		return MatchNone
	}

	if isHex32(stored) {
		sum := md5.Sum([]byte(plain))
		if strings.EqualFold(hex.EncodeToString(sum[:]), stored) {
			return MatchMD5
		}
		// Definitive: no fallthrough past a hex-shaped value
		return MatchNone
	}

	if raw, err := base64.StdEncoding.DecodeString(stored); err == nil && len(raw) == sha1.Size {
		sum := sha1.Sum([]byte(plain))
		if base64.StdEncoding.EncodeToString(sum[:]) == stored {
			return MatchSHA1
		}
		// A 20-byte base64 value may still be a plaintext password that
		// decodes by coincidence; fall through.
	}

	if plain == stored {
		return MatchPlain
	}
	return MatchNone
}

// IsLegacyHash reports whether m is one of the deprecated digest formats
// eligible for opportunistic re-hashing to bcrypt.
func (m Match) IsLegacyHash() bool {
	return m == MatchMD5 || m == MatchSHA1
}

func hasBcryptPrefix(s string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isHex32(s string) bool {
	if len(s) != 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
