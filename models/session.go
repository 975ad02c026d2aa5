package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken wraps the signer session JWT handed over by the wallet bridge.
//
// The "sub" claim carries the connected wallet address. Address caches the
// checksummed form of it once the token has been parsed.
type SessionToken struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard claim set (sub, exp,
	// iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent as bearer auth.
	SignedString string `json:"-"`

	// Address is the wallet address from "sub" in EIP-55 checksum form.
	Address string `json:"-"`
}

// GetAddress returns the raw "sub" claim.
func (t *SessionToken) GetAddress() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting address from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("empty subject")
	}

	return sub, nil
}

// Expired reports whether the token carries an expiry at or before now.
// Tokens without "exp" never expire.
func (t *SessionToken) Expired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}

	return !now.Before(t.ExpiresAt.Time)
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
