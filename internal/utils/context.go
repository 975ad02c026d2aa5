// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, proof hashing,
// HTTP response writing, HTTP client initialization, session JWT handling,
// wallet address checksums and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SignerCtxKey is the key used to store the authenticated signer address in
// the context of a devnet request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SignerCtxKey, "0xAbC...")
var SignerCtxKey = contextKey("signer")

// GetSignerFromContext retrieves the signer address from the context.
//
// Returns the address and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetSignerFromContext(ctx context.Context) (string, bool) {
	signer, ok := ctx.Value(SignerCtxKey).(string)
	return signer, ok && signer != ""
}
