package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pet-locator/models"
	"github.com/golang-jwt/jwt/v5"
)

// SessionIssuer is the "iss" claim of session tokens issued by the wallet
// bridge and by the devnet.
const SessionIssuer = "pet-locator-signer"

// GenerateSessionToken creates a signed HMAC-SHA256 session JWT for a wallet.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the wallet address in checksum form
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero, or if address is not a valid wallet address.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken(utils.SessionIssuer, "0x5aae...", time.Hour, "secret")
func GenerateSessionToken(issuer, address string, tokenDuration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	checksummed, err := ChecksumAddress(address)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("session subject: %w", err)
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   checksummed,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return models.SessionToken{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Address:          checksummed,
	}, nil
}

// ValidateSessionToken validates the given session JWT and extracts the
// wallet address.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) presence and address checksum normalisation
func ValidateSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionToken, error) {
	session := models.SessionToken{SignedString: tokenString}

	token, err := jwt.ParseWithClaims(tokenString, &session.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	session.Token = token

	return withAddress(session)
}

// ParseSessionToken decodes a session JWT without verifying its signature.
// The client holds no signing key; the ledger checks the signature on every
// signer-bound call. Expiry is not enforced here, use [models.SessionToken.Expired].
func ParseSessionToken(tokenString string) (models.SessionToken, error) {
	session := models.SessionToken{SignedString: tokenString}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &session.RegisteredClaims)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred parsing token: %w", err)
	}
	session.Token = token

	return withAddress(session)
}

func withAddress(session models.SessionToken) (models.SessionToken, error) {
	sub, err := session.GetAddress()
	if err != nil {
		return models.SessionToken{}, err
	}

	session.Address, err = ChecksumAddress(sub)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("session subject: %w", err)
	}

	return session, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>" header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
