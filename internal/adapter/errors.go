package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUserRejected is returned when the signer declined to sign.
	ErrUserRejected = errors.New("user rejected transaction")
	// ErrAlreadyVerified is returned when a decryption proof is submitted
	// for a record that is already verified.
	ErrAlreadyVerified = errors.New("data already verified")
	// ErrTransactionFailed is returned by Transaction.Wait for a reverted
	// transaction whose reason matches no other sentinel.
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrEmptyResponse is returned when a 2xx response lacks a required field.
	ErrEmptyResponse = errors.New("empty response")
)
