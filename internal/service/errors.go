package service

import "errors"

var (
	// ErrUnauthenticated is returned when no wallet session is connected.
	ErrUnauthenticated = errors.New("wallet not connected")
	// ErrUserCancelled is returned when the signer declined the transaction.
	ErrUserCancelled = errors.New("transaction cancelled by user")
	// ErrAlreadyVerified marks a proof rejected because the record was
	// verified concurrently. Reveal reports it as success.
	ErrAlreadyVerified = errors.New("data already verified")
	// ErrSubmissionFailed wraps any other Create failure.
	ErrSubmissionFailed = errors.New("submission failed")
	// ErrVerificationFailed wraps any other Reveal failure.
	ErrVerificationFailed = errors.New("verification failed")
	// ErrPartialReadFailure is logged for every record a refresh skipped.
	ErrPartialReadFailure = errors.New("record read failed")
	// ErrOperationInFlight is returned when a conflicting operation runs.
	ErrOperationInFlight = errors.New("operation already in flight")
	// ErrInvalidInput is returned for empty or non-numeric create input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrLoadFailed is returned when the record list cannot be read.
	ErrLoadFailed = errors.New("failed to load records")
	// ErrHandleNotInResult is returned when the decryption result lacks the
	// requested handle.
	ErrHandleNotInResult = errors.New("requested handle missing from decryption result")
	// ErrRelayerUnavailable is returned when the relayer does not answer.
	ErrRelayerUnavailable = errors.New("relayer unavailable")
)
