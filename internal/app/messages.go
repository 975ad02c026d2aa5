// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants.
//
// Status* constants are the user-facing texts the client shows in its status
// banner. Msg* constants are written into devnet response bodies and revert
// reasons, where the client adapters match some of them (see package adapter).
// Keeping them in one place ensures consistent wording across both binaries.
package app

// User-facing statuses of the client.
const (
	StatusAdding             = "Adding pet location with FHE encryption..."
	StatusWaitingConfirm     = "Waiting for transaction confirmation..."
	StatusAdded              = "Pet location added!"
	StatusUserCancelled      = "Transaction cancelled by user"
	StatusSubmissionFailed   = "Submission failed: %s"
	StatusDecrypting         = "Decrypting with FHE and verifying on-chain..."
	StatusAlreadyVerified    = "Data already verified on-chain"
	StatusDecrypted          = "Data decrypted and verified!"
	StatusDecryptionFailed   = "Decryption failed: %s"
	StatusConnectWallet      = "Please connect wallet first"
	StatusLoadFailed         = "Failed to load data"
	StatusFillAllFields      = "Please fill in name, latitude and longitude"
	StatusInvalidCoordinates = "Latitude and longitude must be numbers"
	StatusOperationInFlight  = "Another operation is still running"
	StatusCopied             = "Coordinates copied to clipboard"
	StatusCopyFailed         = "Copy failed: %s"
	StatusRelayerUnavailable = "Relayer unavailable: %s"
)

// Devnet response bodies and revert reasons.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned on unexpected failures.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when the session bearer token
	// is missing, expired or fails signature verification.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgRecordNotFound is returned for unknown record ids.
	MsgRecordNotFound = "record not found"

	// MsgRecordAlreadyExists is the revert reason for a duplicate record id.
	MsgRecordAlreadyExists = "record already exists"

	// MsgAlreadyVerified is the revert reason for a second verification of
	// the same record.
	MsgAlreadyVerified = "Data already verified"

	// MsgInvalidInputProof is the revert reason for a ciphertext whose input
	// proof does not bind it to the contract and the sender.
	MsgInvalidInputProof = "invalid input proof"

	// MsgInvalidDecryptionProof is the revert reason for a decryption proof
	// that does not match the record's ciphertext.
	MsgInvalidDecryptionProof = "invalid decryption proof"

	// MsgUnknownHandle is returned by the relayer for handles it never issued.
	MsgUnknownHandle = "unknown ciphertext handle"

	// MsgHandleNotDecryptable is returned by the relayer for handles the
	// contract has not marked publicly decryptable.
	MsgHandleNotDecryptable = "handle is not publicly decryptable"

	// MsgUnknownTransaction is returned for unknown transaction hashes.
	MsgUnknownTransaction = "unknown transaction"
)
