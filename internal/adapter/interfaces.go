// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstractions the client uses to
// talk to the ledger contract and to the encryption relayer.
//
// [LedgerGateway] combines read-only contract calls with signer-bound calls
// that return a confirmable [Transaction]. [Relayer] wraps the external
// encrypt and public-decrypt capabilities. Both ship as JSON/HTTP
// implementations built on resty ([NewHTTPLedgerGateway], [NewHTTPRelayer]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// ledger revert messages by mapHTTPError and mapLedgerError so that callers can
// classify failures with [errors.Is] (e.g. [ErrUserRejected] when the signer
// declined, [ErrAlreadyVerified] when a proof was submitted twice).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pet-locator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transaction is a submitted state change that can be waited on until the
// ledger finalizes it.
type Transaction interface {
	// Hash returns the ledger transaction hash.
	Hash() string

	// Wait blocks until the transaction is confirmed, failed, or ctx is done.
	// A failed transaction returns its revert reason mapped through the
	// sentinels of this package.
	Wait(ctx context.Context) error
}

// LedgerReader is the read-only side of the contract.
type LedgerReader interface {
	// Address returns the contract address. The value is fetched once and
	// cached for the lifetime of the gateway.
	Address(ctx context.Context) (string, error)

	// ListRecordIDs returns every record identity in ledger insertion order.
	ListRecordIDs(ctx context.Context) ([]string, error)

	// GetRecord returns the public view of a single record.
	GetRecord(ctx context.Context, id string) (models.Record, error)

	// GetCiphertextHandle returns the handle of the record's confidential field.
	GetCiphertextHandle(ctx context.Context, id string) (models.Handle, error)
}

// LedgerSigner is the signer-bound side of the contract. Every call is
// authorized with the session bearer token.
type LedgerSigner interface {
	// SetToken stores the signer session token attached to every write.
	SetToken(token string)

	// CreateRecord submits a new record holding an encrypted field and its
	// input proof.
	CreateRecord(ctx context.Context, req models.CreateRecordRequest) (Transaction, error)

	// SubmitVerification forwards a decryption proof for record id so the
	// contract can persist the disclosed value and set the verified flag.
	SubmitVerification(ctx context.Context, id string, clearValues, proof models.HexBytes) (Transaction, error)
}

// LedgerGateway is the full contract surface consumed by the client.
type LedgerGateway interface {
	LedgerReader
	LedgerSigner
}

// Relayer wraps the homomorphic-encryption capabilities that live outside the
// client: input encryption with a proof, and public decryption of handles.
type Relayer interface {
	// Encrypt encrypts req.Value for req.ContractAddress and req.UserAddress
	// and returns the ciphertext handle with its input proof.
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error)

	// PublicDecrypt asks the decryption service for the cleartexts of
	// req.Handles together with a proof the contract can check.
	PublicDecrypt(ctx context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error)

	// Version returns the build version reported by the relayer.
	Version(ctx context.Context) (string, error)
}
