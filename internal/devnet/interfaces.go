// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devnet simulates the confidential ledger contract and the
// decryption relayer in memory, so the client can run end-to-end without a
// chain.
//
// Ciphertexts are not encrypted: the relayer keeps the cleartext behind an
// opaque handle. Input and decryption proofs are HMACs under the devnet
// proof key, which is also the signing key of session tokens. State-changing
// calls become transactions that confirm after the configured delay and may
// still revert at that point.
package devnet

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pet-locator/models"
)

// LedgerService is the pet-location contract.
type LedgerService interface {
	// Address returns the checksummed contract address.
	Address() string

	// ListRecordIDs returns the ids of confirmed records in creation order.
	ListRecordIDs(ctx context.Context) []string

	// GetRecord returns a confirmed record.
	GetRecord(ctx context.Context, id string) (models.Record, error)

	// GetCiphertextHandle returns the handle of the confidential latitude.
	GetCiphertextHandle(ctx context.Context, id string) (models.Handle, error)

	// CreateRecord checks req on behalf of signer and queues the creation.
	// It returns the transaction hash.
	CreateRecord(ctx context.Context, signer string, req models.CreateRecordRequest) (string, error)

	// SubmitVerification checks the decryption proof of record id and
	// queues the disclosure. It returns the transaction hash.
	SubmitVerification(ctx context.Context, signer, id string, req models.VerifyRequest) (string, error)

	// Receipt reports the state of a submitted transaction.
	Receipt(ctx context.Context, hash string) (models.TxReceipt, error)
}

// RelayerService encrypts inputs and publicly decrypts handles.
type RelayerService interface {
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error)
	PublicDecrypt(ctx context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error)
}

// SessionService issues and checks signer session tokens.
type SessionService interface {
	IssueSession(address string, ttl time.Duration) (models.SessionToken, error)
	ParseSession(token string) (models.SessionToken, error)
}
