// Package service implements the client-side workflow that records pet
// locations with a confidential latitude: encrypt, submit, and later reveal
// through a decryption proof verified on-chain.
//
// [ClientRecordService] is the orchestrator. It drives the ledger gateway and
// the relayer through [ClientEncryptionService] and [ClientDecryptionService],
// keeps the record snapshot, the per-record reveal state and reports progress
// on the [StatusBoard]. Collaborator failures never leave this package as raw
// transport errors: they are classified into the sentinels of errors.go and a
// user-facing status.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/adapter"
	"github.com/MKhiriev/go-pet-locator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientSession exposes the wallet identity of the connected signer.
type ClientSession interface {
	// CurrentIdentity returns the checksummed wallet address, or ("", false)
	// when no valid session is held.
	CurrentIdentity() (string, bool)

	// Connected reports whether a non-expired session is held.
	Connected() bool

	// Token returns the raw session JWT, or "" when not connected.
	Token() string
}

// ClientEncryptionService wraps the relayer encrypt capability.
type ClientEncryptionService interface {
	// Encrypt encrypts value for contract and recipient and returns the
	// ciphertext handle with its input proof.
	Encrypt(ctx context.Context, contract, recipient string, value int64) (models.EncryptedInput, error)

	// Encrypting reports whether an Encrypt call is in flight.
	Encrypting() bool

	// Ready reports whether the relayer answers.
	Ready(ctx context.Context) error
}

// SubmitFunc forwards a cleartext payload and its decryption proof to the
// ledger and returns the resulting transaction.
type SubmitFunc func(ctx context.Context, clearValues, proof models.HexBytes) (adapter.Transaction, error)

// ClientDecryptionService wraps the relayer public-decrypt capability.
type ClientDecryptionService interface {
	// VerifyDecryption asks the relayer for the cleartexts of handles, hands
	// the proof to submit and waits until the returned transaction is
	// confirmed. The result is keyed by handle.
	VerifyDecryption(ctx context.Context, handles []models.Handle, contract string, submit SubmitFunc) (models.DecryptionResult, error)

	// Decrypting reports whether a VerifyDecryption call is in flight.
	Decrypting() bool
}

// StatusBoard holds one user-visible status per scope. Success and error
// statuses clear themselves after a delay unless superseded.
type StatusBoard interface {
	// Set replaces the status of scope.
	Set(scope string, kind models.StatusKind, message string)

	// Get returns the status of scope, idle when none is visible.
	Get(scope string) models.OperationStatus

	// Banner returns the most recently set status that is still visible.
	Banner() models.OperationStatus
}

// ClientRecordService orchestrates the record workflow.
type ClientRecordService interface {
	// Create validates and encodes in, encrypts the latitude, submits the
	// record with the longitude in clear and waits for confirmation. On
	// success a fresh refresh runs and the new record is returned.
	Create(ctx context.Context, in models.NewRecord) (models.Record, error)

	// Refresh reloads every record from the ledger. Records that fail to
	// load are skipped. Concurrent callers share one in-flight refresh.
	Refresh(ctx context.Context) ([]models.Record, error)

	// Reveal toggles the decrypted view of record id. When plaintext is held
	// it is dropped and (nil, nil) is returned. Otherwise the coordinates are
	// read from an already verified record or obtained through a decryption
	// proof submitted on-chain. (nil, nil) is also returned when the proof
	// was rejected because the record had been verified concurrently.
	Reveal(ctx context.Context, id string) (*models.Coordinates, error)

	// Close drops the decrypted view of record id.
	Close(id string)

	// RevealState returns the reveal state of record id.
	RevealState(id string) models.RevealState

	// Revealed returns the decrypted coordinates of record id, if held.
	Revealed(id string) (models.Coordinates, bool)

	// Records returns a copy of the last committed snapshot.
	Records() []models.Record

	// Stats summarises the snapshot relative to now.
	Stats(now time.Time) models.Stats

	// LoadCached primes the snapshot from the local record cache unless a
	// refresh has already committed.
	LoadCached(ctx context.Context) ([]models.Record, error)

	// Adding reports whether a Create call is in flight.
	Adding() bool

	// Refreshing reports whether a refresh is in flight.
	Refreshing() bool

	// Revealing reports whether a Reveal of record id is in flight.
	Revealing(id string) bool
}
