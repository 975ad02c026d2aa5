// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the domain types shared by the ledger adapters,
// the client services, the local record cache and the terminal UI.
package models

// Record is one pet location entry as stored by the ledger contract.
//
// Latitude is confidential: it lives on-chain as a ciphertext and only becomes
// visible through DecryptedValue once a decryption proof has been verified.
// Longitude is public and carried in PublicValue1. Both are fixed-point
// encoded (see package codec).
type Record struct {
	// ID is the ledger-wide record identity, e.g. "pet-0192f7c4-...".
	ID string `json:"id"`

	// Name is the display name entered by the creator.
	Name string `json:"name"`

	// Creator is the wallet address that submitted the record.
	Creator string `json:"creator"`

	// Timestamp is the creation time in epoch seconds as reported by the ledger.
	Timestamp int64 `json:"timestamp"`

	// PublicValue1 holds the encoded longitude in clear form.
	PublicValue1 int64 `json:"public_value1"`

	// PublicValue2 is an auxiliary public field, always zero on create.
	PublicValue2 int64 `json:"public_value2"`

	// Description is the static tag attached at creation.
	Description string `json:"description"`

	// IsVerified reports whether a decryption proof for the confidential
	// field has been accepted on-chain. It only ever moves false -> true,
	// together with DecryptedValue.
	IsVerified bool `json:"is_verified"`

	// DecryptedValue is the disclosed encoded latitude. Zero until verified.
	DecryptedValue int64 `json:"decrypted_value"`
}

// NewRecord is the raw creation form as typed by the user.
type NewRecord struct {
	Name      string
	Latitude  string
	Longitude string
}
