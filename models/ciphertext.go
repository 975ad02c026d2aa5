package models

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Handle is an opaque reference to a ciphertext stored by the ledger. It has
// no meaning outside a decryption request.
type Handle string

// HexBytes is a byte slice that travels as a 0x-prefixed hex string in JSON,
// the way ledger nodes and relayers exchange ciphertexts and proofs.
type HexBytes []byte

// MarshalJSON encodes b as "0x<hex>".
func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON accepts a hex string with or without the 0x prefix.
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	decoded, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return fmt.Errorf("decode hex bytes: %w", err)
	}

	*b = decoded
	return nil
}

// String returns the 0x-prefixed hex form.
func (b HexBytes) String() string {
	return "0x" + hex.EncodeToString(b)
}

// EncryptedInput is the output of client-side encryption: the ciphertext
// handle the contract will store and the input proof binding it to the
// contract and the recipient.
type EncryptedInput struct {
	Handle Handle   `json:"handle"`
	Proof  HexBytes `json:"proof"`
}

// DecryptionResult is returned by the decryption service after the proof has
// been produced and accepted on-chain.
type DecryptionResult struct {
	// ClearValues maps every requested handle to its cleartext. Callers must
	// index by the handle they asked for.
	ClearValues map[Handle]int64 `json:"clear_values"`

	// AbiEncodedClearValues is the payload forwarded to the contract.
	AbiEncodedClearValues HexBytes `json:"abi_encoded_clear_values"`

	// DecryptionProof attests that ClearValues decrypt the handles.
	DecryptionProof HexBytes `json:"decryption_proof"`
}
