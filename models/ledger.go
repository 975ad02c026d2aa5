package models

// Wire types of the ledger and relayer JSON RPC. They are shared by the HTTP
// adapters and the devnet simulator that serves the same API.

// ContractResponse is returned by GET /api/contract.
type ContractResponse struct {
	Address string `json:"address"`
}

// RecordIDsResponse is returned by GET /api/records.
type RecordIDsResponse struct {
	IDs []string `json:"ids"`
}

// HandleResponse is returned by GET /api/records/{id}/handle.
type HandleResponse struct {
	Handle Handle `json:"handle"`
}

// CreateRecordRequest is the body of POST /api/records.
type CreateRecordRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	EncryptedValue Handle   `json:"encrypted_value"`
	InputProof     HexBytes `json:"input_proof"`
	PublicValue1   int64    `json:"public_value1"`
	PublicValue2   int64    `json:"public_value2"`
	Description    string   `json:"description"`
}

// VerifyRequest is the body of POST /api/records/{id}/verify.
type VerifyRequest struct {
	AbiEncodedClearValues HexBytes `json:"abi_encoded_clear_values"`
	DecryptionProof       HexBytes `json:"decryption_proof"`
}

// TxResponse is returned by every state-changing call.
type TxResponse struct {
	TxHash string `json:"tx_hash"`
}

// TxStatus is the lifecycle of a submitted transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

// TxReceipt is returned by GET /api/tx/{hash}.
type TxReceipt struct {
	TxHash string   `json:"tx_hash"`
	Status TxStatus `json:"status"`
	Error  string   `json:"error,omitempty"`
}

// EncryptRequest is the body of the relayer POST /api/encrypt.
type EncryptRequest struct {
	ContractAddress string `json:"contract_address"`
	UserAddress     string `json:"user_address"`
	Value           int64  `json:"value"`
}

// PublicDecryptRequest is the body of the relayer POST /api/public-decrypt.
type PublicDecryptRequest struct {
	Handles         []Handle `json:"handles"`
	ContractAddress string   `json:"contract_address"`
}
