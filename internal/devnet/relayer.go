package devnet

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

// Domain tags keep the three kinds of HMAC apart.
var (
	tagHandle     = []byte("handle")
	tagInputProof = []byte("input-proof")
	tagDecryption = []byte("decryption-proof")
	tagTx         = []byte("tx")
	tagContract   = []byte("contract")
)

type ciphertext struct {
	value    int64
	contract string
	owner    string
	public   bool
}

type relayer struct {
	mu          sync.RWMutex
	ciphertexts map[models.Handle]*ciphertext
	logger      *logger.Logger
}

func newRelayer(logger *logger.Logger) *relayer {
	return &relayer{ciphertexts: make(map[models.Handle]*ciphertext), logger: logger}
}

// Encrypt implements [RelayerService]. The handle is bound to the contract
// and the user by the input proof.
func (r *relayer) Encrypt(_ context.Context, req models.EncryptRequest) (models.EncryptedInput, error) {
	contract, err := utils.ChecksumAddress(req.ContractAddress)
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("%w: contract address: %w", ErrInvalidData, err)
	}
	owner, err := utils.ChecksumAddress(req.UserAddress)
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("%w: user address: %w", ErrInvalidData, err)
	}

	nonce := uuid.New()
	handle := models.Handle(models.HexBytes(utils.Hash(tagHandle, nonce[:])).String())

	r.mu.Lock()
	r.ciphertexts[handle] = &ciphertext{value: req.Value, contract: contract, owner: owner}
	r.mu.Unlock()

	r.logger.Debug().Str("func", "relayer.Encrypt").Str("handle", string(handle)).
		Str("owner", utils.ShortAddress(owner)).Msg("input encrypted")

	return models.EncryptedInput{
		Handle: handle,
		Proof:  inputProof(handle, contract, owner),
	}, nil
}

// PublicDecrypt implements [RelayerService]. Every handle must belong to the
// contract and be marked publicly decryptable.
func (r *relayer) PublicDecrypt(_ context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error) {
	if len(req.Handles) == 0 {
		return models.DecryptionResult{}, fmt.Errorf("%w: no handles", ErrInvalidData)
	}
	contract, err := utils.ChecksumAddress(req.ContractAddress)
	if err != nil {
		return models.DecryptionResult{}, fmt.Errorf("%w: contract address: %w", ErrInvalidData, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	clearValues := make(map[models.Handle]int64, len(req.Handles))
	values := make([]int64, 0, len(req.Handles))
	for _, h := range req.Handles {
		ct, ok := r.ciphertexts[h]
		if !ok || ct.contract != contract {
			return models.DecryptionResult{}, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
		}
		if !ct.public {
			return models.DecryptionResult{}, fmt.Errorf("%w: %s", ErrHandleNotDecryptable, h)
		}
		clearValues[h] = ct.value
		values = append(values, ct.value)
	}

	abi := EncodeInt256(values...)
	return models.DecryptionResult{
		ClearValues:           clearValues,
		AbiEncodedClearValues: abi,
		DecryptionProof:       decryptionProof(contract, req.Handles, abi),
	}, nil
}

// verifyInput checks that proof binds handle to contract and owner.
func (r *relayer) verifyInput(handle models.Handle, proof []byte, contract, owner string) error {
	r.mu.RLock()
	ct, ok := r.ciphertexts[handle]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, handle)
	}
	if ct.contract != contract || ct.owner != owner || !utils.VerifyHash(proof, inputProofParts(handle, contract, owner)...) {
		return ErrInvalidInputProof
	}

	return nil
}

// verifyDecryption checks that proof attests abi as the cleartexts of
// handles.
func (r *relayer) verifyDecryption(contract string, handles []models.Handle, abi, proof []byte) error {
	if !utils.VerifyHash(proof, decryptionProofParts(contract, handles, abi)...) {
		return ErrInvalidDecryptionProof
	}
	return nil
}

// allowPublicDecryption marks handle publicly decryptable.
func (r *relayer) allowPublicDecryption(handle models.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ct, ok := r.ciphertexts[handle]; ok {
		ct.public = true
	}
}

func inputProofParts(handle models.Handle, contract, owner string) [][]byte {
	return [][]byte{tagInputProof, []byte(handle), []byte(contract), []byte(owner)}
}

func inputProof(handle models.Handle, contract, owner string) models.HexBytes {
	return utils.Hash(inputProofParts(handle, contract, owner)...)
}

func decryptionProofParts(contract string, handles []models.Handle, abi []byte) [][]byte {
	parts := make([][]byte, 0, len(handles)+3)
	parts = append(parts, tagDecryption, []byte(contract))
	for _, h := range handles {
		parts = append(parts, []byte(h))
	}
	return append(parts, abi)
}

func decryptionProof(contract string, handles []models.Handle, abi []byte) models.HexBytes {
	return utils.Hash(decryptionProofParts(contract, handles, abi)...)
}
