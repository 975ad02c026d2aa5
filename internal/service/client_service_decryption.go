package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-pet-locator/internal/adapter"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/models"
)

type clientDecryptionService struct {
	relayer  adapter.Relayer
	inFlight atomic.Int32
	logger   *logger.Logger
}

// NewClientDecryptionService returns a [ClientDecryptionService] over relayer.
func NewClientDecryptionService(relayer adapter.Relayer, logger *logger.Logger) ClientDecryptionService {
	return &clientDecryptionService{relayer: relayer, logger: logger}
}

// VerifyDecryption implements [ClientDecryptionService]. The steps are:
//  1. public decryption of handles by the relayer,
//  2. submit of the ABI-encoded cleartexts and the proof,
//  3. wait for the submitted transaction to be confirmed.
func (s *clientDecryptionService) VerifyDecryption(ctx context.Context, handles []models.Handle, contract string, submit SubmitFunc) (models.DecryptionResult, error) {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	if len(handles) == 0 {
		return models.DecryptionResult{}, fmt.Errorf("%w: no handles to decrypt", ErrInvalidInput)
	}

	log := s.logger

	result, err := s.relayer.PublicDecrypt(ctx, models.PublicDecryptRequest{
		Handles:         handles,
		ContractAddress: contract,
	})
	if err != nil {
		log.Err(err).Str("func", "clientDecryptionService.VerifyDecryption").Msg("public decryption failed")
		return models.DecryptionResult{}, fmt.Errorf("public decrypt: %w", err)
	}

	tx, err := submit(ctx, result.AbiEncodedClearValues, result.DecryptionProof)
	if err != nil {
		log.Err(err).Str("func", "clientDecryptionService.VerifyDecryption").Msg("decryption proof submission failed")
		return models.DecryptionResult{}, fmt.Errorf("submit decryption proof: %w", err)
	}

	if err = tx.Wait(ctx); err != nil {
		log.Err(err).Str("func", "clientDecryptionService.VerifyDecryption").
			Str("tx_hash", tx.Hash()).Msg("decryption proof not confirmed")
		return models.DecryptionResult{}, fmt.Errorf("confirm decryption proof %s: %w", tx.Hash(), err)
	}

	return result, nil
}

func (s *clientDecryptionService) Decrypting() bool {
	return s.inFlight.Load() > 0
}
