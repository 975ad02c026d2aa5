package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-pet-locator/internal/adapter"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/models"
)

type clientEncryptionService struct {
	relayer  adapter.Relayer
	inFlight atomic.Int32
	logger   *logger.Logger
}

// NewClientEncryptionService returns a [ClientEncryptionService] over relayer.
func NewClientEncryptionService(relayer adapter.Relayer, logger *logger.Logger) ClientEncryptionService {
	return &clientEncryptionService{relayer: relayer, logger: logger}
}

func (s *clientEncryptionService) Encrypt(ctx context.Context, contract, recipient string, value int64) (models.EncryptedInput, error) {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	input, err := s.relayer.Encrypt(ctx, models.EncryptRequest{
		ContractAddress: contract,
		UserAddress:     recipient,
		Value:           value,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientEncryptionService.Encrypt").
			Str("contract", contract).Msg("relayer failed to encrypt value")
		return models.EncryptedInput{}, fmt.Errorf("encrypt value: %w", err)
	}

	return input, nil
}

func (s *clientEncryptionService) Encrypting() bool {
	return s.inFlight.Load() > 0
}

func (s *clientEncryptionService) Ready(ctx context.Context) error {
	version, err := s.relayer.Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRelayerUnavailable, err)
	}

	s.logger.Debug().Str("func", "clientEncryptionService.Ready").Str("version", version).Msg("relayer reachable")
	return nil
}
