package devnet

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/config"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

type Devnet struct {
	Ledger   LedgerService
	Relayer  RelayerService
	Sessions SessionService
}

// New builds a fresh devnet. It installs cfg.ProofKey as the process-wide
// proof key of [utils.Hash].
func New(cfg config.DevnetConfig, logger *logger.Logger) *Devnet {
	utils.InitHasherPool(cfg.ProofKey)

	r := newRelayer(logger)
	l := newLedger(r, cfg.ConfirmationDelay, logger)

	logger.Info().Str("contract", l.Address()).Dur("confirmation_delay", cfg.ConfirmationDelay).
		Msg("devnet created")

	return &Devnet{
		Ledger:   l,
		Relayer:  r,
		Sessions: &sessions{key: cfg.ProofKey},
	}
}

type sessions struct {
	key string
}

func (s *sessions) IssueSession(address string, ttl time.Duration) (models.SessionToken, error) {
	return utils.GenerateSessionToken(utils.SessionIssuer, address, ttl, s.key)
}

func (s *sessions) ParseSession(token string) (models.SessionToken, error) {
	session, err := utils.ValidateSessionToken(token, s.key, utils.SessionIssuer)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	return session, nil
}
