package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

type clientSession struct {
	token *models.SessionToken
	now   func() time.Time
}

// NewClientSession builds a [ClientSession] from the session JWT handed over
// by the wallet bridge. The signature is not checked here: the client holds
// no key and the ledger verifies the token on every signer-bound call. An
// empty or malformed token yields a disconnected session.
func NewClientSession(rawToken string, log *logger.Logger) ClientSession {
	s := &clientSession{now: time.Now}

	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return s
	}

	token, err := utils.ParseSessionToken(rawToken)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewClientSession").Msg("ignoring malformed session token")
		return s
	}

	s.token = &token
	log.Info().Str("func", "NewClientSession").
		Str("address", utils.ShortAddress(token.Address)).Msg("signer session loaded")
	return s
}

func (s *clientSession) CurrentIdentity() (string, bool) {
	if !s.Connected() {
		return "", false
	}

	return s.token.Address, true
}

func (s *clientSession) Connected() bool {
	return s.token != nil && !s.token.Expired(s.now())
}

func (s *clientSession) Token() string {
	if !s.Connected() {
		return ""
	}

	return s.token.SignedString
}
