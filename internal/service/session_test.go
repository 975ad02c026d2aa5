package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
)

const (
	testWallet        = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	testWalletChecked = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
)

func TestNewClientSession_Empty(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		s := NewClientSession(raw, logger.Nop())

		assert.False(t, s.Connected())
		assert.Empty(t, s.Token())

		id, ok := s.CurrentIdentity()
		assert.False(t, ok)
		assert.Empty(t, id)
	}
}

func TestNewClientSession_Malformed(t *testing.T) {
	s := NewClientSession("not-a-jwt", logger.Nop())

	assert.False(t, s.Connected())
	_, ok := s.CurrentIdentity()
	assert.False(t, ok)
}

func TestNewClientSession_Valid(t *testing.T) {
	token, err := utils.GenerateSessionToken(utils.SessionIssuer, testWallet, time.Hour, "bridge-key")
	require.NoError(t, err)

	s := NewClientSession(" "+token.SignedString+"\n", logger.Nop())

	require.True(t, s.Connected())
	assert.Equal(t, token.SignedString, s.Token())

	id, ok := s.CurrentIdentity()
	require.True(t, ok)
	assert.Equal(t, testWalletChecked, id)
}

func TestClientSession_Expired(t *testing.T) {
	token, err := utils.GenerateSessionToken(utils.SessionIssuer, testWallet, time.Hour, "bridge-key")
	require.NoError(t, err)

	s := NewClientSession(token.SignedString, logger.Nop()).(*clientSession)
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	assert.False(t, s.Connected())
	assert.Empty(t, s.Token())
	_, ok := s.CurrentIdentity()
	assert.False(t, ok)
}
