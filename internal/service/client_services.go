package service

import (
	"github.com/MKhiriev/go-pet-locator/internal/adapter"
	"github.com/MKhiriev/go-pet-locator/internal/config"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/store"
)

type ClientServices struct {
	Session    ClientSession
	Status     StatusBoard
	Encryption ClientEncryptionService
	Decryption ClientDecryptionService
	Records    ClientRecordService
}

// NewClientServices wires the client services. The session token is handed
// to gateway for signer-bound calls.
func NewClientServices(
	gateway adapter.LedgerGateway,
	relayer adapter.Relayer,
	cache store.RecordCache,
	cfg config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	session := NewClientSession(cfg.App.SessionToken, logger)
	gateway.SetToken(session.Token())

	status := NewStatusBoard(cfg.Status.SuccessTTL, cfg.Status.ErrorTTL)
	encryption := NewClientEncryptionService(relayer, logger)
	decryption := NewClientDecryptionService(relayer, logger)

	return &ClientServices{
		Session:    session,
		Status:     status,
		Encryption: encryption,
		Decryption: decryption,
		Records:    NewClientRecordService(gateway, session, encryption, decryption, status, cache, logger),
	}
}
