package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pet-locator/internal/config"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

type httpRelayer struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRelayer constructs the JSON/HTTP implementation of [Relayer] bound
// to adapterCfg.RelayerAddress.
func NewHTTPRelayer(adapterCfg config.ClientAdapter, log *logger.Logger) (Relayer, error) {
	client, err := newHTTPClient(adapterCfg.RelayerAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid relayer address: %w", err)
	}

	return &httpRelayer{client: client, logger: log}, nil
}

// Encrypt implements [Relayer] via POST /api/encrypt.
func (r *httpRelayer) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error) {
	var input models.EncryptedInput
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&input).
		Post("/api/encrypt")
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("encrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedInput{}, err
	}
	if input.Handle == "" || len(input.Proof) == 0 {
		return models.EncryptedInput{}, fmt.Errorf("encrypt: %w", ErrEmptyResponse)
	}

	return input, nil
}

// PublicDecrypt implements [Relayer] via POST /api/public-decrypt.
func (r *httpRelayer) PublicDecrypt(ctx context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error) {
	var result models.DecryptionResult
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/public-decrypt")
	if err != nil {
		return models.DecryptionResult{}, fmt.Errorf("public decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DecryptionResult{}, err
	}

	r.logger.Debug().Str("func", "httpRelayer.PublicDecrypt").
		Int("handles", len(req.Handles)).Int("clear_values", len(result.ClearValues)).
		Msg("public decryption received")

	return result, nil
}

// Version implements [Relayer] via GET /api/version.
func (r *httpRelayer) Version(ctx context.Context) (string, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
