package adapter

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

const defaultPollInterval = time.Second

type httpTransaction struct {
	hash         string
	client       *utils.HTTPClient
	pollInterval time.Duration
	logger       *logger.Logger
}

// Hash implements [Transaction].
func (t *httpTransaction) Hash() string {
	return t.hash
}

// Wait implements [Transaction]. It polls GET /api/tx/{hash} every poll
// interval until the receipt leaves the pending state.
func (t *httpTransaction) Wait(ctx context.Context) error {
	interval := t.pollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		receipt, err := t.receipt(ctx)
		if err != nil {
			return err
		}

		switch receipt.Status {
		case models.TxConfirmed:
			t.logger.Debug().Str("func", "httpTransaction.Wait").
				Str("tx_hash", t.hash).Msg("transaction confirmed")
			return nil
		case models.TxFailed:
			if mapped := mapLedgerError(receipt.Error); mapped != nil {
				return mapped
			}
			return fmt.Errorf("%w: %s", ErrTransactionFailed, receipt.Error)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for %s: %w", t.hash, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (t *httpTransaction) receipt(ctx context.Context) (models.TxReceipt, error) {
	var receipt models.TxReceipt
	resp, err := t.client.R().
		SetContext(ctx).
		SetResult(&receipt).
		Get("/api/tx/" + url.PathEscape(t.hash))
	if err != nil {
		return models.TxReceipt{}, fmt.Errorf("tx receipt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TxReceipt{}, err
	}

	return receipt, nil
}
