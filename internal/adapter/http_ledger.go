package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/config"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
	"github.com/go-resty/resty/v2"
)

type httpLedgerGateway struct {
	client       *utils.HTTPClient
	pollInterval time.Duration

	mu      sync.RWMutex
	token   string
	address string

	logger *logger.Logger
}

// NewHTTPLedgerGateway constructs the JSON/HTTP implementation of
// [LedgerGateway]. It normalises and validates adapterCfg.LedgerAddress and
// configures the request timeout and the confirmation poll interval.
//
// Returns an error if the ledger address is empty or cannot be parsed as a
// valid URL.
func NewHTTPLedgerGateway(adapterCfg config.ClientAdapter, log *logger.Logger) (LedgerGateway, error) {
	client, err := newHTTPClient(adapterCfg.LedgerAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger address: %w", err)
	}

	return &httpLedgerGateway{
		client:       client,
		pollInterval: adapterCfg.ConfirmationPollInterval,
		logger:       log,
	}, nil
}

// SetToken implements [LedgerSigner]. It stores token (whitespace-trimmed) for
// the Authorization header of every signer-bound request.
func (g *httpLedgerGateway) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

func (g *httpLedgerGateway) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// Address implements [LedgerReader]. GET /api/contract is called until the
// first success; later calls return the cached address.
func (g *httpLedgerGateway) Address(ctx context.Context) (string, error) {
	g.mu.RLock()
	cached := g.address
	g.mu.RUnlock()
	if cached != "" {
		return cached, nil
	}

	var contract models.ContractResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&contract).
		Get("/api/contract")
	if err != nil {
		return "", fmt.Errorf("contract address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if contract.Address == "" {
		return "", fmt.Errorf("contract address: %w", ErrEmptyResponse)
	}

	g.mu.Lock()
	g.address = contract.Address
	g.mu.Unlock()

	return contract.Address, nil
}

// ListRecordIDs implements [LedgerReader] via GET /api/records.
func (g *httpLedgerGateway) ListRecordIDs(ctx context.Context) ([]string, error) {
	var ids models.RecordIDsResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&ids).
		Get("/api/records")
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return ids.IDs, nil
}

// GetRecord implements [LedgerReader] via GET /api/records/{id}.
func (g *httpLedgerGateway) GetRecord(ctx context.Context, id string) (models.Record, error) {
	var record models.Record
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&record).
		Get("/api/records/" + url.PathEscape(id))
	if err != nil {
		return models.Record{}, fmt.Errorf("get record %s request: %w", id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return record, nil
}

// GetCiphertextHandle implements [LedgerReader] via
// GET /api/records/{id}/handle.
func (g *httpLedgerGateway) GetCiphertextHandle(ctx context.Context, id string) (models.Handle, error) {
	var handle models.HandleResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&handle).
		Get("/api/records/" + url.PathEscape(id) + "/handle")
	if err != nil {
		return "", fmt.Errorf("get handle %s request: %w", id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if handle.Handle == "" {
		return "", fmt.Errorf("handle of %s: %w", id, ErrEmptyResponse)
	}

	return handle.Handle, nil
}

// CreateRecord implements [LedgerSigner] via POST /api/records.
func (g *httpLedgerGateway) CreateRecord(ctx context.Context, req models.CreateRecordRequest) (Transaction, error) {
	return g.submit(ctx, "/api/records", req)
}

// SubmitVerification implements [LedgerSigner] via
// POST /api/records/{id}/verify.
func (g *httpLedgerGateway) SubmitVerification(ctx context.Context, id string, clearValues, proof models.HexBytes) (Transaction, error) {
	return g.submit(ctx, "/api/records/"+url.PathEscape(id)+"/verify", models.VerifyRequest{
		AbiEncodedClearValues: clearValues,
		DecryptionProof:       proof,
	})
}

func (g *httpLedgerGateway) submit(ctx context.Context, path string, body any) (Transaction, error) {
	var tx models.TxResponse
	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&tx).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("submit %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if tx.TxHash == "" {
		return nil, fmt.Errorf("submit %s: %w", path, ErrEmptyResponse)
	}

	g.logger.Debug().Str("func", "httpLedgerGateway.submit").
		Str("path", path).Str("tx_hash", tx.TxHash).Msg("transaction submitted")

	return &httpTransaction{
		hash:         tx.TxHash,
		client:       g.client,
		pollInterval: g.pollInterval,
		logger:       g.logger,
	}, nil
}

func (g *httpLedgerGateway) authedRequest(ctx context.Context) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if token := g.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
