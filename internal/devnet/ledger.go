package devnet

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

type ledgerRecord struct {
	record models.Record
	handle models.Handle
}

type transaction struct {
	receipt models.TxReceipt
	readyAt time.Time
	apply   func(now time.Time) error
}

type ledger struct {
	address string
	relayer *relayer
	delay   time.Duration
	now     func() time.Time

	mu       sync.Mutex
	records  map[string]*ledgerRecord
	order    []string
	reserved map[string]struct{}
	txs      map[string]*transaction
	queue    []*transaction

	logger *logger.Logger
}

func newLedger(relayer *relayer, delay time.Duration, logger *logger.Logger) *ledger {
	address, _ := utils.ChecksumAddress("0x" + hex.EncodeToString(utils.Hash(tagContract)[:20]))

	return &ledger{
		address:  address,
		relayer:  relayer,
		delay:    delay,
		now:      time.Now,
		records:  make(map[string]*ledgerRecord),
		reserved: make(map[string]struct{}),
		txs:      make(map[string]*transaction),
		logger:   logger,
	}
}

func (l *ledger) Address() string {
	return l.address
}

func (l *ledger) ListRecordIDs(_ context.Context) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked()

	ids := make([]string, len(l.order))
	copy(ids, l.order)
	return ids
}

func (l *ledger) GetRecord(_ context.Context, id string) (models.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked()

	rec, ok := l.records[id]
	if !ok {
		return models.Record{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return rec.record, nil
}

func (l *ledger) GetCiphertextHandle(_ context.Context, id string) (models.Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked()

	rec, ok := l.records[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return rec.handle, nil
}

// CreateRecord implements [LedgerService]. The checks run at submission and
// the id is reserved until the transaction settles.
func (l *ledger) CreateRecord(_ context.Context, signer string, req models.CreateRecordRequest) (string, error) {
	if strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Name) == "" || req.EncryptedValue == "" {
		return "", fmt.Errorf("%w: id, name and encrypted value are required", ErrInvalidData)
	}
	if err := l.relayer.verifyInput(req.EncryptedValue, req.InputProof, l.address, signer); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked()

	if _, exists := l.records[req.ID]; exists {
		return "", fmt.Errorf("%w: %s", ErrRecordAlreadyExists, req.ID)
	}
	if _, pending := l.reserved[req.ID]; pending {
		return "", fmt.Errorf("%w: %s", ErrRecordAlreadyExists, req.ID)
	}
	l.reserved[req.ID] = struct{}{}

	hash := l.enqueueLocked(func(now time.Time) error {
		delete(l.reserved, req.ID)
		if _, exists := l.records[req.ID]; exists {
			return ErrRecordAlreadyExists
		}

		l.records[req.ID] = &ledgerRecord{
			record: models.Record{
				ID:           req.ID,
				Name:         req.Name,
				Creator:      signer,
				Timestamp:    now.Unix(),
				PublicValue1: req.PublicValue1,
				PublicValue2: req.PublicValue2,
				Description:  req.Description,
			},
			handle: req.EncryptedValue,
		}
		l.order = append(l.order, req.ID)
		l.relayer.allowPublicDecryption(req.EncryptedValue)
		return nil
	})

	l.logger.Info().Str("func", "ledger.CreateRecord").Str("record_id", req.ID).
		Str("signer", utils.ShortAddress(signer)).Str("tx_hash", hash).Msg("create queued")
	return hash, nil
}

// SubmitVerification implements [LedgerService]. A record that is verified by
// the time the transaction settles makes it revert.
func (l *ledger) SubmitVerification(_ context.Context, signer, id string, req models.VerifyRequest) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked()

	rec, ok := l.records[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	if rec.record.IsVerified {
		return "", ErrAlreadyVerified
	}
	if err := l.relayer.verifyDecryption(l.address, []models.Handle{rec.handle}, req.AbiEncodedClearValues, req.DecryptionProof); err != nil {
		return "", err
	}

	values, err := DecodeInt256(req.AbiEncodedClearValues)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if len(values) != 1 {
		return "", fmt.Errorf("%w: expected one cleartext, got %d", ErrInvalidData, len(values))
	}

	hash := l.enqueueLocked(func(time.Time) error {
		if rec.record.IsVerified {
			return ErrAlreadyVerified
		}
		rec.record.IsVerified = true
		rec.record.DecryptedValue = values[0]
		return nil
	})

	l.logger.Info().Str("func", "ledger.SubmitVerification").Str("record_id", id).
		Str("signer", utils.ShortAddress(signer)).Str("tx_hash", hash).Msg("verification queued")
	return hash, nil
}

func (l *ledger) Receipt(_ context.Context, hash string) (models.TxReceipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked()

	tx, ok := l.txs[hash]
	if !ok {
		return models.TxReceipt{}, fmt.Errorf("%w: %s", ErrUnknownTransaction, hash)
	}
	return tx.receipt, nil
}

func (l *ledger) enqueueLocked(apply func(now time.Time) error) string {
	nonce := uuid.New()
	hash := models.HexBytes(utils.Hash(tagTx, nonce[:])).String()

	tx := &transaction{
		receipt: models.TxReceipt{TxHash: hash, Status: models.TxPending},
		readyAt: l.now().Add(l.delay),
		apply:   apply,
	}
	l.txs[hash] = tx
	l.queue = append(l.queue, tx)

	l.settleLocked()
	return hash
}

// settleLocked applies due transactions in submission order.
func (l *ledger) settleLocked() {
	now := l.now()
	for len(l.queue) > 0 && !l.queue[0].readyAt.After(now) {
		tx := l.queue[0]
		l.queue = l.queue[1:]

		if err := tx.apply(now); err != nil {
			tx.receipt.Status = models.TxFailed
			tx.receipt.Error = "execution reverted: " + err.Error()
			l.logger.Warn().Str("func", "ledger.settleLocked").Str("tx_hash", tx.receipt.TxHash).
				Str("reason", err.Error()).Msg("transaction reverted")
			continue
		}
		tx.receipt.Status = models.TxConfirmed
	}
}
