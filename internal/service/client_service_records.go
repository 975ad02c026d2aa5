package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pet-locator/internal/adapter"
	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/codec"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/store"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

const (
	// RecordIDPrefix prefixes every record id generated by Create.
	RecordIDPrefix = "pet-"

	// RecordDescription is the static tag attached to created records.
	RecordDescription = "Pet location data"

	refreshKey         = "refresh"
	recordReadParallel = 8
)

type idGenerator interface {
	Generate() string
}

// revealTicket marks a reveal in flight. closed is set when the record view
// is closed before the reveal finishes.
type revealTicket struct {
	closed bool
}

type revealEntry struct {
	coords models.Coordinates
	state  models.RevealState
}

type clientRecordService struct {
	gateway    adapter.LedgerGateway
	session    ClientSession
	encryption ClientEncryptionService
	decryption ClientDecryptionService
	status     StatusBoard
	cache      store.RecordCache
	ids        idGenerator
	now        func() time.Time
	logger     *logger.Logger

	adding     atomic.Bool
	refreshing atomic.Int32
	startSeq   atomic.Uint64
	group      singleflight.Group

	mu           sync.RWMutex
	records      []models.Record
	committedSeq uint64
	inReveal     map[string]*revealTicket
	revealed     map[string]revealEntry

	// cacheMu serialises snapshot writes to the record cache.
	cacheMu sync.Mutex
}

// NewClientRecordService wires the record orchestrator. cache may be nil, in
// which case snapshots are kept in memory only.
func NewClientRecordService(
	gateway adapter.LedgerGateway,
	session ClientSession,
	encryption ClientEncryptionService,
	decryption ClientDecryptionService,
	status StatusBoard,
	cache store.RecordCache,
	logger *logger.Logger,
) ClientRecordService {
	return &clientRecordService{
		gateway:    gateway,
		session:    session,
		encryption: encryption,
		decryption: decryption,
		status:     status,
		cache:      cache,
		ids:        utils.NewUUIDGenerator(RecordIDPrefix),
		now:        time.Now,
		logger:     logger,
		inReveal:   make(map[string]*revealTicket),
		revealed:   make(map[string]revealEntry),
	}
}

func (s *clientRecordService) Create(ctx context.Context, in models.NewRecord) (models.Record, error) {
	// A rejected call must not touch the create status of the call in flight.
	if !s.adding.CompareAndSwap(false, true) {
		return models.Record{}, ErrOperationInFlight
	}
	defer s.adding.Store(false)

	identity, ok := s.session.CurrentIdentity()
	if !ok {
		s.status.Set(ScopeCreate, models.StatusError, app.StatusConnectWallet)
		return models.Record{}, ErrUnauthenticated
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Latitude) == "" || strings.TrimSpace(in.Longitude) == "" {
		s.status.Set(ScopeCreate, models.StatusError, app.StatusFillAllFields)
		return models.Record{}, fmt.Errorf("%w: name, latitude and longitude are required", ErrInvalidInput)
	}

	lat, err := codec.Parse(in.Latitude)
	if err != nil {
		s.status.Set(ScopeCreate, models.StatusError, app.StatusInvalidCoordinates)
		return models.Record{}, fmt.Errorf("%w: latitude: %w", ErrInvalidInput, err)
	}
	lon, err := codec.Parse(in.Longitude)
	if err != nil {
		s.status.Set(ScopeCreate, models.StatusError, app.StatusInvalidCoordinates)
		return models.Record{}, fmt.Errorf("%w: longitude: %w", ErrInvalidInput, err)
	}

	s.status.Set(ScopeCreate, models.StatusPending, app.StatusAdding)

	req, err := s.prepareCreate(ctx, identity, name, lat, lon)
	if err != nil {
		return models.Record{}, s.createFailed(err)
	}

	tx, err := s.gateway.CreateRecord(ctx, req)
	if err != nil {
		return models.Record{}, s.createFailed(err)
	}

	s.status.Set(ScopeCreate, models.StatusPending, app.StatusWaitingConfirm)
	if err = tx.Wait(ctx); err != nil {
		return models.Record{}, s.createFailed(err)
	}

	s.logger.Info().Str("func", "clientRecordService.Create").
		Str("record_id", req.ID).Str("tx_hash", tx.Hash()).Msg("record created")
	s.status.Set(ScopeCreate, models.StatusSuccess, app.StatusAdded)

	records, _ := s.forceRefresh(ctx)
	for _, record := range records {
		if record.ID == req.ID {
			return record, nil
		}
	}

	return models.Record{
		ID:           req.ID,
		Name:         req.Name,
		Creator:      identity,
		Timestamp:    s.now().Unix(),
		PublicValue1: req.PublicValue1,
		PublicValue2: req.PublicValue2,
		Description:  req.Description,
	}, nil
}

// prepareCreate encrypts the latitude for the ledger contract and builds the
// create request. The longitude stays public.
func (s *clientRecordService) prepareCreate(ctx context.Context, identity, name string, lat, lon int64) (models.CreateRecordRequest, error) {
	contract, err := s.gateway.Address(ctx)
	if err != nil {
		return models.CreateRecordRequest{}, fmt.Errorf("resolve contract address: %w", err)
	}

	input, err := s.encryption.Encrypt(ctx, contract, identity, lat)
	if err != nil {
		return models.CreateRecordRequest{}, err
	}

	return models.CreateRecordRequest{
		ID:             s.ids.Generate(),
		Name:           name,
		EncryptedValue: input.Handle,
		InputProof:     input.Proof,
		PublicValue1:   lon,
		PublicValue2:   0,
		Description:    RecordDescription,
	}, nil
}

func (s *clientRecordService) createFailed(err error) error {
	mapped := mapCreateError(err)

	switch {
	case errors.Is(mapped, ErrUserCancelled):
		s.logger.Info().Str("func", "clientRecordService.Create").Msg("signer declined create transaction")
		s.status.Set(ScopeCreate, models.StatusError, app.StatusUserCancelled)
	case errors.Is(mapped, ErrUnauthenticated):
		s.logger.Warn().Err(err).Str("func", "clientRecordService.Create").Msg("signer session rejected")
		s.status.Set(ScopeCreate, models.StatusError, app.StatusConnectWallet)
	default:
		s.logger.Err(err).Str("func", "clientRecordService.Create").Msg("record submission failed")
		s.status.Set(ScopeCreate, models.StatusError, fmt.Sprintf(app.StatusSubmissionFailed, err.Error()))
	}

	return mapped
}

func (s *clientRecordService) Refresh(ctx context.Context) ([]models.Record, error) {
	return s.refresh(ctx)
}

// refresh joins the in-flight load or starts one.
func (s *clientRecordService) refresh(ctx context.Context) ([]models.Record, error) {
	v, err, _ := s.group.Do(refreshKey, func() (any, error) {
		return s.load(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}

	return cloneRecords(v.([]models.Record)), nil
}

// forceRefresh detaches the in-flight load, if any, so the caller observes
// ledger state written after it started. Failures are logged only.
func (s *clientRecordService) forceRefresh(ctx context.Context) ([]models.Record, error) {
	s.group.Forget(refreshKey)

	records, err := s.refresh(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.forceRefresh").Msg("refresh after mutation failed")
	}

	return records, err
}

func (s *clientRecordService) load(ctx context.Context) ([]models.Record, error) {
	seq := s.startSeq.Add(1)

	s.refreshing.Add(1)
	defer s.refreshing.Add(-1)

	ids, err := s.gateway.ListRecordIDs(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.load").Msg("failed to list record ids")
		s.status.Set(ScopeRefresh, models.StatusError, app.StatusLoadFailed)
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	slots := make([]*models.Record, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(recordReadParallel)
	for i, id := range ids {
		g.Go(func() error {
			record, readErr := s.gateway.GetRecord(gctx, id)
			if readErr != nil {
				s.logger.Err(fmt.Errorf("%w: %w", ErrPartialReadFailure, readErr)).
					Str("func", "clientRecordService.load").Str("record_id", id).Msg("skipping record")
				return nil
			}
			slots[i] = &record
			return nil
		})
	}
	_ = g.Wait()

	records := make([]models.Record, 0, len(ids))
	for _, slot := range slots {
		if slot != nil {
			records = append(records, *slot)
		}
	}

	if !s.commit(seq, records) {
		s.logger.Debug().Str("func", "clientRecordService.load").Uint64("seq", seq).
			Msg("discarding snapshot superseded by a later refresh")
		return s.Records(), nil
	}

	s.persist(ctx, seq, records)
	return records, nil
}

// commit installs records unless a load started after seq already did: the
// most recently started load wins, and a load finishing after a newer one has
// committed is discarded.
func (s *clientRecordService) commit(seq uint64, records []models.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.committedSeq {
		return false
	}

	s.records = cloneRecords(records)
	s.committedSeq = seq
	return true
}

func (s *clientRecordService) persist(ctx context.Context, seq uint64, records []models.Record) {
	if s.cache == nil {
		return
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.mu.RLock()
	latest := s.committedSeq == seq
	s.mu.RUnlock()
	if !latest {
		return
	}

	if err := s.cache.ReplaceRecords(ctx, records); err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.persist").Msg("failed to cache record snapshot")
	}
}

func (s *clientRecordService) LoadCached(ctx context.Context) ([]models.Record, error) {
	if s.cache == nil {
		return s.Records(), nil
	}

	cached, err := s.cache.GetAllRecords(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.LoadCached").Msg("failed to read cached records")
		return nil, fmt.Errorf("load cached records: %w", err)
	}

	s.mu.Lock()
	if s.committedSeq == 0 && s.records == nil {
		s.records = cloneRecords(cached)
	}
	s.mu.Unlock()

	return s.Records(), nil
}

func (s *clientRecordService) Reveal(ctx context.Context, id string) (*models.Coordinates, error) {
	s.mu.Lock()
	if _, ok := s.revealed[id]; ok {
		delete(s.revealed, id)
		s.mu.Unlock()
		return nil, nil
	}
	s.mu.Unlock()

	if _, ok := s.session.CurrentIdentity(); !ok {
		s.status.Set(RevealScope(id), models.StatusError, app.StatusConnectWallet)
		return nil, ErrUnauthenticated
	}

	s.mu.Lock()
	if _, busy := s.inReveal[id]; busy {
		s.mu.Unlock()
		return nil, ErrOperationInFlight
	}
	ticket := &revealTicket{}
	s.inReveal[id] = ticket
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inReveal, id)
		s.mu.Unlock()
	}()

	scope := RevealScope(id)

	record, err := s.gateway.GetRecord(ctx, id)
	if err != nil {
		return nil, s.revealFailed(id, err)
	}

	if record.IsVerified {
		coords := codec.DecodeCoordinates(record.DecryptedValue, record.PublicValue1)
		s.storeRevealed(id, ticket, coords, models.RevealVerified)
		s.status.Set(scope, models.StatusSuccess, app.StatusAlreadyVerified)
		return &coords, nil
	}

	s.status.Set(scope, models.StatusPending, app.StatusDecrypting)

	latitude, err := s.verifyLatitude(ctx, id)
	if err != nil {
		if errors.Is(err, adapter.ErrAlreadyVerified) {
			s.logger.Info().Str("func", "clientRecordService.Reveal").Str("record_id", id).
				Msg("record verified concurrently")
			s.status.Set(scope, models.StatusSuccess, app.StatusAlreadyVerified)
			_, _ = s.forceRefresh(ctx)
			return nil, nil
		}
		return nil, s.revealFailed(id, err)
	}

	_, _ = s.forceRefresh(ctx)

	coords := codec.DecodeCoordinates(latitude, record.PublicValue1)
	s.storeRevealed(id, ticket, coords, models.RevealRevealed)
	s.status.Set(scope, models.StatusSuccess, app.StatusDecrypted)

	s.logger.Info().Str("func", "clientRecordService.Reveal").Str("record_id", id).Msg("record decrypted and verified")
	return &coords, nil
}

// verifyLatitude obtains the encoded latitude of record id through a
// decryption proof accepted by the ledger.
func (s *clientRecordService) verifyLatitude(ctx context.Context, id string) (int64, error) {
	contract, err := s.gateway.Address(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve contract address: %w", err)
	}

	handle, err := s.gateway.GetCiphertextHandle(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("read ciphertext handle: %w", err)
	}

	submit := func(ctx context.Context, clearValues, proof models.HexBytes) (adapter.Transaction, error) {
		return s.gateway.SubmitVerification(ctx, id, clearValues, proof)
	}

	result, err := s.decryption.VerifyDecryption(ctx, []models.Handle{handle}, contract, submit)
	if err != nil {
		return 0, err
	}

	latitude, ok := result.ClearValues[handle]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrHandleNotInResult, handle)
	}

	return latitude, nil
}

func (s *clientRecordService) revealFailed(id string, err error) error {
	mapped := mapRevealError(err)
	scope := RevealScope(id)

	switch {
	case errors.Is(mapped, ErrUserCancelled):
		s.logger.Info().Str("func", "clientRecordService.Reveal").Str("record_id", id).
			Msg("signer declined verification transaction")
		s.status.Set(scope, models.StatusError, app.StatusUserCancelled)
	case errors.Is(mapped, ErrUnauthenticated):
		s.logger.Warn().Err(err).Str("func", "clientRecordService.Reveal").Msg("signer session rejected")
		s.status.Set(scope, models.StatusError, app.StatusConnectWallet)
	default:
		s.logger.Err(err).Str("func", "clientRecordService.Reveal").Str("record_id", id).Msg("reveal failed")
		s.status.Set(scope, models.StatusError, fmt.Sprintf(app.StatusDecryptionFailed, err.Error()))
	}

	return mapped
}

// storeRevealed holds the plaintext for id unless the view was closed while
// the reveal behind ticket was running.
func (s *clientRecordService) storeRevealed(id string, ticket *revealTicket, coords models.Coordinates, state models.RevealState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.closed {
		return
	}
	s.revealed[id] = revealEntry{coords: coords, state: state}
}

func (s *clientRecordService) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.revealed, id)
	if ticket, busy := s.inReveal[id]; busy {
		ticket.closed = true
	}
}

func (s *clientRecordService) RevealState(id string) models.RevealState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, busy := s.inReveal[id]; busy {
		return models.RevealRevealing
	}
	if entry, ok := s.revealed[id]; ok {
		return entry.state
	}

	return models.RevealLocked
}

func (s *clientRecordService) Revealed(id string) (models.Coordinates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.revealed[id]
	return entry.coords, ok
}

func (s *clientRecordService) Records() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneRecords(s.records)
}

func (s *clientRecordService) Stats(now time.Time) models.Stats {
	records := s.Records()

	stats := models.Stats{Total: len(records)}
	if len(records) == 0 {
		return stats
	}

	since := now.Add(-24 * time.Hour).Unix()
	var lonSum float64
	for _, record := range records {
		if record.IsVerified {
			stats.Verified++
		}
		if record.Timestamp >= since {
			stats.AddedLastDay++
		}
		lonSum += codec.Decode(record.PublicValue1)
	}
	stats.AvgLongitude = lonSum / float64(len(records))

	return stats
}

func (s *clientRecordService) Adding() bool {
	return s.adding.Load()
}

func (s *clientRecordService) Refreshing() bool {
	return s.refreshing.Load() > 0
}

func (s *clientRecordService) Revealing(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, busy := s.inReveal[id]
	return busy
}

func cloneRecords(records []models.Record) []models.Record {
	if records == nil {
		return nil
	}

	out := make([]models.Record, len(records))
	copy(out, records)
	return out
}
