// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pet-locator/internal/adapter"
	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/mock"
	"github.com/MKhiriev/go-pet-locator/internal/service"
	"github.com/MKhiriev/go-pet-locator/internal/store"
	"github.com/MKhiriev/go-pet-locator/models"
)

const (
	testWallet   = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	testContract = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

type recordFixture struct {
	gateway *mock.MockLedgerGateway
	relayer *mock.MockRelayer
	session *mock.MockClientSession
	cache   *mock.MockRecordCache
	status  service.StatusBoard
	svc     service.ClientRecordService
}

func newRecordFixture(t *testing.T, withCache bool) *recordFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &recordFixture{
		gateway: mock.NewMockLedgerGateway(ctrl),
		relayer: mock.NewMockRelayer(ctrl),
		session: mock.NewMockClientSession(ctrl),
		status:  service.NewStatusBoard(time.Hour, time.Hour),
	}

	var cache store.RecordCache
	if withCache {
		f.cache = mock.NewMockRecordCache(ctrl)
		cache = f.cache
	}

	log := logger.Nop()
	f.svc = service.NewClientRecordService(
		f.gateway,
		f.session,
		service.NewClientEncryptionService(f.relayer, log),
		service.NewClientDecryptionService(f.relayer, log),
		f.status,
		cache,
		log,
	)
	service.SetRecordIDs(f.svc, func() string { return "pet-1" })

	return f
}

func (f *recordFixture) connected() {
	f.session.EXPECT().CurrentIdentity().Return(testWallet, true).AnyTimes()
}

func (f *recordFixture) disconnected() {
	f.session.EXPECT().CurrentIdentity().Return("", false).AnyTimes()
}

func (f *recordFixture) expectListing(records ...models.Record) {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	f.gateway.EXPECT().ListRecordIDs(gomock.Any()).Return(ids, nil)
	for _, r := range records {
		f.gateway.EXPECT().GetRecord(gomock.Any(), r.ID).Return(r, nil)
	}
}

func confirmedTx(ctrl *gomock.Controller, hash string, waitErr error) *mock.MockTransaction {
	tx := mock.NewMockTransaction(ctrl)
	tx.EXPECT().Hash().Return(hash).AnyTimes()
	tx.EXPECT().Wait(gomock.Any()).Return(waitErr)
	return tx
}

func rexRecord() models.Record {
	return models.Record{
		ID:           "pet-1",
		Name:         "Rex",
		Creator:      testWallet,
		Timestamp:    1_700_000_000,
		PublicValue1: -122419400,
		Description:  service.RecordDescription,
	}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreate_EncryptsLatitudeAndSubmitsLongitudeInClear(t *testing.T) {
	f := newRecordFixture(t, true)
	f.connected()
	ctrl := gomock.NewController(t)

	input := models.EncryptedInput{Handle: "0xa1", Proof: models.HexBytes{0x01, 0x02}}
	created := rexRecord()

	gomock.InOrder(
		f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil),
		f.relayer.EXPECT().Encrypt(gomock.Any(), models.EncryptRequest{
			ContractAddress: testContract,
			UserAddress:     testWallet,
			Value:           37774900,
		}).Return(input, nil),
		f.gateway.EXPECT().CreateRecord(gomock.Any(), models.CreateRecordRequest{
			ID:             "pet-1",
			Name:           "Rex",
			EncryptedValue: "0xa1",
			InputProof:     models.HexBytes{0x01, 0x02},
			PublicValue1:   -122419400,
			PublicValue2:   0,
			Description:    "Pet location data",
		}).Return(confirmedTx(ctrl, "0xtx1", nil), nil),
	)
	f.expectListing(created)
	f.cache.EXPECT().ReplaceRecords(gomock.Any(), []models.Record{created}).Return(nil)

	got, err := f.svc.Create(context.Background(), models.NewRecord{
		Name:      " Rex ",
		Latitude:  "37.774900",
		Longitude: "-122.419400",
	})
	require.NoError(t, err)

	assert.Equal(t, created, got)
	assert.Equal(t, []models.Record{created}, f.svc.Records())
	assert.False(t, f.svc.Adding())

	status := f.status.Get(service.ScopeCreate)
	assert.Equal(t, models.StatusSuccess, status.Kind)
	assert.Equal(t, app.StatusAdded, status.Message)
}

func TestCreate_AssemblesRecordWhenMissingFromRefresh(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()
	ctrl := gomock.NewController(t)
	now := time.Unix(1_700_000_500, 0)
	service.SetRecordClock(f.svc, func() time.Time { return now })

	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.relayer.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedInput{Handle: "0xa1", Proof: models.HexBytes{1}}, nil)
	f.gateway.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(confirmedTx(ctrl, "0xtx1", nil), nil)
	f.expectListing()

	got, err := f.svc.Create(context.Background(), models.NewRecord{Name: "Rex", Latitude: "1.5", Longitude: "2.5"})
	require.NoError(t, err)

	assert.Equal(t, models.Record{
		ID:           "pet-1",
		Name:         "Rex",
		Creator:      testWallet,
		Timestamp:    now.Unix(),
		PublicValue1: 2500000,
		Description:  service.RecordDescription,
	}, got)
}

func TestCreate_Unauthenticated(t *testing.T) {
	f := newRecordFixture(t, false)
	f.disconnected()

	_, err := f.svc.Create(context.Background(), models.NewRecord{Name: "Rex", Latitude: "1", Longitude: "2"})
	require.ErrorIs(t, err, service.ErrUnauthenticated)

	status := f.status.Get(service.ScopeCreate)
	assert.Equal(t, models.StatusError, status.Kind)
	assert.Equal(t, app.StatusConnectWallet, status.Message)
}

func TestCreate_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		in      models.NewRecord
		message string
	}{
		{name: "empty name", in: models.NewRecord{Name: "  ", Latitude: "1", Longitude: "2"}, message: app.StatusFillAllFields},
		{name: "empty latitude", in: models.NewRecord{Name: "Rex", Longitude: "2"}, message: app.StatusFillAllFields},
		{name: "empty longitude", in: models.NewRecord{Name: "Rex", Latitude: "1"}, message: app.StatusFillAllFields},
		{name: "latitude not a number", in: models.NewRecord{Name: "Rex", Latitude: "north", Longitude: "2"}, message: app.StatusInvalidCoordinates},
		{name: "longitude not a number", in: models.NewRecord{Name: "Rex", Latitude: "1", Longitude: "NaN"}, message: app.StatusInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRecordFixture(t, false)
			f.connected()

			_, err := f.svc.Create(context.Background(), tt.in)
			require.ErrorIs(t, err, service.ErrInvalidInput)
			assert.Equal(t, tt.message, f.status.Get(service.ScopeCreate).Message)
			assert.False(t, f.svc.Adding())
		})
	}
}

func TestCreate_UserRejected(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()

	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.relayer.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedInput{Handle: "0xa1", Proof: models.HexBytes{1}}, nil)
	f.gateway.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: user rejected transaction", adapter.ErrUserRejected))

	_, err := f.svc.Create(context.Background(), models.NewRecord{Name: "Rex", Latitude: "1", Longitude: "2"})
	require.ErrorIs(t, err, service.ErrUserCancelled)

	status := f.status.Get(service.ScopeCreate)
	assert.Equal(t, models.StatusError, status.Kind)
	assert.Equal(t, app.StatusUserCancelled, status.Message)
	assert.False(t, f.svc.Adding())
}

func TestCreate_SubmissionFailedCarriesMessage(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()
	ctrl := gomock.NewController(t)

	waitErr := fmt.Errorf("%w: out of gas", adapter.ErrTransactionFailed)
	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.relayer.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedInput{Handle: "0xa1", Proof: models.HexBytes{1}}, nil)
	f.gateway.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(confirmedTx(ctrl, "0xtx1", waitErr), nil)

	_, err := f.svc.Create(context.Background(), models.NewRecord{Name: "Rex", Latitude: "1", Longitude: "2"})
	require.ErrorIs(t, err, service.ErrSubmissionFailed)
	require.ErrorIs(t, err, adapter.ErrTransactionFailed)

	status := f.status.Get(service.ScopeCreate)
	assert.Equal(t, models.StatusError, status.Kind)
	assert.Equal(t, fmt.Sprintf(app.StatusSubmissionFailed, waitErr.Error()), status.Message)
}

func TestCreate_EncryptFailure(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()

	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.relayer.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedInput{}, adapter.ErrBadGateway)

	_, err := f.svc.Create(context.Background(), models.NewRecord{Name: "Rex", Latitude: "1", Longitude: "2"})
	require.ErrorIs(t, err, service.ErrSubmissionFailed)
	require.ErrorIs(t, err, adapter.ErrBadGateway)
}

func TestCreate_SecondCallWhileInFlightIsRejected(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()
	ctrl := gomock.NewController(t)

	started := make(chan struct{})
	release := make(chan struct{})

	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil).Times(1)
	f.relayer.EXPECT().Encrypt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.EncryptRequest) (models.EncryptedInput, error) {
			close(started)
			<-release
			return models.EncryptedInput{Handle: "0xa1", Proof: models.HexBytes{1}}, nil
		}).Times(1)
	f.gateway.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(confirmedTx(ctrl, "0xtx1", nil), nil).Times(1)
	f.expectListing(rexRecord())

	in := models.NewRecord{Name: "Rex", Latitude: "37.7749", Longitude: "-122.4194"}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = f.svc.Create(context.Background(), in)
	}()

	<-started
	assert.True(t, f.svc.Adding())

	_, err := f.svc.Create(context.Background(), in)
	require.ErrorIs(t, err, service.ErrOperationInFlight)

	close(release)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.False(t, f.svc.Adding())
}

func TestCreate_RejectedCallLeavesInFlightStatus(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()
	ctrl := gomock.NewController(t)

	started := make(chan struct{})
	release := make(chan struct{})

	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil).Times(1)
	f.relayer.EXPECT().Encrypt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.EncryptRequest) (models.EncryptedInput, error) {
			close(started)
			<-release
			return models.EncryptedInput{Handle: "0xa1", Proof: models.HexBytes{1}}, nil
		}).Times(1)
	f.gateway.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(confirmedTx(ctrl, "0xtx1", nil), nil).Times(1)
	f.expectListing(rexRecord())

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = f.svc.Create(context.Background(), models.NewRecord{Name: "Rex", Latitude: "1", Longitude: "2"})
	}()
	<-started

	_, err := f.svc.Create(context.Background(), models.NewRecord{})
	require.ErrorIs(t, err, service.ErrOperationInFlight)

	status := f.status.Get(service.ScopeCreate)
	assert.Equal(t, models.StatusPending, status.Kind)
	assert.Equal(t, app.StatusAdding, status.Message)

	close(release)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.Equal(t, models.StatusSuccess, f.status.Get(service.ScopeCreate).Kind)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestRefresh_SkipsRecordsThatFailToLoad(t *testing.T) {
	f := newRecordFixture(t, true)

	a := models.Record{ID: "a", Name: "A"}
	c := models.Record{ID: "c", Name: "C"}

	f.gateway.EXPECT().ListRecordIDs(gomock.Any()).Return([]string{"a", "b", "c"}, nil)
	f.gateway.EXPECT().GetRecord(gomock.Any(), "a").Return(a, nil)
	f.gateway.EXPECT().GetRecord(gomock.Any(), "b").Return(models.Record{}, adapter.ErrBadGateway)
	f.gateway.EXPECT().GetRecord(gomock.Any(), "c").Return(c, nil)
	f.cache.EXPECT().ReplaceRecords(gomock.Any(), []models.Record{a, c}).Return(nil)

	got, err := f.svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Record{a, c}, got)
	assert.Equal(t, []models.Record{a, c}, f.svc.Records())
	assert.False(t, f.svc.Refreshing())
}

func TestRefresh_ListingFailure(t *testing.T) {
	f := newRecordFixture(t, false)

	f.gateway.EXPECT().ListRecordIDs(gomock.Any()).Return(nil, adapter.ErrBadGateway)

	got, err := f.svc.Refresh(context.Background())
	require.ErrorIs(t, err, service.ErrLoadFailed)
	require.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.Nil(t, got)
	assert.Nil(t, f.svc.Records())

	status := f.status.Get(service.ScopeRefresh)
	assert.Equal(t, models.StatusError, status.Kind)
	assert.Equal(t, app.StatusLoadFailed, status.Message)
}

func TestRefresh_CacheFailureIsNotFatal(t *testing.T) {
	f := newRecordFixture(t, true)

	a := models.Record{ID: "a"}
	f.expectListing(a)
	f.cache.EXPECT().ReplaceRecords(gomock.Any(), gomock.Any()).Return(store.ErrTxCommitFailed)

	got, err := f.svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Record{a}, got)
}

func TestRefresh_ConcurrentCallersShareOneLoad(t *testing.T) {
	f := newRecordFixture(t, false)

	started := make(chan struct{})
	release := make(chan struct{})
	a := models.Record{ID: "a"}

	f.gateway.EXPECT().ListRecordIDs(gomock.Any()).
		DoAndReturn(func(context.Context) ([]string, error) {
			close(started)
			<-release
			return []string{"a"}, nil
		}).Times(1)
	f.gateway.EXPECT().GetRecord(gomock.Any(), "a").Return(a, nil).Times(1)

	results := make([][]models.Record, 2)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = f.svc.Refresh(context.Background())
	}()

	<-started
	assert.True(t, f.svc.Refreshing())

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = f.svc.Refresh(context.Background())
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, []models.Record{a}, results[0])
	assert.Equal(t, []models.Record{a}, results[1])
}

func TestRefresh_EarlierLoadNeverOverwritesLaterOne(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()
	ctrl := gomock.NewController(t)

	stale := models.Record{ID: "stale"}
	fresh := rexRecord()

	started := make(chan struct{})
	release := make(chan struct{})
	var listings atomic.Int32

	f.gateway.EXPECT().ListRecordIDs(gomock.Any()).
		DoAndReturn(func(context.Context) ([]string, error) {
			if listings.Add(1) == 1 {
				close(started)
				<-release
				return []string{"stale"}, nil
			}
			return []string{"pet-1"}, nil
		}).Times(2)
	f.gateway.EXPECT().GetRecord(gomock.Any(), "stale").Return(stale, nil)
	f.gateway.EXPECT().GetRecord(gomock.Any(), "pet-1").Return(fresh, nil)
	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.relayer.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedInput{Handle: "0xa1", Proof: models.HexBytes{1}}, nil)
	f.gateway.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(confirmedTx(ctrl, "0xtx1", nil), nil)

	var wg sync.WaitGroup
	var staleResult []models.Record
	wg.Add(1)
	go func() {
		defer wg.Done()
		staleResult, _ = f.svc.Refresh(context.Background())
	}()
	<-started

	got, err := f.svc.Create(context.Background(), models.NewRecord{Name: "Rex", Latitude: "37.7749", Longitude: "-122.4194"})
	require.NoError(t, err)
	assert.Equal(t, fresh, got)

	close(release)
	wg.Wait()

	assert.Equal(t, []models.Record{fresh}, f.svc.Records())
	assert.Equal(t, []models.Record{fresh}, staleResult)
}

// ── Reveal ───────────────────────────────────────────────────────────────────

func TestReveal_UnverifiedRecordDecryptsAndVerifies(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()
	ctrl := gomock.NewController(t)

	record := rexRecord()
	handle := models.Handle("0xh1")
	abi := models.HexBytes{0xab}
	proof := models.HexBytes{0xcd}

	f.gateway.EXPECT().GetRecord(gomock.Any(), "pet-1").Return(record, nil)
	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.gateway.EXPECT().GetCiphertextHandle(gomock.Any(), "pet-1").Return(handle, nil)
	f.relayer.EXPECT().PublicDecrypt(gomock.Any(), models.PublicDecryptRequest{
		Handles:         []models.Handle{handle},
		ContractAddress: testContract,
	}).Return(models.DecryptionResult{
		ClearValues:           map[models.Handle]int64{handle: 37774900},
		AbiEncodedClearValues: abi,
		DecryptionProof:       proof,
	}, nil)
	f.gateway.EXPECT().SubmitVerification(gomock.Any(), "pet-1", abi, proof).Return(confirmedTx(ctrl, "0xtx2", nil), nil)

	verified := record
	verified.IsVerified = true
	verified.DecryptedValue = 37774900
	f.expectListing(verified)

	coords, err := f.svc.Reveal(context.Background(), "pet-1")
	require.NoError(t, err)
	require.NotNil(t, coords)

	assert.InDelta(t, 37.7749, coords.Latitude, 1e-9)
	assert.InDelta(t, -122.4194, coords.Longitude, 1e-9)
	assert.Equal(t, models.RevealRevealed, f.svc.RevealState("pet-1"))

	held, ok := f.svc.Revealed("pet-1")
	require.True(t, ok)
	assert.Equal(t, *coords, held)

	status := f.status.Get(service.RevealScope("pet-1"))
	assert.Equal(t, models.StatusSuccess, status.Kind)
	assert.Equal(t, app.StatusDecrypted, status.Message)
	assert.Equal(t, []models.Record{verified}, f.svc.Records())
}

func TestReveal_VerifiedRecordPerformsNoWrites(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()

	record := rexRecord()
	record.IsVerified = true
	record.DecryptedValue = 37774900

	f.gateway.EXPECT().GetRecord(gomock.Any(), "pet-1").Return(record, nil).Times(2)

	first, err := f.svc.Reveal(context.Background(), "pet-1")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, models.RevealVerified, f.svc.RevealState("pet-1"))

	f.svc.Close("pet-1")
	assert.Equal(t, models.RevealLocked, f.svc.RevealState("pet-1"))

	second, err := f.svc.Reveal(context.Background(), "pet-1")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, *first, *second)
	assert.InDelta(t, 37.7749, first.Latitude, 1e-9)
	assert.InDelta(t, -122.4194, first.Longitude, 1e-9)

	status := f.status.Get(service.RevealScope("pet-1"))
	assert.Equal(t, models.StatusSuccess, status.Kind)
	assert.Equal(t, app.StatusAlreadyVerified, status.Message)
}

func TestReveal_TogglesOffHeldPlaintext(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()

	record := rexRecord()
	record.IsVerified = true
	record.DecryptedValue = 37774900
	f.gateway.EXPECT().GetRecord(gomock.Any(), "pet-1").Return(record, nil).Times(1)

	coords, err := f.svc.Reveal(context.Background(), "pet-1")
	require.NoError(t, err)
	require.NotNil(t, coords)

	coords, err = f.svc.Reveal(context.Background(), "pet-1")
	require.NoError(t, err)
	assert.Nil(t, coords)

	_, ok := f.svc.Revealed("pet-1")
	assert.False(t, ok)
	assert.Equal(t, models.RevealLocked, f.svc.RevealState("pet-1"))
}

func TestReveal_AlreadyVerifiedRace(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()
	ctrl := gomock.NewController(t)

	record := rexRecord()
	handle := models.Handle("0xh1")

	f.gateway.EXPECT().GetRecord(gomock.Any(), "pet-1").Return(record, nil)
	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.gateway.EXPECT().GetCiphertextHandle(gomock.Any(), "pet-1").Return(handle, nil)
	f.relayer.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Return(models.DecryptionResult{
		ClearValues:           map[models.Handle]int64{handle: 37774900},
		AbiEncodedClearValues: models.HexBytes{1},
		DecryptionProof:       models.HexBytes{2},
	}, nil)
	waitErr := fmt.Errorf("%w: Data already verified", adapter.ErrAlreadyVerified)
	f.gateway.EXPECT().SubmitVerification(gomock.Any(), "pet-1", gomock.Any(), gomock.Any()).
		Return(confirmedTx(ctrl, "0xtx2", waitErr), nil)

	verified := record
	verified.IsVerified = true
	verified.DecryptedValue = 37774900
	f.expectListing(verified)

	coords, err := f.svc.Reveal(context.Background(), "pet-1")
	require.NoError(t, err)
	assert.Nil(t, coords)

	assert.Equal(t, models.RevealLocked, f.svc.RevealState("pet-1"))
	assert.Equal(t, []models.Record{verified}, f.svc.Records())

	status := f.status.Get(service.RevealScope("pet-1"))
	assert.Equal(t, models.StatusSuccess, status.Kind)
	assert.Equal(t, app.StatusAlreadyVerified, status.Message)
}

func TestReveal_DecryptionFailure(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()

	decryptErr := fmt.Errorf("%w: relayer unavailable", adapter.ErrBadGateway)
	f.gateway.EXPECT().GetRecord(gomock.Any(), "pet-1").Return(rexRecord(), nil)
	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.gateway.EXPECT().GetCiphertextHandle(gomock.Any(), "pet-1").Return(models.Handle("0xh1"), nil)
	f.relayer.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Return(models.DecryptionResult{}, decryptErr)

	coords, err := f.svc.Reveal(context.Background(), "pet-1")
	require.ErrorIs(t, err, service.ErrVerificationFailed)
	require.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.Nil(t, coords)
	assert.Equal(t, models.RevealLocked, f.svc.RevealState("pet-1"))

	status := f.status.Get(service.RevealScope("pet-1"))
	assert.Equal(t, models.StatusError, status.Kind)
	assert.Contains(t, status.Message, "relayer unavailable")
}

func TestReveal_UserRejectedVerification(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()

	f.gateway.EXPECT().GetRecord(gomock.Any(), "pet-1").Return(rexRecord(), nil)
	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.gateway.EXPECT().GetCiphertextHandle(gomock.Any(), "pet-1").Return(models.Handle("0xh1"), nil)
	f.relayer.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Return(models.DecryptionResult{
		ClearValues: map[models.Handle]int64{"0xh1": 1},
	}, nil)
	f.gateway.EXPECT().SubmitVerification(gomock.Any(), "pet-1", gomock.Any(), gomock.Any()).
		Return(nil, adapter.ErrUserRejected)

	_, err := f.svc.Reveal(context.Background(), "pet-1")
	require.ErrorIs(t, err, service.ErrUserCancelled)
	assert.Equal(t, app.StatusUserCancelled, f.status.Get(service.RevealScope("pet-1")).Message)
}

func TestReveal_ResultWithoutRequestedHandle(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()
	ctrl := gomock.NewController(t)

	f.gateway.EXPECT().GetRecord(gomock.Any(), "pet-1").Return(rexRecord(), nil)
	f.gateway.EXPECT().Address(gomock.Any()).Return(testContract, nil)
	f.gateway.EXPECT().GetCiphertextHandle(gomock.Any(), "pet-1").Return(models.Handle("0xh1"), nil)
	f.relayer.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Return(models.DecryptionResult{
		ClearValues: map[models.Handle]int64{"0xother": 37774900},
	}, nil)
	f.gateway.EXPECT().SubmitVerification(gomock.Any(), "pet-1", gomock.Any(), gomock.Any()).
		Return(confirmedTx(ctrl, "0xtx2", nil), nil)

	coords, err := f.svc.Reveal(context.Background(), "pet-1")
	require.ErrorIs(t, err, service.ErrVerificationFailed)
	require.ErrorIs(t, err, service.ErrHandleNotInResult)
	assert.Nil(t, coords)

	_, ok := f.svc.Revealed("pet-1")
	assert.False(t, ok)
}

func TestReveal_Unauthenticated(t *testing.T) {
	f := newRecordFixture(t, false)
	f.disconnected()

	_, err := f.svc.Reveal(context.Background(), "pet-1")
	require.ErrorIs(t, err, service.ErrUnauthenticated)
	assert.Equal(t, app.StatusConnectWallet, f.status.Get(service.RevealScope("pet-1")).Message)
}

func TestReveal_KeyedInFlight(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()

	started := make(chan struct{})
	release := make(chan struct{})

	verifiedA := models.Record{ID: "a", IsVerified: true, DecryptedValue: 1_000_000, PublicValue1: 2_000_000}
	verifiedB := models.Record{ID: "b", IsVerified: true, DecryptedValue: 3_000_000, PublicValue1: 4_000_000}

	f.gateway.EXPECT().GetRecord(gomock.Any(), "a").
		DoAndReturn(func(context.Context, string) (models.Record, error) {
			close(started)
			<-release
			return verifiedA, nil
		}).Times(1)
	f.gateway.EXPECT().GetRecord(gomock.Any(), "b").Return(verifiedB, nil).Times(1)

	var wg sync.WaitGroup
	var first *models.Coordinates
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, _ = f.svc.Reveal(context.Background(), "a")
	}()
	<-started

	assert.True(t, f.svc.Revealing("a"))
	assert.Equal(t, models.RevealRevealing, f.svc.RevealState("a"))

	_, err := f.svc.Reveal(context.Background(), "a")
	require.ErrorIs(t, err, service.ErrOperationInFlight)

	other, err := f.svc.Reveal(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, models.Coordinates{Latitude: 3, Longitude: 4}, *other)

	close(release)
	wg.Wait()

	require.NotNil(t, first)
	assert.Equal(t, models.Coordinates{Latitude: 1, Longitude: 2}, *first)
	assert.False(t, f.svc.Revealing("a"))
	assert.Equal(t, models.RevealVerified, f.svc.RevealState("a"))
}

func TestReveal_CloseDuringRevealDropsPlaintext(t *testing.T) {
	f := newRecordFixture(t, false)
	f.connected()

	started := make(chan struct{})
	release := make(chan struct{})

	record := rexRecord()
	record.IsVerified = true
	record.DecryptedValue = 37774900

	f.gateway.EXPECT().GetRecord(gomock.Any(), "pet-1").
		DoAndReturn(func(context.Context, string) (models.Record, error) {
			close(started)
			<-release
			return record, nil
		}).Times(1)

	var wg sync.WaitGroup
	var coords *models.Coordinates
	var revealErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		coords, revealErr = f.svc.Reveal(context.Background(), "pet-1")
	}()
	<-started

	require.True(t, f.svc.Revealing("pet-1"))
	f.svc.Close("pet-1")

	close(release)
	wg.Wait()

	require.NoError(t, revealErr)
	require.NotNil(t, coords)

	_, ok := f.svc.Revealed("pet-1")
	assert.False(t, ok)
	assert.Equal(t, models.RevealLocked, f.svc.RevealState("pet-1"))
}

// ── Cache & stats ────────────────────────────────────────────────────────────

func TestLoadCached_PrimesSnapshot(t *testing.T) {
	f := newRecordFixture(t, true)

	cached := []models.Record{{ID: "a"}, {ID: "b"}}
	f.cache.EXPECT().GetAllRecords(gomock.Any()).Return(cached, nil)

	got, err := f.svc.LoadCached(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.Equal(t, cached, f.svc.Records())
}

func TestLoadCached_DoesNotOverwriteCommittedRefresh(t *testing.T) {
	f := newRecordFixture(t, true)

	fresh := models.Record{ID: "fresh"}
	f.expectListing(fresh)
	f.cache.EXPECT().ReplaceRecords(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().GetAllRecords(gomock.Any()).Return([]models.Record{{ID: "old"}}, nil)

	_, err := f.svc.Refresh(context.Background())
	require.NoError(t, err)

	got, err := f.svc.LoadCached(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Record{fresh}, got)
}

func TestLoadCached_Error(t *testing.T) {
	f := newRecordFixture(t, true)

	f.cache.EXPECT().GetAllRecords(gomock.Any()).Return(nil, store.ErrCacheReadFailed)

	_, err := f.svc.LoadCached(context.Background())
	require.ErrorIs(t, err, store.ErrCacheReadFailed)
}

func TestLoadCached_WithoutCache(t *testing.T) {
	f := newRecordFixture(t, false)

	got, err := f.svc.LoadCached(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStats(t *testing.T) {
	f := newRecordFixture(t, true)
	now := time.Unix(1_700_100_000, 0)

	f.cache.EXPECT().GetAllRecords(gomock.Any()).Return([]models.Record{
		{ID: "a", Timestamp: now.Add(-time.Hour).Unix(), PublicValue1: -122_000_000, IsVerified: true},
		{ID: "b", Timestamp: now.Add(-48 * time.Hour).Unix(), PublicValue1: -124_000_000},
	}, nil)
	_, err := f.svc.LoadCached(context.Background())
	require.NoError(t, err)

	stats := f.svc.Stats(now)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Verified)
	assert.Equal(t, 1, stats.AddedLastDay)
	assert.InDelta(t, -123.0, stats.AvgLongitude, 1e-9)
}

func TestStats_Empty(t *testing.T) {
	f := newRecordFixture(t, false)

	assert.Equal(t, models.Stats{}, f.svc.Stats(time.Now()))
}
