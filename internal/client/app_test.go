package client

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/mock"
	"github.com/MKhiriev/go-pet-locator/internal/service"
	"github.com/MKhiriev/go-pet-locator/internal/workers"
	"github.com/MKhiriev/go-pet-locator/models"
)

type fakeUI struct {
	err    error
	called bool
}

func (f *fakeUI) Run(context.Context) error {
	f.called = true
	return f.err
}

type fakeWorker struct {
	events *[]string
}

func (w fakeWorker) Start(context.Context) { *w.events = append(*w.events, "start") }
func (w fakeWorker) Stop()                 { *w.events = append(*w.events, "stop") }

type appFixture struct {
	app        *App
	records    *mock.MockClientRecordService
	session    *mock.MockClientSession
	encryption *mock.MockClientEncryptionService
	status     service.StatusBoard
}

func newTestApp(t *testing.T, ui UI, events *[]string) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &appFixture{
		records:    mock.NewMockClientRecordService(ctrl),
		session:    mock.NewMockClientSession(ctrl),
		encryption: mock.NewMockClientEncryptionService(ctrl),
		status:     service.NewStatusBoard(time.Minute, time.Minute),
	}
	services := &service.ClientServices{
		Records:    f.records,
		Session:    f.session,
		Encryption: f.encryption,
		Status:     f.status,
	}
	f.app = NewApp(services, ui, workers.NewWorkers(fakeWorker{events: events}), logger.Nop())

	return f
}

func TestApp_Run(t *testing.T) {
	var events []string
	ui := &fakeUI{}
	f := newTestApp(t, ui, &events)

	f.records.EXPECT().LoadCached(gomock.Any()).Return([]models.Record{{ID: "pet-1"}}, nil)
	f.encryption.EXPECT().Ready(gomock.Any()).Return(nil)
	f.session.EXPECT().Connected().Return(true)

	require.NoError(t, f.app.run(context.Background()))
	assert.True(t, ui.called)
	assert.Equal(t, []string{"start", "stop"}, events)
	assert.Equal(t, models.StatusIdle, f.status.Get(service.ScopeSession).Kind)
}

func TestApp_RunCacheFailureIsNotFatal(t *testing.T) {
	var events []string
	ui := &fakeUI{}
	f := newTestApp(t, ui, &events)

	f.records.EXPECT().LoadCached(gomock.Any()).Return(nil, errors.New("disk"))
	f.encryption.EXPECT().Ready(gomock.Any()).Return(nil)
	f.session.EXPECT().Connected().Return(false)

	require.NoError(t, f.app.run(context.Background()))
	assert.True(t, ui.called)
}

func TestApp_RunRelayerUnavailableSetsSessionStatus(t *testing.T) {
	var events []string
	ui := &fakeUI{}
	f := newTestApp(t, ui, &events)

	readyErr := fmt.Errorf("%w: connection refused", service.ErrRelayerUnavailable)
	f.records.EXPECT().LoadCached(gomock.Any()).Return(nil, nil)
	f.encryption.EXPECT().Ready(gomock.Any()).Return(readyErr)
	f.session.EXPECT().Connected().Return(true)

	require.NoError(t, f.app.run(context.Background()))
	assert.True(t, ui.called)
	assert.Equal(t, []string{"start", "stop"}, events)

	status := f.status.Get(service.ScopeSession)
	assert.Equal(t, models.StatusError, status.Kind)
	assert.Equal(t, fmt.Sprintf(app.StatusRelayerUnavailable, readyErr.Error()), status.Message)
}

func TestApp_RunUIError(t *testing.T) {
	var events []string
	uiErr := errors.New("tty")
	f := newTestApp(t, &fakeUI{err: uiErr}, &events)

	f.records.EXPECT().LoadCached(gomock.Any()).Return(nil, nil)
	f.encryption.EXPECT().Ready(gomock.Any()).Return(nil)
	f.session.EXPECT().Connected().Return(true)

	err := f.app.run(context.Background())

	assert.ErrorIs(t, err, uiErr)
	assert.Equal(t, []string{"start", "stop"}, events)
}
