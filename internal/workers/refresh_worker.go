package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/config"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
)

type refreshWorker struct {
	refresher Refresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a worker that calls refresher.Refresh every
// interval. A non-positive interval falls back to
// [config.DefaultRefreshInterval]. The worker is idle until Start is called.
func NewRefreshWorker(refresher Refresher, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}

	return &refreshWorker{refresher: refresher, interval: interval, logger: logger}
}

func (w *refreshWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := w.refresher.Refresh(jobCtx); err != nil {
					w.logger.Warn().Err(err).Str("func", "refreshWorker.Start").Msg("background refresh failed")
				}
			}
		}
	}()

	w.logger.Debug().Str("func", "refreshWorker.Start").Dur("interval", w.interval).Msg("refresh worker started")
}

func (w *refreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
