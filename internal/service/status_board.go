package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-pet-locator/models"
)

// Status scopes used by the record workflow.
const (
	ScopeCreate  = "create"
	ScopeRefresh = "refresh"
	ScopeSession = "session"
)

// RevealScope returns the status scope of a reveal of record id.
func RevealScope(id string) string {
	return "reveal:" + id
}

type statusEntry struct {
	status models.OperationStatus
	gen    uint64
}

type statusBoard struct {
	successTTL time.Duration
	errorTTL   time.Duration
	now        func() time.Time

	mu      sync.Mutex
	gen     uint64
	entries map[string]statusEntry
}

// NewStatusBoard returns a [StatusBoard] that clears success statuses after
// successTTL and error statuses after errorTTL.
func NewStatusBoard(successTTL, errorTTL time.Duration) StatusBoard {
	return &statusBoard{
		successTTL: successTTL,
		errorTTL:   errorTTL,
		now:        time.Now,
		entries:    make(map[string]statusEntry),
	}
}

func (b *statusBoard) Set(scope string, kind models.StatusKind, message string) {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.entries[scope] = statusEntry{
		status: models.OperationStatus{Scope: scope, Kind: kind, Message: message, SetAt: b.now()},
		gen:    gen,
	}
	b.mu.Unlock()

	var ttl time.Duration
	switch kind {
	case models.StatusSuccess:
		ttl = b.successTTL
	case models.StatusError:
		ttl = b.errorTTL
	default:
		return
	}

	time.AfterFunc(ttl, func() { b.dismiss(scope, gen) })
}

// dismiss clears scope unless it was set again after gen.
func (b *statusBoard) dismiss(scope string, gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if entry, ok := b.entries[scope]; ok && entry.gen == gen {
		delete(b.entries, scope)
	}
}

func (b *statusBoard) Get(scope string) models.OperationStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[scope]
	if !ok {
		return models.OperationStatus{Scope: scope, Kind: models.StatusIdle}
	}

	return entry.status
}

func (b *statusBoard) Banner() models.OperationStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	var latest statusEntry
	for _, entry := range b.entries {
		if entry.status.Visible() && entry.gen > latest.gen {
			latest = entry
		}
	}

	if latest.gen == 0 {
		return models.OperationStatus{Kind: models.StatusIdle}
	}

	return latest.status
}
