package tui

import (
	"time"

	"github.com/MKhiriev/go-pet-locator/models"
)

// tickMsg redraws statuses that expire on their own and picks up snapshots
// committed by the background refresh.
type tickMsg time.Time

type refreshDoneMsg struct {
	records []models.Record
}

type createDoneMsg struct {
	record models.Record
	err    error
}

type revealDoneMsg struct {
	id string
}

type copiedMsg struct{}
