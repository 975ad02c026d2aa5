package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/codec"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

const listNameWidth = 24

func listIcon(r models.Record) string {
	if r.IsVerified {
		return verifiedStyle.Render("[V]")
	}
	return lockedStyle.Render("[L]")
}

func renderStats(s models.Stats) string {
	verified := 0.0
	if s.Total > 0 {
		verified = float64(s.Verified) / float64(s.Total) * 100
	}

	return fmt.Sprintf("Pets: %d   Verified: %d (%.0f%%)   Last 24h: %d   Avg longitude: %.6f",
		s.Total, s.Verified, verified, s.AddedLastDay, s.AvgLongitude)
}

func renderRecordLine(r models.Record, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	created := time.Unix(r.Timestamp, 0).Format("2006-01-02 15:04")
	return fmt.Sprintf("%s%s %-*s  lon %11.6f  %s  %s",
		cursor, listIcon(r), listNameWidth, fitText(r.Name, listNameWidth),
		codec.Decode(r.PublicValue1), created, utils.ShortAddress(r.Creator))
}

func renderList(records []models.Record, idx int, stats models.Stats, loading bool) string {
	var b strings.Builder

	b.WriteString(renderStats(stats))
	b.WriteString("\n\n")

	switch {
	case len(records) == 0 && loading:
		b.WriteString("Loading...")
	case len(records) == 0:
		b.WriteString("No pets yet")
	default:
		for i, r := range records {
			b.WriteString(renderRecordLine(r, i == idx))
			b.WriteString("\n")
		}
	}

	return b.String()
}
