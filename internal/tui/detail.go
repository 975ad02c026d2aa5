package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/codec"
	"github.com/MKhiriev/go-pet-locator/models"
)

func latitudeLine(state models.RevealState, coords models.Coordinates, held bool) string {
	switch {
	case state == models.RevealRevealing:
		return pendingStyle.Render("decrypting...")
	case held:
		return fmt.Sprintf("%.6f", coords.Latitude)
	default:
		return lockedStyle.Render("encrypted")
	}
}

func renderDetail(r models.Record, state models.RevealState, coords models.Coordinates, held bool) string {
	var b strings.Builder

	verified := "no"
	if r.IsVerified {
		verified = verifiedStyle.Render("yes")
	}

	fmt.Fprintf(&b, "ID:          %s\n", r.ID)
	fmt.Fprintf(&b, "Owner:       %s\n", r.Creator)
	fmt.Fprintf(&b, "Created:     %s\n", time.Unix(r.Timestamp, 0).Format(time.DateTime))
	fmt.Fprintf(&b, "Description: %s\n", r.Description)
	fmt.Fprintf(&b, "Verified:    %s\n\n", verified)
	fmt.Fprintf(&b, "Latitude:    %s\n", latitudeLine(state, coords, held))
	fmt.Fprintf(&b, "Longitude:   %.6f\n", codec.Decode(r.PublicValue1))
	fmt.Fprintf(&b, "State:       %s", state)

	return b.String()
}

func detailHotKeys(state models.RevealState, held bool) string {
	switch {
	case state == models.RevealRevealing:
		return "esc: back"
	case held:
		return "r: hide  c: copy coordinates  esc: back"
	default:
		return "r: decrypt  esc: back"
	}
}
