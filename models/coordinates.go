package models

import "fmt"

// Coordinates is a decoded latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String formats the pair with the codec precision of six decimals.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}

// RevealState is the position of a record in the reveal state machine.
type RevealState int

const (
	// RevealLocked means no plaintext is held for the record.
	RevealLocked RevealState = iota
	// RevealRevealing means a reveal is in flight.
	RevealRevealing
	// RevealRevealed means the plaintext was obtained and verified by this
	// client during the current session.
	RevealRevealed
	// RevealVerified means the record was already verified on-chain and the
	// plaintext was read from the disclosed value.
	RevealVerified
)

func (s RevealState) String() string {
	switch s {
	case RevealRevealing:
		return "revealing"
	case RevealRevealed:
		return "revealed"
	case RevealVerified:
		return "verified"
	default:
		return "locked"
	}
}
