package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers.
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator whose values start with prefix.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns prefix followed by a UUIDv7. When the v7 source fails it
// falls back to a random v4 so the value stays globally unique.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return g.prefix + uuid.NewString()
	}

	return g.prefix + v7.String()
}
