package utils

import "github.com/google/uuid"

// UUIDGenerator produces correlation identifiers: session ids for the
// client app and X-Request-Id values for outgoing sync requests.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. Version 7 ids are time-ordered, so
// correlation ids sort by creation time in logs; on a v7 generation
// failure it falls back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
