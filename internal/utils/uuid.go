// Package utils holds small helpers shared by the services.
package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-mempass/models"
)

// UUIDGenerator issues identifiers for entries and attachments. UUIDv7 keeps
// them roughly ordered by creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random v4 when v7 cannot be built.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewEntryID returns a fresh entry identifier.
func (g *UUIDGenerator) NewEntryID() models.EntryID {
	return models.NormalizeEntryID(g.Generate())
}
