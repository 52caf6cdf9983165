package store

import (
	"github.com/MKhiriev/go-users-api/internal/logger"
)

// Storages aggregates the stores used by the service layer.
type Storages struct {
	UserStore UserStore
}

// NewStorages builds in-memory storages seeded with [DefaultSeed].
// Nothing survives a restart.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		UserStore: NewMemoryUserStore(logger, DefaultSeed()...),
	}
}
