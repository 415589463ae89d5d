package studio

import (
	"time"

	"github.com/google/uuid"
)

// Catalog is one loaded snapshot of the flat record list.
type Catalog struct {
	Version  uuid.UUID
	LoadedAt time.Time
	Records  []Record
}

func NewCatalog(records []Record, loadedAt time.Time) *Catalog {
	return &Catalog{
		Version:  uuid.New(),
		LoadedAt: loadedAt,
		Records:  records,
	}
}
