package catalog

import (
	"context"

	"studio-search/internal/domain/studio"
)

// Source produces the flat record list from one storage format.
type Source interface {
	Fetch(ctx context.Context) ([]studio.Record, error)
	Name() string
}
