package queries

import (
	"context"

	"studio-search/internal/domain/studio"
)

// CatalogReader returns the current catalog snapshot.
type CatalogReader interface {
	Load(ctx context.Context) (*studio.Catalog, error)
}
