package queries

import (
	"context"

	"studio-search/internal/domain/studio"
	"studio-search/internal/pkg/errs"

	"github.com/google/uuid"
)

type DirectoryView struct {
	CatalogVersion uuid.UUID
	Groups         []studio.AreaGroup
}

type DirectoryQueries interface {
	ListByArea(ctx context.Context) (*DirectoryView, error)
}

type directoryQueriesImpl struct {
	catalog   CatalogReader
	directory *studio.AreaDirectory
}

func NewDirectoryQueries(catalog CatalogReader, directory *studio.AreaDirectory) DirectoryQueries {
	return &directoryQueriesImpl{catalog: catalog, directory: directory}
}

func (q *directoryQueriesImpl) ListByArea(ctx context.Context) (*DirectoryView, error) {
	catalog, err := q.catalog.Load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load catalog"), errs.ErrCatalogUnavailable)
	}

	return &DirectoryView{
		CatalogVersion: catalog.Version,
		Groups:         q.directory.Group(catalog.Records),
	}, nil
}
