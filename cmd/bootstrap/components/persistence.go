package components

import (
	"context"
	"fmt"
	"log/slog"

	"studio-search/internal/infra/catalog"
	"studio-search/internal/infra/db"
	"studio-search/internal/infra/readstore"
	"studio-search/internal/pkg/config"
	"studio-search/internal/pkg/errs"

	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// PersistenceModule selects the catalog source from CATALOG_SOURCE.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewCatalogSource,
	),
)

func NewCatalogSource(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (catalog.Source, error) {
	c := cfg.Catalog
	fetcher := catalog.NewHTTPFetcher(c.FetchTimeout, c.MaxRetries, logger)

	switch c.Source {
	case config.SourceJSON:
		return catalog.NewJSONSource(c.URL, c.Path, fetcher, logger), nil

	case config.SourceCSV:
		if c.URL == "" {
			return nil, errs.Mark(errs.New("CATALOG_URL is required for csv"), errs.ErrCatalogNotConfigured)
		}
		return catalog.NewCSVSource(c.URL, fetcher, logger), nil

	case config.SourceSheets:
		var opts []option.ClientOption
		if c.SheetsCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(c.SheetsCredentialsFile))
		}
		return catalog.NewSheetsSource(context.Background(), c.SheetsSpreadsheetID, c.SheetsRange, logger, opts...)

	case config.SourceSQLite:
		gdb, err := catalog.OpenSQLite(c.SQLitePath)
		if err != nil {
			return nil, errs.Wrap(err, "open sqlite catalog")
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				sqlDB, err := gdb.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		})
		return catalog.NewSQLiteSource(gdb, logger), nil

	case config.SourcePostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})
		return readstore.NewCatalogReadStore(pool, logger), nil

	default:
		return nil, errs.Mark(fmt.Errorf("unknown CATALOG_SOURCE %q", c.Source), errs.ErrCatalogNotConfigured)
	}
}
