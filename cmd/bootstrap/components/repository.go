package components

import (
	"log/slog"

	"studio-search/internal/domain/studio"
	"studio-search/internal/infra/catalog"
	"studio-search/internal/pkg/clock"
	"studio-search/internal/pkg/config"
	"studio-search/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewCatalogReader,
			fx.As(new(queries.CatalogReader)),
		),
		NewAreaDirectory,
	),
)

func NewCatalogReader(source catalog.Source, clk clock.Clock, cfg config.CatalogConfig, logger *slog.Logger) *catalog.CachedCatalog {
	return catalog.NewCachedCatalog(source, clk, cfg.CacheTTL, logger)
}

func NewAreaDirectory(cfg config.CatalogConfig) (*studio.AreaDirectory, error) {
	return catalog.LoadAreaDirectory(cfg.AreaFile)
}
