package bootstrap

import (
	"studio-search/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSectionsModule,
)

// ConfigSectionsModule splits Config into the sections individual constructors depend on.
var ConfigSectionsModule = fx.Provide(
	func(cfg config.Config) config.SearchConfig { return cfg.Search },
	func(cfg config.Config) config.CatalogConfig { return cfg.Catalog },
)
