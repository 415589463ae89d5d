package components

import (
	"studio-search/internal/domain/pricing"
	"studio-search/internal/domain/search"
	"studio-search/internal/pkg/clock"
	"studio-search/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultPriceCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
	search.NewEngine,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSearchQueries,
		queries.NewDirectoryQueries,
		queries.NewConditionQueries,
	),
)
