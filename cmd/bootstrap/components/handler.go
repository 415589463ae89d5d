package components

import (
	"studio-search/internal/handler"
	"studio-search/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSearchHandler,
		api.NewStudioHandler,
	),
	fx.Invoke(handler.NewRouter),
)
