package components

import (
	"bindrop/internal/handler"
	"bindrop/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewTransactionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
