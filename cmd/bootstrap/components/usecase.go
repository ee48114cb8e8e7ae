package components

import (
	"bindrop/internal/domain/pricing"
	"bindrop/internal/pkg/clock"
	"bindrop/internal/pkg/config"
	"bindrop/internal/pkg/ident"
	"bindrop/internal/usecase/commands"
	"bindrop/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ident.NewUUIDGenerator,
	NewPricingEngine,
)

func NewPricingEngine(cfg config.Config) *pricing.Engine {
	return pricing.NewEngine(cfg.Pricing.DecayDays)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewListingCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCartQueries,
		queries.NewTransactionQueries,
	),
)
