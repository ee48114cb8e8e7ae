package components

import (
	"bindrop/internal/infra/memstore"
	"bindrop/internal/infra/suggest"
	"bindrop/internal/pkg/config"
	"bindrop/internal/usecase/commands"
	"bindrop/internal/usecase/queries"

	"go.uber.org/fx"
)

// StoreModule wires the in-memory stores. The catalog and ledger double as
// write-side stores for commands and read-side stores for queries.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			memstore.NewCatalog,
			fx.As(new(commands.CatalogStore)),
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			memstore.NewLedger,
			fx.As(new(commands.LedgerStore)),
			fx.As(new(queries.LedgerReadStore)),
		),
		fx.Annotate(
			memstore.NewSessions,
			fx.As(new(commands.SessionStore)),
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			NewSuggestionClient,
			fx.As(new(commands.SuggestionProvider)),
		),
	),
)

func NewSuggestionClient(cfg config.Config) *suggest.Client {
	return suggest.NewClient(cfg.Suggest)
}
