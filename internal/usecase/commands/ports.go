package commands

import (
	"context"

	"bindrop/internal/domain/checkout"
	"bindrop/internal/domain/product"
	"bindrop/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

// Write-side store ports, implemented by internal/infra/memstore.
type CatalogStore interface {
	Add(p *product.Product) error
	FindByID(id string) (*product.Product, error)
}

type LedgerStore interface {
	Record(tx *transaction.Transaction) error
}

type SessionStore interface {
	Put(sess *checkout.Session) error
	Do(id string, fn func(*checkout.Session) error) error
}

// ListingSuggestion is the already-resolved tuple coming back from the
// external suggestion collaborator. The zero value is the manual-entry
// fallback.
type ListingSuggestion struct {
	Name           string          `json:"name"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
}

// SuggestionProvider wraps the external AI listing helper. How the
// suggestion is obtained (vision model, lookup, human) is its business.
type SuggestionProvider interface {
	Suggest(ctx context.Context, imageRef string) (*ListingSuggestion, error)
}
