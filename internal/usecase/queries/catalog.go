package queries

import (
	"context"

	"bindrop/internal/domain/pricing"
	"bindrop/internal/domain/product"
	"bindrop/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

type CatalogReadStore interface {
	ListByCategory(filter string) []*product.Product
	DistinctCategories() []string
}

type CatalogQueries interface {
	ListProducts(ctx context.Context, category string) ([]*ProductView, error)
	Categories(ctx context.Context) ([]string, error)
}

type catalogQueriesImpl struct {
	store  CatalogReadStore
	engine *pricing.Engine
	clock  clock.Clock
}

func NewCatalogQueries(store CatalogReadStore, engine *pricing.Engine, clock clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{store: store, engine: engine, clock: clock}
}

func (q *catalogQueriesImpl) ListProducts(_ context.Context, category string) ([]*ProductView, error) {
	now := q.clock.Now()
	products := q.store.ListByCategory(category)

	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		current, err := q.engine.CurrentPrice(p.OriginalPrice(), p.CreatedAt(), now)
		if err != nil {
			return nil, err
		}

		views = append(views, &ProductView{
			ID:              p.ID(),
			Name:            p.Name(),
			Description:     p.Description(),
			Category:        p.Category(),
			ImageURL:        p.ImageURL(),
			SellerName:      p.SellerName(),
			OriginalPrice:   p.OriginalPrice().Amount(),
			CurrentPrice:    current.Amount(),
			DayCount:        q.engine.DayCount(p.CreatedAt(), now),
			DiscountPercent: discountPercent(p.OriginalPrice().Amount(), current.Amount()),
			CreatedAt:       p.CreatedAt(),
		})
	}
	return views, nil
}

func (q *catalogQueriesImpl) Categories(_ context.Context) ([]string, error) {
	return q.store.DistinctCategories(), nil
}

// discountPercent is derived display arithmetic only; the decay formula
// remains the sole source of truth for the price itself.
func discountPercent(original, current decimal.Decimal) int64 {
	if !original.IsPositive() {
		return 0
	}
	return original.Sub(current).
		Div(original).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
