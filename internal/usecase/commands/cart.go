package commands

import (
	"context"

	"bindrop/internal/domain/cart"
	"bindrop/internal/domain/checkout"
	"bindrop/internal/domain/pricing"
	"bindrop/internal/pkg/clock"
)

type CartCommands interface {
	AddItem(ctx context.Context, sessionID, productID string) (*cart.Item, error)
	RemoveItem(ctx context.Context, sessionID, productID string) error
}

type cartCommandsImpl struct {
	catalog  CatalogStore
	sessions SessionStore
	engine   *pricing.Engine
	clock    clock.Clock
}

func NewCartCommands(
	catalog CatalogStore,
	sessions SessionStore,
	engine *pricing.Engine,
	clock clock.Clock,
) CartCommands {
	return &cartCommandsImpl{
		catalog:  catalog,
		sessions: sessions,
		engine:   engine,
		clock:    clock,
	}
}

// AddItem freezes the product's current price into a new line item. The
// snapshot is taken exactly once, here; the cart never recomputes it.
func (c *cartCommandsImpl) AddItem(_ context.Context, sessionID, productID string) (*cart.Item, error) {
	p, err := c.catalog.FindByID(productID)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	current, err := c.engine.CurrentPrice(p.OriginalPrice(), p.CreatedAt(), now)
	if err != nil {
		return nil, err
	}

	var added cart.Item
	err = c.sessions.Do(sessionID, func(s *checkout.Session) error {
		added = s.Cart().Add(p, current, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (c *cartCommandsImpl) RemoveItem(_ context.Context, sessionID, productID string) error {
	return c.sessions.Do(sessionID, func(s *checkout.Session) error {
		s.Cart().Remove(productID)
		return nil
	})
}
