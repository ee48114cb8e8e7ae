package memstore

import (
	"sync"

	"bindrop/internal/domain/product"
	"bindrop/internal/pkg/errs"
)

// Catalog holds every listing in memory, most recent first. Listings are
// immutable and never deleted, so reads only need a snapshot of the slice.
type Catalog struct {
	mu       sync.RWMutex
	products []*product.Product
	ids      map[string]struct{}
}

func NewCatalog() *Catalog {
	return &Catalog{ids: make(map[string]struct{})}
}

func (c *Catalog) Add(p *product.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.ids[p.ID()]; ok {
		return errs.Wrap(errs.ErrDuplicateID, "product "+p.ID())
	}
	c.ids[p.ID()] = struct{}{}
	c.products = append([]*product.Product{p}, c.products...)
	return nil
}

func (c *Catalog) FindByID(id string) (*product.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.ids[id]; !ok {
		return nil, errs.Wrap(errs.ErrProductNotFound, id)
	}
	for _, p := range c.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, errs.Wrap(errs.ErrProductNotFound, id)
}

// ListByCategory returns an order-preserving snapshot. The "All" sentinel
// returns everything; any other filter matches the category exactly.
func (c *Catalog) ListByCategory(filter string) []*product.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if filter == product.CategoryAll || filter == "" {
		out := make([]*product.Product, len(c.products))
		copy(out, c.products)
		return out
	}

	var out []*product.Product
	for _, p := range c.products {
		if p.Category() == filter {
			out = append(out, p)
		}
	}
	return out
}

// DistinctCategories lists category labels in first-seen order across the
// catalog (newest listing first), with the "All" sentinel leading.
func (c *Catalog) DistinctCategories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []string{product.CategoryAll}
	seen := map[string]struct{}{product.CategoryAll: {}}
	for _, p := range c.products {
		if _, ok := seen[p.Category()]; ok {
			continue
		}
		seen[p.Category()] = struct{}{}
		out = append(out, p.Category())
	}
	return out
}
