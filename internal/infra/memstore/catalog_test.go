//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"bindrop/internal/domain/pricing"
	"bindrop/internal/domain/product"
	"bindrop/internal/infra/memstore"
	"bindrop/internal/pkg/errs"
	"bindrop/internal/pkg/ident"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func listing(t *testing.T, gen ident.Generator, name, category string) *product.Product {
	t.Helper()
	p, err := product.New(gen, name, "", category, "", "seller", pricing.MoneyFromInt(100), now)
	require.NoError(t, err)
	return p
}

func names(products []*product.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name())
	}
	return out
}

func TestCatalog(t *testing.T) {
	t.Run("newest listing first", func(t *testing.T) {
		gen := ident.NewSequenceGenerator("p")
		c := memstore.NewCatalog()
		require.NoError(t, c.Add(listing(t, gen, "AirPods", "High-Tech")))
		require.NoError(t, c.Add(listing(t, gen, "Lego", "Jeux")))
		require.NoError(t, c.Add(listing(t, gen, "Yoga Mat", "Sport")))

		got := names(c.ListByCategory(product.CategoryAll))
		if diff := cmp.Diff([]string{"Yoga Mat", "Lego", "AirPods"}, got); diff != "" {
			t.Errorf("listing order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		c := memstore.NewCatalog()
		p := listing(t, ident.NewSequenceGenerator("p"), "AirPods", "High-Tech")
		require.NoError(t, c.Add(p))
		require.ErrorIs(t, c.Add(p), errs.ErrDuplicateID)
	})

	t.Run("category filter is exact and case-sensitive", func(t *testing.T) {
		gen := ident.NewSequenceGenerator("p")
		c := memstore.NewCatalog()
		require.NoError(t, c.Add(listing(t, gen, "AirPods", "High-Tech")))
		require.NoError(t, c.Add(listing(t, gen, "Robot", "Cuisine")))
		require.NoError(t, c.Add(listing(t, gen, "Blender", "Cuisine")))

		got := names(c.ListByCategory("Cuisine"))
		if diff := cmp.Diff([]string{"Blender", "Robot"}, got); diff != "" {
			t.Errorf("filtered order mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(t, c.ListByCategory("cuisine"))
		assert.Empty(t, c.ListByCategory("Jeux"))
	})

	t.Run("distinct categories keep first-seen order behind the sentinel", func(t *testing.T) {
		gen := ident.NewSequenceGenerator("p")
		c := memstore.NewCatalog()
		require.NoError(t, c.Add(listing(t, gen, "AirPods", "High-Tech")))
		require.NoError(t, c.Add(listing(t, gen, "Robot", "Cuisine")))
		require.NoError(t, c.Add(listing(t, gen, "Blender", "Cuisine")))

		got := c.DistinctCategories()
		if diff := cmp.Diff([]string{"All", "Cuisine", "High-Tech"}, got); diff != "" {
			t.Errorf("categories mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty catalog still reports the sentinel", func(t *testing.T) {
		c := memstore.NewCatalog()
		assert.Equal(t, []string{"All"}, c.DistinctCategories())
		assert.Empty(t, c.ListByCategory(product.CategoryAll))
	})

	t.Run("find by id", func(t *testing.T) {
		gen := ident.NewSequenceGenerator("p")
		c := memstore.NewCatalog()
		p := listing(t, gen, "AirPods", "High-Tech")
		require.NoError(t, c.Add(p))

		got, err := c.FindByID(p.ID())
		require.NoError(t, err)
		assert.Equal(t, p, got)

		_, err = c.FindByID("missing")
		require.ErrorIs(t, err, errs.ErrProductNotFound)
	})
}
