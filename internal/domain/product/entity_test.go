//go:build unit

package product_test

import (
	"testing"
	"time"

	"bindrop/internal/domain/pricing"
	"bindrop/internal/domain/product"
	"bindrop/internal/pkg/ident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	gen := ident.NewSequenceGenerator("prod")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		p, err := product.New(gen, "AirPods Pro", "as new", "High-Tech", "img://1", "Boutique Alpha", pricing.MoneyFromInt(249), now)
		require.NoError(t, err)

		assert.Equal(t, "prod-1", p.ID())
		assert.Equal(t, "AirPods Pro", p.Name())
		assert.Equal(t, "High-Tech", p.Category())
		assert.Equal(t, "Boutique Alpha", p.SellerName())
		assert.True(t, p.OriginalPrice().Equal(pricing.MoneyFromInt(249)))
		assert.Equal(t, now, p.CreatedAt())
	})

	t.Run("blank seller defaults to anonymous", func(t *testing.T) {
		p, err := product.New(gen, "Yoga Mat", "", "Sport", "", "   ", pricing.MoneyFromInt(85), now)
		require.NoError(t, err)
		assert.Equal(t, product.DefaultSellerName, p.SellerName())
	})

	cases := []struct {
		name     string
		prodName string
		category string
		price    pricing.Money
		errIs    error
	}{
		{name: "empty name", prodName: "  ", category: "Sport", price: pricing.MoneyFromInt(10), errIs: product.ErrEmptyName},
		{name: "empty category", prodName: "Yoga Mat", category: "", price: pricing.MoneyFromInt(10), errIs: product.ErrEmptyCategory},
		{name: "reserved category sentinel", prodName: "Yoga Mat", category: product.CategoryAll, price: pricing.MoneyFromInt(10), errIs: product.ErrEmptyCategory},
		{name: "zero price", prodName: "Yoga Mat", category: "Sport", price: pricing.Money{}, errIs: pricing.ErrInvalidPrice},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := product.New(gen, c.prodName, "", c.category, "", "", c.price, now)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}
