//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bindrop/internal/domain/pricing"
	"bindrop/internal/domain/product"
	"bindrop/internal/infra/memstore"
	"bindrop/internal/pkg/clock"
	"bindrop/internal/pkg/errs"
	"bindrop/internal/pkg/ident"
	"bindrop/internal/usecase/commands"
	"bindrop/tests/common/builder"
	commandsmock "bindrop/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newListingCommands(t *testing.T, now time.Time) (commands.ListingCommands, *memstore.Catalog, *commandsmock.MockSuggestionProvider) {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalog := memstore.NewCatalog()
	provider := commandsmock.NewMockSuggestionProvider(ctrl)
	cmds := commands.NewListingCommands(catalog, provider, ident.NewUUIDGenerator(), clock.NewMockClock(now))
	return cmds, catalog, provider
}

func TestListingCommands_CreateListing(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("creates the listing with the clock's timestamp", func(t *testing.T) {
		cmds, catalog, _ := newListingCommands(t, now)

		result, err := cmds.CreateListing(ctx, builder.NewListingBuilder().BuildCreateRequestDTO())
		require.NoError(t, err)
		require.NotEmpty(t, result.ProductID)

		p, err := catalog.FindByID(result.ProductID)
		require.NoError(t, err)
		require.Equal(t, "Vintage Camera", p.Name())
		require.Equal(t, now, p.CreatedAt())
		require.True(t, p.OriginalPrice().Amount().Equal(decimal.NewFromInt(700)))
	})

	t.Run("blank seller becomes anonymous", func(t *testing.T) {
		cmds, catalog, _ := newListingCommands(t, now)

		req := builder.NewListingBuilder().WithSellerName("  ").BuildCreateRequestDTO()
		result, err := cmds.CreateListing(ctx, req)
		require.NoError(t, err)

		p, err := catalog.FindByID(result.ProductID)
		require.NoError(t, err)
		require.Equal(t, product.DefaultSellerName, p.SellerName())
	})

	t.Run("rejects a non-positive price", func(t *testing.T) {
		cmds, _, _ := newListingCommands(t, now)

		req := builder.NewListingBuilder().WithOriginalPrice(decimal.Zero).BuildCreateRequestDTO()
		_, err := cmds.CreateListing(ctx, req)
		require.ErrorIs(t, err, pricing.ErrInvalidPrice)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		cmds, _, _ := newListingCommands(t, now)

		req := builder.NewListingBuilder().WithName("   ").BuildCreateRequestDTO()
		_, err := cmds.CreateListing(ctx, req)
		require.ErrorIs(t, err, product.ErrEmptyName)
	})
}

func TestListingCommands_SuggestListing(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("passes the collaborator's suggestion through", func(t *testing.T) {
		cmds, _, provider := newListingCommands(t, now)

		want := &commands.ListingSuggestion{
			Name:           "Mountain Bike",
			SuggestedPrice: decimal.NewFromInt(250),
			Description:    "Hardtail, medium frame",
			Category:       "Sports",
		}
		provider.EXPECT().Suggest(gomock.Any(), "img-42").Return(want, nil)

		got, err := cmds.SuggestListing(ctx, "img-42")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("collaborator failure degrades to the blank suggestion", func(t *testing.T) {
		cmds, _, provider := newListingCommands(t, now)

		provider.EXPECT().Suggest(gomock.Any(), "img-42").
			Return(nil, errs.Wrap(errs.ErrSuggestionUnavailable, "boom"))

		got, err := cmds.SuggestListing(ctx, "img-42")
		require.NoError(t, err)
		require.Equal(t, &commands.ListingSuggestion{}, got)
	})
}
