//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bindrop/internal/domain/checkout"
	"bindrop/internal/domain/pricing"
	"bindrop/internal/infra/memstore"
	"bindrop/internal/pkg/clock"
	"bindrop/internal/pkg/errs"
	"bindrop/internal/pkg/ident"
	"bindrop/internal/usecase/commands"
	"bindrop/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	catalog  *memstore.Catalog
	sessions *memstore.Sessions
	ledger   *memstore.Ledger
	clock    *clock.MockClock
	cart     commands.CartCommands
	checkout commands.CheckoutCommands
}

func newCheckoutFixture(t *testing.T, now time.Time) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		catalog:  memstore.NewCatalog(),
		sessions: memstore.NewSessions(),
		ledger:   memstore.NewLedger(),
		clock:    clock.NewMockClock(now),
	}
	engine := pricing.NewEngine(pricing.DefaultDecayDays)
	gen := ident.NewSequenceGenerator("id")
	f.cart = commands.NewCartCommands(f.catalog, f.sessions, engine, f.clock)
	f.checkout = commands.NewCheckoutCommands(f.sessions, f.ledger, gen, f.clock)
	return f
}

func (f *checkoutFixture) seedListing(t *testing.T, b *builder.ListingBuilder) string {
	t.Helper()

	p, err := b.BuildDomain(ident.NewUUIDGenerator())
	require.NoError(t, err)
	require.NoError(t, f.catalog.Add(p))
	return p.ID()
}

func (f *checkoutFixture) status(t *testing.T, sessionID string) checkout.Status {
	t.Helper()

	var status checkout.Status
	require.NoError(t, f.sessions.Do(sessionID, func(s *checkout.Session) error {
		status = s.Status()
		return nil
	}))
	return status
}

func TestCheckoutCommands_ConfirmPayment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("approved payment records the decayed total and empties the cart", func(t *testing.T) {
		f := newCheckoutFixture(t, now)

		// 700 listed 3 days ago decays to 400; 175 listed 6 days ago to 25.
		idA := f.seedListing(t, builder.NewListingBuilder().AsListedDaysAgo(now, 3))
		idB := f.seedListing(t, builder.NewListingBuilder().
			WithName("Desk Lamp").
			WithCategory("Furniture").
			WithOriginalPrice(decimal.NewFromInt(175)).
			AsListedDaysAgo(now, 6))

		sessionID, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)

		_, err = f.cart.AddItem(ctx, sessionID, idA)
		require.NoError(t, err)
		_, err = f.cart.AddItem(ctx, sessionID, idB)
		require.NoError(t, err)

		require.NoError(t, f.checkout.Begin(ctx, sessionID))
		require.Equal(t, checkout.StatusAwaitingPayment, f.status(t, sessionID))

		result, err := f.checkout.ConfirmPayment(ctx, sessionID, true)
		require.NoError(t, err)
		require.True(t, result.Total.Equal(decimal.NewFromInt(425)), "got total %s", result.Total)

		txs := f.ledger.All()
		require.Len(t, txs, 1)
		require.Equal(t, result.TransactionID, txs[0].ID())
		require.Len(t, txs[0].Items(), 2)
		require.True(t, txs[0].Total().Equal(decimal.NewFromInt(425)))
		require.Equal(t, now, txs[0].Date())

		require.Equal(t, checkout.StatusIdle, f.status(t, sessionID))
		require.NoError(t, f.sessions.Do(sessionID, func(s *checkout.Session) error {
			require.True(t, s.Cart().IsEmpty())
			return nil
		}))
	})

	t.Run("declined payment keeps the session awaiting and records nothing", func(t *testing.T) {
		f := newCheckoutFixture(t, now)
		id := f.seedListing(t, builder.NewListingBuilder().AsFreshListing(now))

		sessionID, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)
		_, err = f.cart.AddItem(ctx, sessionID, id)
		require.NoError(t, err)
		require.NoError(t, f.checkout.Begin(ctx, sessionID))

		_, err = f.checkout.ConfirmPayment(ctx, sessionID, false)
		require.ErrorIs(t, err, checkout.ErrPaymentDeclined)

		require.Empty(t, f.ledger.All())
		require.Equal(t, checkout.StatusAwaitingPayment, f.status(t, sessionID))

		// A retry after the decline still succeeds.
		result, err := f.checkout.ConfirmPayment(ctx, sessionID, true)
		require.NoError(t, err)
		require.Len(t, f.ledger.All(), 1)
		require.Equal(t, result.TransactionID, f.ledger.All()[0].ID())
	})

	t.Run("cart emptied mid-checkout fails confirmation", func(t *testing.T) {
		f := newCheckoutFixture(t, now)
		id := f.seedListing(t, builder.NewListingBuilder().AsFreshListing(now))

		sessionID, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)
		_, err = f.cart.AddItem(ctx, sessionID, id)
		require.NoError(t, err)
		require.NoError(t, f.checkout.Begin(ctx, sessionID))
		require.NoError(t, f.cart.RemoveItem(ctx, sessionID, id))

		_, err = f.checkout.ConfirmPayment(ctx, sessionID, true)
		require.ErrorIs(t, err, checkout.ErrEmptyCheckout)
		require.Empty(t, f.ledger.All())
	})

	t.Run("confirm without begin is rejected", func(t *testing.T) {
		f := newCheckoutFixture(t, now)

		sessionID, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)

		_, err = f.checkout.ConfirmPayment(ctx, sessionID, true)
		require.ErrorIs(t, err, checkout.ErrInvalidTransition)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newCheckoutFixture(t, now)

		_, err := f.checkout.ConfirmPayment(ctx, "no-such-session", true)
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestCheckoutCommands_Begin(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty cart cannot begin checkout", func(t *testing.T) {
		f := newCheckoutFixture(t, now)

		sessionID, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)

		require.ErrorIs(t, f.checkout.Begin(ctx, sessionID), checkout.ErrEmptyCheckout)
		require.Equal(t, checkout.StatusIdle, f.status(t, sessionID))
	})

	t.Run("begin twice is rejected", func(t *testing.T) {
		f := newCheckoutFixture(t, now)
		id := f.seedListing(t, builder.NewListingBuilder().AsFreshListing(now))

		sessionID, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)
		_, err = f.cart.AddItem(ctx, sessionID, id)
		require.NoError(t, err)

		require.NoError(t, f.checkout.Begin(ctx, sessionID))
		require.ErrorIs(t, f.checkout.Begin(ctx, sessionID), checkout.ErrInvalidTransition)
	})
}

func TestCheckoutCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("cancel returns to shopping with the cart intact", func(t *testing.T) {
		f := newCheckoutFixture(t, now)
		id := f.seedListing(t, builder.NewListingBuilder().AsFreshListing(now))

		sessionID, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)
		_, err = f.cart.AddItem(ctx, sessionID, id)
		require.NoError(t, err)
		require.NoError(t, f.checkout.Begin(ctx, sessionID))

		require.NoError(t, f.checkout.Cancel(ctx, sessionID))
		require.Equal(t, checkout.StatusIdle, f.status(t, sessionID))
		require.NoError(t, f.sessions.Do(sessionID, func(s *checkout.Session) error {
			require.Equal(t, 1, s.Cart().Len())
			return nil
		}))
		require.Empty(t, f.ledger.All())
	})

	t.Run("cancel while idle is rejected", func(t *testing.T) {
		f := newCheckoutFixture(t, now)

		sessionID, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)

		require.ErrorIs(t, f.checkout.Cancel(ctx, sessionID), checkout.ErrInvalidTransition)
	})
}

func TestCheckoutCommands_OpenSession(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("sessions are independent", func(t *testing.T) {
		f := newCheckoutFixture(t, now)
		id := f.seedListing(t, builder.NewListingBuilder().AsFreshListing(now))

		first, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)
		second, err := f.checkout.OpenSession(ctx)
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		_, err = f.cart.AddItem(ctx, first, id)
		require.NoError(t, err)

		require.NoError(t, f.sessions.Do(second, func(s *checkout.Session) error {
			require.True(t, s.Cart().IsEmpty())
			return nil
		}))
	})
}
