//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"bindrop/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listedAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func TestCurrentPrice(t *testing.T) {
	engine := pricing.NewEngine(7)

	t.Run("no discount on listing day", func(t *testing.T) {
		original := pricing.MoneyFromInt(700)

		got, err := engine.CurrentPrice(original, listedAt, listedAt)
		require.NoError(t, err)
		assert.True(t, got.Equal(original), "got %s", got)
	})

	t.Run("drops by one seventh per elapsed day", func(t *testing.T) {
		original := pricing.MoneyFromInt(700)

		got, err := engine.CurrentPrice(original, listedAt, listedAt.Add(3*24*time.Hour))
		require.NoError(t, err)
		assert.True(t, got.Equal(pricing.MoneyFromInt(400)), "got %s", got)
	})

	t.Run("floors at zero from day seven on", func(t *testing.T) {
		original := pricing.MoneyFromInt(700)

		for _, days := range []int{7, 8, 30, 365} {
			got, err := engine.CurrentPrice(original, listedAt, listedAt.Add(time.Duration(days)*24*time.Hour))
			require.NoError(t, err)
			assert.True(t, got.IsZero(), "day %d: got %s", days, got)
		}
	})

	t.Run("clock skew before listing clamps to day zero", func(t *testing.T) {
		original := pricing.MoneyFromInt(249)

		got, err := engine.CurrentPrice(original, listedAt, listedAt.Add(-2*time.Hour))
		require.NoError(t, err)
		assert.True(t, got.Equal(original), "got %s", got)
	})

	t.Run("monotonically non-increasing", func(t *testing.T) {
		original := pricing.MoneyFromInt(499)

		prev := original
		for hours := 0; hours <= 9*24; hours += 7 {
			got, err := engine.CurrentPrice(original, listedAt, listedAt.Add(time.Duration(hours)*time.Hour))
			require.NoError(t, err)
			assert.True(t, got.Amount().LessThanOrEqual(prev.Amount()),
				"price rose from %s to %s at hour %d", prev, got, hours)
			prev = got
		}
	})

	t.Run("rejects a zero original price", func(t *testing.T) {
		_, err := engine.CurrentPrice(pricing.Money{}, listedAt, listedAt)
		require.ErrorIs(t, err, pricing.ErrInvalidPrice)
	})
}

func TestDayCount(t *testing.T) {
	engine := pricing.NewEngine(7)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{name: "same instant", elapsed: 0, want: 0},
		{name: "just under a day", elapsed: 24*time.Hour - time.Minute, want: 0},
		{name: "exactly one day", elapsed: 24 * time.Hour, want: 1},
		{name: "three and a half days", elapsed: 84 * time.Hour, want: 3},
		{name: "before listing", elapsed: -time.Hour, want: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, engine.DayCount(listedAt, listedAt.Add(c.elapsed)))
		})
	}
}

// The day badge and the price must never disagree: a price computed for
// "day n" has to coincide with DayCount reporting n at the same instant.
func TestDayCountAgreesWithCurrentPrice(t *testing.T) {
	engine := pricing.NewEngine(7)
	original := pricing.MoneyFromInt(700)

	for hours := 0; hours <= 8*24; hours++ {
		now := listedAt.Add(time.Duration(hours) * time.Hour)
		day := engine.DayCount(listedAt, now)

		remaining := int64(7 - day)
		if remaining < 0 {
			remaining = 0
		}
		want := decimal.NewFromInt(700).
			Mul(decimal.NewFromInt(remaining)).
			Div(decimal.NewFromInt(7))

		got, err := engine.CurrentPrice(original, listedAt, now)
		require.NoError(t, err)
		require.True(t, got.Amount().Equal(want), "hour %d: day %d, got %s want %s", hours, day, got, want)
	}
}

func TestNewMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := pricing.NewMoney(decimal.NewFromInt(-1))
		require.ErrorIs(t, err, pricing.ErrNegativeAmount)
	})

	t.Run("zero value is zero money", func(t *testing.T) {
		var m pricing.Money
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("add", func(t *testing.T) {
		sum := pricing.MoneyFromInt(400).Add(pricing.MoneyFromInt(100))
		assert.True(t, sum.Equal(pricing.MoneyFromInt(500)))
	})
}
