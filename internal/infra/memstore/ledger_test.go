//go:build unit

package memstore_test

import (
	"testing"

	"bindrop/internal/domain/cart"
	"bindrop/internal/domain/transaction"
	"bindrop/internal/infra/memstore"
	"bindrop/internal/pkg/errs"
	"bindrop/internal/pkg/ident"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(t *testing.T, gen ident.Generator) *transaction.Transaction {
	t.Helper()
	items := []cart.Item{{ProductID: "p-1", Name: "AirPods", PriceAtAddition: decimal.NewFromInt(400)}}
	record, err := transaction.New(gen, now, items, decimal.NewFromInt(400))
	require.NoError(t, err)
	return record
}

func TestLedger(t *testing.T) {
	t.Run("newest first, append only", func(t *testing.T) {
		gen := ident.NewSequenceGenerator("tx")
		l := memstore.NewLedger()

		first := tx(t, gen)
		second := tx(t, gen)
		require.NoError(t, l.Record(first))
		require.NoError(t, l.Record(second))

		all := l.All()
		require.Len(t, all, 2)
		assert.Equal(t, second.ID(), all[0].ID())
		assert.Equal(t, first.ID(), all[1].ID())
	})

	t.Run("duplicate transaction id is rejected", func(t *testing.T) {
		gen := ident.NewSequenceGenerator("tx")
		l := memstore.NewLedger()
		record := tx(t, gen)
		require.NoError(t, l.Record(record))
		require.ErrorIs(t, l.Record(record), errs.ErrDuplicateID)
	})

	t.Run("all returns a snapshot", func(t *testing.T) {
		gen := ident.NewSequenceGenerator("tx")
		l := memstore.NewLedger()
		require.NoError(t, l.Record(tx(t, gen)))

		snapshot := l.All()
		snapshot[0] = nil
		assert.NotNil(t, l.All()[0])
	})
}
