package queries

import (
	"context"

	"bindrop/internal/domain/transaction"

	"github.com/jinzhu/copier"
)

type LedgerReadStore interface {
	All() []*transaction.Transaction
}

type TransactionQueries interface {
	ListTransactions(ctx context.Context) ([]*TransactionView, error)
}

type transactionQueriesImpl struct {
	ledger LedgerReadStore
}

func NewTransactionQueries(ledger LedgerReadStore) TransactionQueries {
	return &transactionQueriesImpl{ledger: ledger}
}

func (q *transactionQueriesImpl) ListTransactions(_ context.Context) ([]*TransactionView, error) {
	records := q.ledger.All()

	views := make([]*TransactionView, 0, len(records))
	for _, tx := range records {
		items := make([]CartItemView, 0, len(tx.Items()))
		if err := copier.Copy(&items, tx.Items()); err != nil {
			return nil, err
		}
		views = append(views, &TransactionView{
			ID:    tx.ID(),
			Date:  tx.Date(),
			Items: items,
			Total: tx.Total(),
		})
	}
	return views, nil
}
