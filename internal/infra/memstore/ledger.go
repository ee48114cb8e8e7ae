package memstore

import (
	"sync"

	"bindrop/internal/domain/transaction"
	"bindrop/internal/pkg/errs"
)

// Ledger is the append-only transaction log, newest first. It is the only
// structure shared between sessions, so appends are mutex-serialized.
type Ledger struct {
	mu  sync.RWMutex
	txs []*transaction.Transaction
	ids map[string]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{ids: make(map[string]struct{})}
}

func (l *Ledger) Record(tx *transaction.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.ids[tx.ID()]; ok {
		return errs.Wrap(errs.ErrDuplicateID, "transaction "+tx.ID())
	}
	l.ids[tx.ID()] = struct{}{}
	l.txs = append([]*transaction.Transaction{tx}, l.txs...)
	return nil
}

func (l *Ledger) All() []*transaction.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*transaction.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}
