package commands

import (
	"context"

	"bindrop/internal/domain/checkout"
	"bindrop/internal/domain/transaction"
	"bindrop/internal/pkg/clock"
	"bindrop/internal/pkg/ident"

	"github.com/shopspring/decimal"
)

type ConfirmPaymentResult struct {
	TransactionID string
	Total         decimal.Decimal
}

type CheckoutCommands interface {
	OpenSession(ctx context.Context) (string, error)
	Begin(ctx context.Context, sessionID string) error
	ConfirmPayment(ctx context.Context, sessionID string, approved bool) (*ConfirmPaymentResult, error)
	Cancel(ctx context.Context, sessionID string) error
}

type checkoutCommandsImpl struct {
	sessions SessionStore
	ledger   LedgerStore
	gen      ident.Generator
	clock    clock.Clock
}

func NewCheckoutCommands(
	sessions SessionStore,
	ledger LedgerStore,
	gen ident.Generator,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		sessions: sessions,
		ledger:   ledger,
		gen:      gen,
		clock:    clock,
	}
}

func (c *checkoutCommandsImpl) OpenSession(_ context.Context) (string, error) {
	sess := checkout.NewSession(c.gen, c.clock.Now())
	if err := c.sessions.Put(sess); err != nil {
		return "", err
	}
	return sess.ID(), nil
}

func (c *checkoutCommandsImpl) Begin(_ context.Context, sessionID string) error {
	return c.sessions.Do(sessionID, func(s *checkout.Session) error {
		return s.Begin()
	})
}

// ConfirmPayment turns the payment collaborator's success signal into a
// ledger entry. The transaction snapshots the cart as it stands at
// confirmation time; the session resets for the next purchase.
func (c *checkoutCommandsImpl) ConfirmPayment(_ context.Context, sessionID string, approved bool) (*ConfirmPaymentResult, error) {
	var result *ConfirmPaymentResult
	err := c.sessions.Do(sessionID, func(s *checkout.Session) error {
		items, total, err := s.Confirm(approved)
		if err != nil {
			return err
		}

		tx, err := transaction.New(c.gen, c.clock.Now(), items, total)
		if err != nil {
			return err
		}
		if err := c.ledger.Record(tx); err != nil {
			return err
		}

		result = &ConfirmPaymentResult{TransactionID: tx.ID(), Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *checkoutCommandsImpl) Cancel(_ context.Context, sessionID string) error {
	return c.sessions.Do(sessionID, func(s *checkout.Session) error {
		return s.Cancel()
	})
}
