package checkout

import (
	"time"

	"bindrop/internal/domain/cart"
	"bindrop/internal/pkg/errs"
	"bindrop/internal/pkg/ident"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCheckout     = errs.New("checkout requires a non-empty cart")
	ErrInvalidTransition = errs.New("operation not allowed in current checkout state")
	ErrPaymentDeclined   = errs.New("payment declined")
)

// Session owns one cart and its checkout state machine. Sessions are
// independent of each other; the ledger is the only structure they share.
type Session struct {
	id        string
	cart      *cart.Cart
	status    Status
	createdAt time.Time
}

func NewSession(gen ident.Generator, now time.Time) *Session {
	return &Session{
		id:        gen.NewID(),
		cart:      cart.New(),
		status:    StatusIdle,
		createdAt: now,
	}
}

func (s *Session) ID() string           { return s.id }
func (s *Session) Cart() *cart.Cart     { return s.cart }
func (s *Session) Status() Status       { return s.status }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Begin reserves the cart for a checkout attempt. An empty cart is a
// contract violation, not a valid no-op.
func (s *Session) Begin() error {
	if s.status != StatusIdle {
		return ErrInvalidTransition
	}
	if s.cart.IsEmpty() {
		return ErrEmptyCheckout
	}
	s.status = StatusAwaitingPayment
	return nil
}

// Confirm consumes the payment collaborator's success signal. It returns
// the cart contents as they stand at confirmation time (not at Begin time)
// together with their total, empties the cart and resets the session for
// the next purchase. A declined signal leaves the session awaiting payment.
//
// The cart may have been mutated between Begin and Confirm, so emptiness is
// re-validated here: no transaction is ever built from an empty cart.
func (s *Session) Confirm(approved bool) ([]cart.Item, decimal.Decimal, error) {
	if s.status != StatusAwaitingPayment {
		return nil, decimal.Zero, ErrInvalidTransition
	}
	if !approved {
		return nil, decimal.Zero, ErrPaymentDeclined
	}
	if s.cart.IsEmpty() {
		return nil, decimal.Zero, ErrEmptyCheckout
	}

	items := s.cart.Items()
	total := s.cart.Total()
	s.cart.Clear()
	s.status = StatusIdle
	return items, total, nil
}

// Cancel abandons the checkout attempt and returns control to shopping.
// The cart is left untouched.
func (s *Session) Cancel() error {
	if s.status != StatusAwaitingPayment {
		return ErrInvalidTransition
	}
	s.status = StatusIdle
	return nil
}
