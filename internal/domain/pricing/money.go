package pricing

import (
	"bindrop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errs.New("money amount cannot be negative")

// Money is a non-negative decimal amount in the shop currency.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func MoneyFromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) String() string {
	return m.amount.String()
}
