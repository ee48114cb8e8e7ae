package pricing

import (
	"time"

	"bindrop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errs.New("original price must be positive")

// DefaultDecayDays is the number of elapsed days after which a listing
// reaches zero: the price drops by 1/7 of the original per day.
const DefaultDecayDays = 7

// Engine maps (original price, listing time, now) to the current price.
// It holds no state besides the decay window and performs no I/O; the
// display layer re-invokes it on its own schedule to keep prices current.
type Engine struct {
	decayDays int64
}

func NewEngine(decayDays int) *Engine {
	if decayDays <= 0 {
		decayDays = DefaultDecayDays
	}
	return &Engine{decayDays: int64(decayDays)}
}

// CurrentPrice applies the linear decay:
//
//	current = original × max(0, 1 − elapsedDays/decayDays)
//
// A non-positive original price is a caller contract violation and is
// rejected rather than clamped.
func (e *Engine) CurrentPrice(original Money, createdAt, now time.Time) (Money, error) {
	if !original.IsPositive() {
		return Money{}, ErrInvalidPrice
	}
	remaining := e.decayDays - int64(e.DayCount(createdAt, now))
	if remaining <= 0 {
		return Money{}, nil
	}
	amount := original.Amount().
		Mul(decimal.NewFromInt(remaining)).
		Div(decimal.NewFromInt(e.decayDays))
	return Money{amount: amount}, nil
}

// DayCount is the elapsed-day figure shown next to a listing. It uses the
// exact floor-division rule of CurrentPrice so the displayed day never
// disagrees with the displayed price.
func (e *Engine) DayCount(createdAt, now time.Time) int {
	if now.Before(createdAt) {
		return 0
	}
	return int(now.Sub(createdAt) / (24 * time.Hour))
}

func (e *Engine) DecayDays() int {
	return int(e.decayDays)
}
