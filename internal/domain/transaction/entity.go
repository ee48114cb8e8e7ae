package transaction

import (
	"time"

	"bindrop/internal/domain/cart"
	"bindrop/internal/pkg/errs"
	"bindrop/internal/pkg/ident"

	"github.com/shopspring/decimal"
)

var ErrNoItems = errs.New("transaction requires at least one item")

// Transaction is the immutable record of one completed checkout. Items are
// the cart contents at confirmation time, copied so the record never
// aliases a live cart.
type Transaction struct {
	id    string
	date  time.Time
	items []cart.Item
	total decimal.Decimal
}

func New(gen ident.Generator, date time.Time, items []cart.Item, total decimal.Decimal) (*Transaction, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	snapshot := make([]cart.Item, len(items))
	copy(snapshot, items)
	return &Transaction{
		id:    gen.NewID(),
		date:  date,
		items: snapshot,
		total: total,
	}, nil
}

func (t *Transaction) ID() string           { return t.id }
func (t *Transaction) Date() time.Time      { return t.date }
func (t *Transaction) Total() decimal.Decimal { return t.total }

// Items returns a copy; the record itself stays immutable.
func (t *Transaction) Items() []cart.Item {
	items := make([]cart.Item, len(t.items))
	copy(items, t.items)
	return items
}
