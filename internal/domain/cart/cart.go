package cart

import (
	"time"

	"bindrop/internal/domain/pricing"
	"bindrop/internal/domain/product"

	"github.com/shopspring/decimal"
)

// Item is a line in the cart: the listing fields plus the price frozen at
// the moment of addition. The snapshot is never recomputed; the buyer pays
// the add-time price even if the listing has since decayed further.
type Item struct {
	ProductID       string
	Name            string
	Description     string
	Category        string
	ImageURL        string
	SellerName      string
	OriginalPrice   decimal.Decimal
	PriceAtAddition decimal.Decimal
	AddedAt         time.Time
}

// Cart is the ordered line-item sequence of one checkout session. Adding
// the same product twice yields two independent lines; there is no
// quantity concept.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) Add(p *product.Product, priceAtAddition pricing.Money, now time.Time) Item {
	item := Item{
		ProductID:       p.ID(),
		Name:            p.Name(),
		Description:     p.Description(),
		Category:        p.Category(),
		ImageURL:        p.ImageURL(),
		SellerName:      p.SellerName(),
		OriginalPrice:   p.OriginalPrice().Amount(),
		PriceAtAddition: priceAtAddition.Amount(),
		AddedAt:         now,
	}
	c.items = append(c.items, item)
	return item
}

// Remove drops the first line matching the product id. A missing id is a
// no-op, not an error.
func (c *Cart) Remove(productID string) {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy; callers never alias the live cart.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.PriceAtAddition)
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}
