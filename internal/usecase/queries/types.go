package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models (DTO for read side). Prices are recomputed per query: the
// display layer re-polls on its own schedule, the core holds no timers.
type ProductView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	ImageURL        string          `json:"image_url"`
	SellerName      string          `json:"seller_name"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	DayCount        int             `json:"day_count"`
	DiscountPercent int64           `json:"discount_percent"`
	CreatedAt       time.Time       `json:"created_at"`
}

type CartItemView struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	ImageURL        string          `json:"image_url"`
	SellerName      string          `json:"seller_name"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	PriceAtAddition decimal.Decimal `json:"price_at_addition"`
	AddedAt         time.Time       `json:"added_at"`
}

type CartView struct {
	SessionID string          `json:"session_id"`
	Status    string          `json:"status"`
	Items     []CartItemView  `json:"items"`
	Total     decimal.Decimal `json:"total"`
}

type TransactionView struct {
	ID    string          `json:"id"`
	Date  time.Time       `json:"date"`
	Items []CartItemView  `json:"items"`
	Total decimal.Decimal `json:"total"`
}
