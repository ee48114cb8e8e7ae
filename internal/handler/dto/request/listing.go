package request

import "github.com/shopspring/decimal"

type CreateListingRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Category      string          `json:"category" binding:"required"`
	ImageURL      string          `json:"imageUrl"`
	SellerName    string          `json:"sellerName"`
	OriginalPrice decimal.Decimal `json:"originalPrice" binding:"required"`
}

type SuggestListingRequest struct {
	ImageRef string `json:"imageRef" binding:"required"`
}
