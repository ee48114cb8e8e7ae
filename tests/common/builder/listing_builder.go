//go:build unit || e2e

package builder

import (
	"time"

	"bindrop/internal/domain/pricing"
	"bindrop/internal/domain/product"
	reqdto "bindrop/internal/handler/dto/request"
	"bindrop/internal/pkg/ident"
	"bindrop/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ListingBuilder struct {
	Name          string
	Description   string
	Category      string
	ImageURL      string
	SellerName    string
	OriginalPrice decimal.Decimal
	CreatedAt     time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		Name:          "Vintage Camera",
		Description:   "Well preserved, fully functional",
		Category:      "Electronics",
		ImageURL:      "https://img.example.com/camera.jpg",
		SellerName:    "marta",
		OriginalPrice: decimal.NewFromInt(700),
		CreatedAt:     time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ListingBuilder) BuildDomain(gen ident.Generator) (*product.Product, error) {
	price, err := pricing.NewMoney(b.OriginalPrice)
	if err != nil {
		return nil, err
	}
	return product.New(gen, b.Name, b.Description, b.Category, b.ImageURL, b.SellerName, price, b.CreatedAt)
}

func (b *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Name:          b.Name,
		Description:   b.Description,
		Category:      b.Category,
		ImageURL:      b.ImageURL,
		SellerName:    b.SellerName,
		OriginalPrice: b.OriginalPrice,
	}
}

func (b *ListingBuilder) BuildView(id string) *queries.ProductView {
	return &queries.ProductView{
		ID:            id,
		Name:          b.Name,
		Description:   b.Description,
		Category:      b.Category,
		ImageURL:      b.ImageURL,
		SellerName:    b.SellerName,
		OriginalPrice: b.OriginalPrice,
		CurrentPrice:  b.OriginalPrice,
		CreatedAt:     b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ListingBuilder) WithName(name string) *ListingBuilder {
	b.Name = name
	return b
}

func (b *ListingBuilder) WithCategory(category string) *ListingBuilder {
	b.Category = category
	return b
}

func (b *ListingBuilder) WithSellerName(sellerName string) *ListingBuilder {
	b.SellerName = sellerName
	return b
}

func (b *ListingBuilder) WithOriginalPrice(price decimal.Decimal) *ListingBuilder {
	b.OriginalPrice = price
	return b
}

func (b *ListingBuilder) WithCreatedAt(createdAt time.Time) *ListingBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *ListingBuilder) AsFreshListing(now time.Time) *ListingBuilder {
	b.CreatedAt = now
	return b
}

func (b *ListingBuilder) AsListedDaysAgo(now time.Time, days int) *ListingBuilder {
	b.CreatedAt = now.AddDate(0, 0, -days)
	return b
}
