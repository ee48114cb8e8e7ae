package product

import (
	"strings"
	"time"

	"bindrop/internal/domain/pricing"
	"bindrop/internal/pkg/errs"
	"bindrop/internal/pkg/ident"
)

// CategoryAll is the sentinel filter that matches every listing. It is
// always the first entry of the distinct-category list.
const CategoryAll = "All"

// DefaultSellerName is used when a seller submits a listing without a name.
const DefaultSellerName = "Anonymous"

var (
	ErrEmptyName     = errs.New("product name is required")
	ErrEmptyCategory = errs.New("product category is required")
)

// Product is an immutable listing. The creation timestamp is the reference
// point for price decay; nothing on the entity ever changes afterwards.
type Product struct {
	id            string
	name          string
	description   string
	category      string
	imageURL      string
	sellerName    string
	originalPrice pricing.Money
	createdAt     time.Time
}

func New(
	gen ident.Generator,
	name, description, category, imageURL, sellerName string,
	originalPrice pricing.Money,
	now time.Time,
) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	category = strings.TrimSpace(category)
	if category == "" || category == CategoryAll {
		return nil, ErrEmptyCategory
	}

	if !originalPrice.IsPositive() {
		return nil, pricing.ErrInvalidPrice
	}

	sellerName = strings.TrimSpace(sellerName)
	if sellerName == "" {
		sellerName = DefaultSellerName
	}

	return &Product{
		id:            gen.NewID(),
		name:          name,
		description:   strings.TrimSpace(description),
		category:      category,
		imageURL:      imageURL,
		sellerName:    sellerName,
		originalPrice: originalPrice,
		createdAt:     now,
	}, nil
}

func (p *Product) ID() string                   { return p.id }
func (p *Product) Name() string                 { return p.name }
func (p *Product) Description() string          { return p.description }
func (p *Product) Category() string             { return p.category }
func (p *Product) ImageURL() string             { return p.imageURL }
func (p *Product) SellerName() string           { return p.sellerName }
func (p *Product) OriginalPrice() pricing.Money { return p.originalPrice }
func (p *Product) CreatedAt() time.Time         { return p.createdAt }
