package commands

import (
	"context"
	"log/slog"

	"bindrop/internal/domain/pricing"
	"bindrop/internal/domain/product"
	reqdto "bindrop/internal/handler/dto/request"
	"bindrop/internal/pkg/clock"
	"bindrop/internal/pkg/ident"
)

type CreateListingResult struct {
	ProductID string
}

type ListingCommands interface {
	CreateListing(ctx context.Context, req reqdto.CreateListingRequest) (*CreateListingResult, error)
	SuggestListing(ctx context.Context, imageRef string) (*ListingSuggestion, error)
}

type listingCommandsImpl struct {
	catalog  CatalogStore
	provider SuggestionProvider
	gen      ident.Generator
	clock    clock.Clock
}

func NewListingCommands(
	catalog CatalogStore,
	provider SuggestionProvider,
	gen ident.Generator,
	clock clock.Clock,
) ListingCommands {
	return &listingCommandsImpl{
		catalog:  catalog,
		provider: provider,
		gen:      gen,
		clock:    clock,
	}
}

func (l *listingCommandsImpl) CreateListing(_ context.Context, req reqdto.CreateListingRequest) (*CreateListingResult, error) {
	price, err := pricing.NewMoney(req.OriginalPrice)
	if err != nil {
		return nil, err
	}

	p, err := product.New(
		l.gen,
		req.Name,
		req.Description,
		req.Category,
		req.ImageURL,
		req.SellerName,
		price,
		l.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := l.catalog.Add(p); err != nil {
		return nil, err
	}
	return &CreateListingResult{ProductID: p.ID()}, nil
}

// SuggestListing asks the external collaborator for pre-filled listing
// fields. A collaborator failure degrades to the blank suggestion so the
// seller can still complete manual entry; it is never surfaced as fatal.
func (l *listingCommandsImpl) SuggestListing(ctx context.Context, imageRef string) (*ListingSuggestion, error) {
	suggestion, err := l.provider.Suggest(ctx, imageRef)
	if err != nil {
		slog.WarnContext(ctx, "listing suggestion unavailable, falling back to manual entry", "error", err)
		return &ListingSuggestion{}, nil
	}
	return suggestion, nil
}
