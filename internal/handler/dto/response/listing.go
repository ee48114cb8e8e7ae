package response

import (
	"bindrop/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateListingResponse struct {
	ID string `json:"id"`
}

type SuggestionResponse struct {
	Name           string          `json:"name"`
	SuggestedPrice decimal.Decimal `json:"suggestedPrice"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
}

func FromSuggestion(s *commands.ListingSuggestion) SuggestionResponse {
	return SuggestionResponse{
		Name:           s.Name,
		SuggestedPrice: s.SuggestedPrice,
		Description:    s.Description,
		Category:       s.Category,
	}
}
