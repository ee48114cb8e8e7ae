package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bindrop/internal/pkg/config"
	"bindrop/internal/pkg/errs"
	"bindrop/internal/usecase/commands"
)

// Client talks to the external listing-suggestion collaborator over JSON.
// The image reference is opaque to us; the collaborator decides what to do
// with it. All failures map onto ErrSuggestionUnavailable so the command
// layer can degrade to manual entry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.SuggestConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type suggestRequest struct {
	ImageRef string `json:"image_ref"`
}

func (c *Client) Suggest(ctx context.Context, imageRef string) (*commands.ListingSuggestion, error) {
	if c.baseURL == "" {
		return nil, errs.Wrap(errs.ErrSuggestionUnavailable, "no suggestion collaborator configured")
	}

	body, err := json.Marshal(suggestRequest{ImageRef: imageRef})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSuggestionUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/listing-suggestions", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSuggestionUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSuggestionUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(
			fmt.Errorf("suggestion collaborator responded %d", resp.StatusCode),
			errs.ErrSuggestionUnavailable,
		)
	}

	var suggestion commands.ListingSuggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestion); err != nil {
		return nil, errs.Mark(err, errs.ErrSuggestionUnavailable)
	}
	return &suggestion, nil
}
