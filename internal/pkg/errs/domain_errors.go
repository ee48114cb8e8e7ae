package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog / ledger errors
	ErrDuplicateID     = errors.New("duplicate id")
	ErrProductNotFound = errors.New("product not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Listing suggestion errors
	ErrSuggestionUnavailable = errors.New("listing suggestion unavailable")
)
