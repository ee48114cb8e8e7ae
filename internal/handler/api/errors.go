package api

import (
	"errors"
	"net/http"

	"bindrop/internal/domain/checkout"
	"bindrop/internal/domain/pricing"
	"bindrop/internal/domain/product"
	"bindrop/internal/pkg/errs"
)

// statusFor maps core errors onto the HTTP surface. Anything unrecognized
// is a 500: core errors are never swallowed, only translated.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrProductNotFound),
		errors.Is(err, errs.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, checkout.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, checkout.ErrEmptyCheckout),
		errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, errs.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, pricing.ErrInvalidPrice),
		errors.Is(err, pricing.ErrNegativeAmount),
		errors.Is(err, product.ErrEmptyName),
		errors.Is(err, product.ErrEmptyCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
