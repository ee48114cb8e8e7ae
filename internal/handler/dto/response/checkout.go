package response

import (
	"bindrop/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type SessionResponse struct {
	ID string `json:"id"`
}

type ConfirmPaymentResponse struct {
	TransactionID string          `json:"transactionId"`
	Total         decimal.Decimal `json:"total"`
}

func FromConfirmPayment(r *commands.ConfirmPaymentResult) ConfirmPaymentResponse {
	return ConfirmPaymentResponse{
		TransactionID: r.TransactionID,
		Total:         r.Total,
	}
}
