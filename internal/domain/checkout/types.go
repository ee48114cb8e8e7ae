package checkout

type Status string

const (
	// StatusIdle accepts cart mutation and BeginCheckout. Completion and
	// abandonment both collapse back here; there is no terminal state.
	StatusIdle Status = "idle"

	// StatusAwaitingPayment sits between BeginCheckout and the payment
	// collaborator's confirm/cancel signal.
	StatusAwaitingPayment Status = "awaiting_payment"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusIdle, StatusAwaitingPayment:
		return true
	default:
		return false
	}
}
