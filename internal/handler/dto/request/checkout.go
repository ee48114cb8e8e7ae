package request

// Approved is a pointer so that an explicit decline ({"approved": false})
// binds while a missing field is rejected.
type ConfirmPaymentRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
