package request

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
