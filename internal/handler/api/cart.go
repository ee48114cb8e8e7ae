package api

import (
	"net/http"

	reqdto "bindrop/internal/handler/dto/request"
	"bindrop/internal/handler/httperr"
	"bindrop/internal/usecase/commands"
	"bindrop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Current cart of a session: line items with snapshot prices and the running total
// @Tags cart
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} queries.CartView
// @Failure 404 {object} map[string]string
// @Router /sessions/{sessionId}/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.q.GetCart(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Get cart failed", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Add cart item
// @Description Add a product as a new line item, freezing its current price
// @Tags cart
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.AddCartItemRequest true "Add cart item request"
// @Success 200 {object} queries.CartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{sessionId}/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	sessionID := c.Param("sessionId")
	if _, err := h.cmds.AddItem(c.Request.Context(), sessionID, req.ProductID); err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Add cart item failed", nil)
		return
	}
	h.respondWithCart(c, sessionID)
}

// @Summary Remove cart item
// @Description Remove the first line item matching the product id; absent ids are a no-op
// @Tags cart
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} queries.CartView
// @Failure 404 {object} map[string]string
// @Router /sessions/{sessionId}/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if err := h.cmds.RemoveItem(c.Request.Context(), sessionID, c.Param("productId")); err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Remove cart item failed", nil)
		return
	}
	h.respondWithCart(c, sessionID)
}

func (h *CartHandler) respondWithCart(c *gin.Context, sessionID string) {
	view, err := h.q.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}
