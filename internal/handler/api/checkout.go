package api

import (
	"net/http"

	reqdto "bindrop/internal/handler/dto/request"
	resdto "bindrop/internal/handler/dto/response"
	"bindrop/internal/handler/httperr"
	"bindrop/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Open session
// @Description Open an independent cart + checkout session
// @Tags checkout
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Router /sessions [post]
func (h *CheckoutHandler) OpenSession(c *gin.Context) {
	id, err := h.cmds.OpenSession(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Open session failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.SessionResponse{ID: id})
}

// @Summary Begin checkout
// @Description Reserve the cart for a checkout attempt; requires a non-empty cart
// @Tags checkout
// @Param sessionId path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{sessionId}/checkout [post]
func (h *CheckoutHandler) Begin(c *gin.Context) {
	if err := h.cmds.Begin(c.Request.Context(), c.Param("sessionId")); err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Begin checkout failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm payment
// @Description Consume the payment collaborator's signal; success records a transaction and empties the cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Confirm payment request"
// @Success 201 {object} resdto.ConfirmPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{sessionId}/checkout/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ConfirmPayment(c.Request.Context(), c.Param("sessionId"), *req.Approved)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Confirm payment failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromConfirmPayment(result))
}

// @Summary Cancel checkout
// @Description Abandon the checkout attempt and return to shopping; the cart is kept
// @Tags checkout
// @Param sessionId path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{sessionId}/checkout/cancel [post]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	if err := h.cmds.Cancel(c.Request.Context(), c.Param("sessionId")); err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Cancel checkout failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
