package api

import (
	"net/http"

	"bindrop/internal/handler/httperr"
	"bindrop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	q queries.TransactionQueries
}

func NewTransactionHandler(q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{q: q}
}

// @Summary List transactions
// @Description Completed checkouts, newest first
// @Tags transactions
// @Produce json
// @Success 200 {array} queries.TransactionView
// @Failure 500 {object} map[string]string
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	views, err := h.q.ListTransactions(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "List transactions failed", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}
