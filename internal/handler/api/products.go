package api

import (
	"net/http"

	reqdto "bindrop/internal/handler/dto/request"
	resdto "bindrop/internal/handler/dto/response"
	"bindrop/internal/handler/httperr"
	"bindrop/internal/usecase/commands"
	"bindrop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	cmds commands.ListingCommands
	q    queries.CatalogQueries
}

func NewProductHandler(cmds commands.ListingCommands, q queries.CatalogQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary Create listing
// @Description List a second-hand item; its price starts decaying immediately
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.CreateListingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateListing(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Create listing failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateListingResponse{ID: result.ProductID})
}

// @Summary List products
// @Description List products with live decayed prices; re-poll to refresh
// @Tags products
// @Produce json
// @Param category query string false "Category filter (default All)"
// @Success 200 {array} queries.ProductView
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", "All")
	views, err := h.q.ListProducts(c.Request.Context(), category)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "List products failed", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List categories
// @Description Distinct category labels, "All" sentinel first
// @Tags products
// @Produce json
// @Success 200 {array} string
// @Router /products/categories [get]
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.q.Categories(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "List categories failed", nil)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary Suggest listing fields
// @Description Ask the suggestion collaborator to pre-fill a listing from an image reference; degrades to blank fields when unavailable
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.SuggestListingRequest true "Suggest listing request"
// @Success 200 {object} resdto.SuggestionResponse
// @Failure 400 {object} map[string]string
// @Router /listings/suggest [post]
func (h *ProductHandler) Suggest(c *gin.Context) {
	var req reqdto.SuggestListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	suggestion, err := h.cmds.SuggestListing(c.Request.Context(), req.ImageRef)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Suggest listing failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSuggestion(suggestion))
}
