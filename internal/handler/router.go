package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bindrop/internal/handler/api"
	"bindrop/internal/handler/middleware"
	"bindrop/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	productHandler *api.ProductHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	transactionHandler *api.TransactionHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, productHandler, cartHandler, checkoutHandler, transactionHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	productHandler *api.ProductHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	transactionHandler *api.TransactionHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/products", Handler: productHandler.Create},
			{Method: http.MethodGet, Path: "/products", Handler: productHandler.List},
			{Method: http.MethodGet, Path: "/products/categories", Handler: productHandler.Categories},
			{Method: http.MethodPost, Path: "/listings/suggest", Handler: productHandler.Suggest},
			{Method: http.MethodGet, Path: "/transactions", Handler: transactionHandler.List},
			{Method: http.MethodPost, Path: "/sessions", Handler: checkoutHandler.OpenSession},
		})

		sessions := apiGroup.Group("/sessions/:sessionId")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: cartHandler.Get},
				{Method: http.MethodPost, Path: "/cart/items", Handler: cartHandler.AddItem},
				{Method: http.MethodDelete, Path: "/cart/items/:productId", Handler: cartHandler.RemoveItem},
				{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.Begin},
				{Method: http.MethodPost, Path: "/checkout/confirm", Handler: checkoutHandler.Confirm},
				{Method: http.MethodPost, Path: "/checkout/cancel", Handler: checkoutHandler.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
