package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zatca-bridge/invoicing-api/internal/config"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/handler"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/middleware"
	"github.com/zatca-bridge/invoicing-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Invoice *handler.InvoiceHandler
	Item    *handler.ItemHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Log        *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerInvoiceRoutes(protected, h)
		registerItemRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/token", h.Auth.Token)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		// The legacy ERP exposed these as whitelisted RPC methods callable
		// with either verb; integrations in the field still use GET.
		invoices.POST("", h.Invoice.CreateSalesInvoice)
		invoices.GET("", h.Invoice.CreateSalesInvoice)
		invoices.POST("/qr-code", h.Invoice.UpdateQRCode)
		invoices.GET("/qr-code", h.Invoice.UpdateQRCode)
		invoices.GET("/:name", middleware.RequirePermission("read-invoices"), h.Invoice.GetInvoice)
	}
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		items.POST("", middleware.RequirePermission("create-items"), h.Item.CreateItem)
		items.GET("/:code", h.Item.GetItem)
	}

	protected.GET("/tax-templates", h.Item.ListTaxTemplates)
	protected.GET("/tax-categories", h.Item.ListTaxCategories)
	protected.GET("/item-groups", h.Item.ListItemGroups)
}
