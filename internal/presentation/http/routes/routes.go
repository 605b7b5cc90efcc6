package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jakindah/motorshop-api/internal/config"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	domainRepo "github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/internal/presentation/http/handler"
	"github.com/jakindah/motorshop-api/internal/presentation/http/middleware"
	"github.com/jakindah/motorshop-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Inventory *handler.InventoryHandler
	Sales     *handler.SalesHandler
	Vendor    *handler.VendorHandler
	Purchase  *handler.PurchaseHandler
	Audit     *handler.AuditHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
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

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	registerInventoryRoutes(protected, h)
	registerSalesRoutes(protected, h, deps)
	registerVendorRoutes(protected, h)
	registerPurchaseRoutes(protected, h)
	registerAdminRoutes(protected, h)
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	{
		// Catalog reads are open to every authenticated role; terminals
		// refresh their stock mirror from these.
		inventory.GET("/parts", h.Inventory.ListParts)
		inventory.GET("/parts/search", h.Inventory.SearchParts)
		inventory.GET("/parts/:id", h.Inventory.GetPart)

		manage := inventory.Group("")
		manage.Use(middleware.RequireRole(enum.RoleInventoryManager, enum.RoleShopOwner, enum.RoleSystemAdmin))
		{
			manage.POST("/parts", h.Inventory.CreatePart)
			manage.PUT("/parts/:id", h.Inventory.UpdatePart)
			manage.DELETE("/parts/:id", h.Inventory.DeletePart)
			manage.POST("/parts/:id/add-stock", h.Inventory.AddStock)
			manage.POST("/parts/:id/deduct-stock", h.Inventory.DeductStock)
			manage.GET("/low-stock", h.Inventory.GetLowStockParts)
			manage.GET("/alerts", h.Inventory.ListAlerts)
			manage.PUT("/alerts/:id/acknowledge", h.Inventory.AcknowledgeAlert)
		}
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequireRole(
		enum.RoleSalesExecutive, enum.RoleShopOwner, enum.RoleSystemAdmin, enum.RoleAuditor))
	{
		// Auditors can read but never record
		sales.POST("/record",
			middleware.RequireRole(enum.RoleSalesExecutive, enum.RoleShopOwner, enum.RoleSystemAdmin),
			middleware.IdempotencyRequired(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Sales.RecordSale)

		sales.GET("/summary/daily", h.Sales.DailySummary)
		sales.GET("/history", h.Sales.History)
		sales.GET("/:id", h.Sales.GetSale)
	}
}

func registerVendorRoutes(protected *gin.RouterGroup, h *Handlers) {
	vendors := protected.Group("/vendors")
	vendors.Use(middleware.RequireRole(enum.RoleInventoryManager, enum.RoleShopOwner, enum.RoleSystemAdmin))
	{
		vendors.GET("", h.Vendor.ListVendors)
		vendors.GET("/:id", h.Vendor.GetVendor)
		vendors.POST("", h.Vendor.CreateVendor)
		vendors.PUT("/:id", h.Vendor.UpdateVendor)
		vendors.DELETE("/:id", h.Vendor.DeleteVendor)
	}

	// Vendor portal, restricted to linked vendor accounts
	portal := protected.Group("/vendor-portal")
	portal.Use(middleware.RequireRole(enum.RoleVendor))
	{
		portal.GET("/my-orders", h.Vendor.MyOrders)
		portal.PUT("/orders/:id/ship", h.Vendor.MarkShipped)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	purchases := protected.Group("/purchase-orders")
	purchases.Use(middleware.RequireRole(enum.RoleInventoryManager, enum.RoleShopOwner, enum.RoleSystemAdmin))
	{
		purchases.GET("", h.Purchase.ListOrders)
		purchases.GET("/:id", h.Purchase.GetOrder)
		purchases.POST("", h.Purchase.CreateOrder)
		purchases.PUT("/:id/receive", h.Purchase.ReceiveOrder)
		purchases.PUT("/:id/cancel", h.Purchase.CancelOrder)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Settings: reads are open so terminals can fetch the tax rate
	protected.GET("/settings/:key", h.Settings.Get)

	settings := protected.Group("/settings")
	settings.Use(middleware.RequireRole(enum.RoleShopOwner, enum.RoleSystemAdmin))
	{
		settings.GET("", h.Settings.List)
		settings.PUT("/:key", h.Settings.Update)
	}

	// Audit trail
	audit := protected.Group("/audit")
	audit.Use(middleware.RequireRole(enum.RoleAuditor, enum.RoleShopOwner, enum.RoleSystemAdmin))
	{
		audit.GET("", h.Audit.List)
		audit.GET("/:type/:id", h.Audit.ListByEntity)
	}

	// User administration
	users := protected.Group("/admin/users")
	users.Use(middleware.RequireRole(enum.RoleSystemAdmin))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.POST("", h.User.Create)
		users.PUT("/:id/role", h.User.ChangeRole)
		users.PUT("/:id/reset-password", h.User.ResetPassword)
		users.DELETE("/:id", h.User.Delete)
	}
}
