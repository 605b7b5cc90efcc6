package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jakindah/motorshop-api/internal/application/service"
	"github.com/jakindah/motorshop-api/internal/config"
	"github.com/jakindah/motorshop-api/internal/infrastructure/cache"
	"github.com/jakindah/motorshop-api/internal/infrastructure/database"
	"github.com/jakindah/motorshop-api/internal/infrastructure/repository"
	"github.com/jakindah/motorshop-api/internal/presentation/http/handler"
	"github.com/jakindah/motorshop-api/internal/presentation/http/routes"
	"github.com/jakindah/motorshop-api/pkg/oauth"
	"github.com/jakindah/motorshop-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Optional Redis read cache; nil disables caching
	readCache := cache.NewCache(cfg.Redis)

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	partRepo := repository.NewPartRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleItemRepo := repository.NewSaleItemRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	poRepo := repository.NewPurchaseOrderRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
		SuccessURL:   cfg.OAuth.SuccessURL,
		ErrorURL:     cfg.OAuth.ErrorURL,
	})

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	authService := service.NewAuthService(userRepo, auditService, jwtManager, googleOAuthService)
	settingsService := service.NewSettingsService(settingRepo, auditService)
	inventoryService := service.NewInventoryService(partRepo, alertRepo, auditService, readCache)
	salesService := service.NewSalesService(saleRepo, saleItemRepo, partRepo, settingsService, inventoryService, auditService, readCache)
	vendorService := service.NewVendorService(vendorRepo, auditService)
	purchaseService := service.NewPurchaseService(poRepo, vendorRepo, partRepo, inventoryService, auditService, readCache)
	vendorPortalService := service.NewVendorPortalService(poRepo, userRepo, auditService)
	userService := service.NewUserService(userRepo, vendorRepo, auditService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Sales:     handler.NewSalesHandler(salesService),
		Vendor:    handler.NewVendorHandler(vendorService, vendorPortalService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Audit:     handler.NewAuditHandler(auditService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
