package main

import (
	"github.com/gin-gonic/gin"
	"github.com/zatca-bridge/invoicing-api/internal/application/service"
	"github.com/zatca-bridge/invoicing-api/internal/config"
	"github.com/zatca-bridge/invoicing-api/internal/infrastructure/database"
	"github.com/zatca-bridge/invoicing-api/internal/infrastructure/repository"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/handler"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/routes"
	"github.com/zatca-bridge/invoicing-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log := newLogger(cfg.App.Env)
	defer log.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed default data
	if err := database.SeedDefaultData(db, log); err != nil {
		log.Warn("failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	itemRepo := repository.NewItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	seriesRepo := repository.NewNamingSeriesRepository(db)
	masterRepo := repository.NewMasterDataRepository(db)
	clientRepo := repository.NewAPIClientRepository(db)
	uow := repository.NewUnitOfWork(db)

	// Initialize services
	authService := service.NewAuthService(clientRepo, jwtManager, log)
	invoiceService := service.NewInvoiceService(
		companyRepo,
		customerRepo,
		addressRepo,
		itemRepo,
		invoiceRepo,
		seriesRepo,
		masterRepo,
		uow,
		cfg.Invoicing,
		log,
	)
	itemService := service.NewItemService(itemRepo, companyRepo, masterRepo, uow, log)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Invoice: handler.NewInvoiceHandler(invoiceService),
		Item:    handler.NewItemHandler(itemService, cfg.Invoicing),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        log,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env))

	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		log, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return log
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return log
}
