package database

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/zatca-bridge/invoicing-api/internal/config"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("Connected to PostgreSQL database", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Master data
		&entity.Company{},
		&entity.Warehouse{},
		&entity.ItemGroup{},
		&entity.Territory{},
		&entity.CustomerGroup{},
		&entity.TaxCategory{},
		&entity.ItemTaxTemplate{},

		// Item master
		&entity.Item{},
		&entity.ItemDefault{},
		&entity.ItemTax{},

		// Parties
		&entity.Customer{},
		&entity.CustomerIdentifier{},
		&entity.Address{},

		// Documents
		&entity.SalesInvoice{},
		&entity.SalesInvoiceItem{},
		&entity.NamingSeries{},

		// System
		&entity.APIClient{},
	)
}

// SeedDefaultData seeds the lookup tables and, when configured, a default
// integration API client.
func SeedDefaultData(db *gorm.DB, log *zap.Logger) error {
	itemGroups := []entity.ItemGroup{
		{Name: "All Item Groups", IsGroup: true},
		{Name: "Products", ParentItemGroup: "All Item Groups"},
		{Name: "Services", ParentItemGroup: "All Item Groups"},
	}
	for i := range itemGroups {
		var existing entity.ItemGroup
		if err := db.Where("name = ?", itemGroups[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&itemGroups[i]).Error; err != nil {
				log.Warn("failed to seed item group", zap.String("name", itemGroups[i].Name), zap.Error(err))
			}
		}
	}

	territories := []entity.Territory{{Name: "All Territories"}, {Name: "Saudi Arabia"}}
	for i := range territories {
		var existing entity.Territory
		if err := db.Where("name = ?", territories[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&territories[i]).Error; err != nil {
				log.Warn("failed to seed territory", zap.String("name", territories[i].Name), zap.Error(err))
			}
		}
	}

	customerGroups := []entity.CustomerGroup{{Name: "Commercial"}, {Name: "Individual"}, {Name: "Government"}}
	for i := range customerGroups {
		var existing entity.CustomerGroup
		if err := db.Where("name = ?", customerGroups[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&customerGroups[i]).Error; err != nil {
				log.Warn("failed to seed customer group", zap.String("name", customerGroups[i].Name), zap.Error(err))
			}
		}
	}

	taxCategories := []entity.TaxCategory{
		{Name: "VAT-GSS", Title: "VAT GCC Standard Supplies"},
		{Name: "VAT-ZR", Title: "VAT Zero Rated"},
	}
	for i := range taxCategories {
		var existing entity.TaxCategory
		if err := db.Where("name = ?", taxCategories[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&taxCategories[i]).Error; err != nil {
				log.Warn("failed to seed tax category", zap.String("name", taxCategories[i].Name), zap.Error(err))
			}
		}
	}

	// Seed the integration client only when credentials are configured
	keyID := viper.GetString("API_CLIENT_KEY")
	secret := viper.GetString("API_CLIENT_SECRET")
	if keyID != "" && secret != "" {
		var existing entity.APIClient
		if err := db.Where("key_id = ?", keyID).First(&existing).Error; err != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash API client secret: %w", err)
			}
			client := entity.APIClient{
				Name:        "Default Integration",
				KeyID:       keyID,
				SecretHash:  string(hash),
				Permissions: "create-invoices,create-items,read-invoices",
			}
			if err := db.Create(&client).Error; err != nil {
				log.Warn("failed to seed API client", zap.Error(err))
			} else {
				log.Info("Seeded default API client", zap.String("key_id", keyID))
			}
		}
	}

	return nil
}
