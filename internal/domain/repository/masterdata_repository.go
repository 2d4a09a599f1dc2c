package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
)

// MasterDataRepository defines lookups against the seeded reference tables
type MasterDataRepository interface {
	TerritoryExists(ctx context.Context, name string) (bool, error)
	CustomerGroupExists(ctx context.Context, name string) (bool, error)
	ItemGroupExists(ctx context.Context, name string) (bool, error)
	TaxCategoryExists(ctx context.Context, name string) (bool, error)
	// GetTaxTemplate returns the named template, or nil when absent
	GetTaxTemplate(ctx context.Context, name string) (*entity.ItemTaxTemplate, error)
	// ListTaxTemplates lists templates, optionally filtered by company
	ListTaxTemplates(ctx context.Context, companyID *uuid.UUID) ([]entity.ItemTaxTemplate, error)
	// ListTaxCategories lists enabled tax categories
	ListTaxCategories(ctx context.Context) ([]entity.TaxCategory, error)
	ListItemGroups(ctx context.Context) ([]entity.ItemGroup, error)
	// DefaultWarehouse returns the name of the company's first non-group
	// warehouse, or "" when the company has none
	DefaultWarehouse(ctx context.Context, companyID uuid.UUID) (string, error)
}
