package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
)

// CompanyRepository defines the interface for company master-data lookups
type CompanyRepository interface {
	// GetByName returns the company with the given name, or nil when absent
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
}
