package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
)

// APIClientRepository defines the interface for API credential lookups
type APIClientRepository interface {
	// GetByKeyID returns the client with the given key id, or nil when absent
	GetByKeyID(ctx context.Context, keyID string) (*entity.APIClient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.APIClient, error)
}
