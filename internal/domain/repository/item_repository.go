package repository

import (
	"context"

	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
)

// ItemRepository defines the interface for item master data operations
type ItemRepository interface {
	// Create inserts an item together with its defaults and tax child rows.
	// A unique-key clash on item code surfaces as a DuplicateEntryError.
	Create(ctx context.Context, item *entity.Item) error
	// GetByCode returns the item with defaults and taxes preloaded, or nil when absent
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	// GetByCodes batch-fetches items by code with defaults and taxes preloaded
	GetByCodes(ctx context.Context, codes []string) ([]entity.Item, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
