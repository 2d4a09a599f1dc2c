package repository

import (
	"context"

	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	// Create inserts a customer together with its identifier child rows.
	// A unique-key clash on customer_name surfaces as a DuplicateEntryError.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByName returns the customer with the exact given name, or nil when absent
	GetByName(ctx context.Context, name string) (*entity.Customer, error)
}

// AddressRepository defines the interface for address data operations
type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	// GetByTitle returns the address with the given title, or nil when absent
	GetByTitle(ctx context.Context, title string) (*entity.Address, error)
}
