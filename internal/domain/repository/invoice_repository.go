package repository

import (
	"context"

	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	"github.com/zatca-bridge/invoicing-api/internal/domain/enum"
)

// InvoiceRepository defines the interface for sales invoice data operations
type InvoiceRepository interface {
	// Create inserts an invoice together with its line items
	Create(ctx context.Context, invoice *entity.SalesInvoice) error
	// GetByName returns the invoice with its lines preloaded, or nil when absent
	GetByName(ctx context.Context, name string) (*entity.SalesInvoice, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// SetStatus transitions the named invoice to the given status
	SetStatus(ctx context.Context, name string, status enum.InvoiceStatus) error
	// UpdateQRCode overwrites the opaque QR field of the named invoice.
	// Returns false when no such invoice exists.
	UpdateQRCode(ctx context.Context, name string, qrCode string) (bool, error)
}

// NamingSeriesRepository hands out document numbers from a named series
type NamingSeriesRepository interface {
	// Next atomically increments the counter for prefix and returns the new
	// value. The row is created on first use.
	Next(ctx context.Context, prefix string) (int64, error)
}
