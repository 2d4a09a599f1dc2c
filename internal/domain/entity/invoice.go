package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/zatca-bridge/invoicing-api/internal/domain/enum"
	"gorm.io/gorm"
)

// SalesInvoice represents a sales invoice document. Name is assigned from a
// numbering series at creation and is the external identifier in the API.
type SalesInvoice struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name             string             `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CompanyID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"company_id"`
	CustomerID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	PostingDate      time.Time          `gorm:"type:date;not null" json:"posting_date"`
	DueDate          *time.Time         `gorm:"type:date" json:"due_date,omitempty"`
	Currency         string             `gorm:"size:10;not null" json:"currency"`
	Status           enum.InvoiceStatus `gorm:"default:0" json:"status"`
	QRCode           string             `gorm:"type:text" json:"qr_code,omitempty"` // opaque ZATCA payload, stored verbatim
	AdditionalFields JSONMap            `gorm:"type:text" json:"additional_fields,omitempty"`
	NetTotal         int64              `gorm:"default:0" json:"-"` // Stored in halalas, excluded from JSON
	TotalTaxes       int64              `gorm:"default:0" json:"-"` // Stored in halalas, excluded from JSON
	GrandTotal       int64              `gorm:"default:0" json:"-"` // Stored in halalas, excluded from JSON
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`

	// Relationships
	Company  Company            `gorm:"foreignKey:CompanyID" json:"-"`
	Customer Customer           `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []SalesInvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert halalas to decimal for API responses
func (inv SalesInvoice) MarshalJSON() ([]byte, error) {
	type Alias SalesInvoice
	return json.Marshal(&struct {
		Alias
		Status     string  `json:"status"`
		NetTotal   float64 `json:"net_total"`
		TotalTaxes float64 `json:"total_taxes"`
		GrandTotal float64 `json:"grand_total"`
	}{
		Alias:      Alias(inv),
		Status:     inv.Status.String(),
		NetTotal:   float64(inv.NetTotal) / 100,
		TotalTaxes: float64(inv.TotalTaxes) / 100,
		GrandTotal: float64(inv.GrandTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sales invoice
func (inv *SalesInvoice) BeforeCreate(tx *gorm.DB) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesInvoice model
func (SalesInvoice) TableName() string {
	return "sales_invoices"
}

// GetGrandTotalDecimal returns the grand total as a decimal
func (inv *SalesInvoice) GetGrandTotalDecimal() float64 {
	return float64(inv.GrandTotal) / 100
}

// SalesInvoiceItem represents one line of a sales invoice
type SalesInvoiceItem struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID          uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ItemCode           string    `gorm:"size:100;not null" json:"item_code"`
	ItemName           string    `gorm:"size:255" json:"item_name"`
	Description        string    `gorm:"type:text" json:"description"`
	Qty                float64   `gorm:"not null" json:"qty"`
	UOM                string    `gorm:"size:50" json:"uom"`
	Rate               int64     `gorm:"not null" json:"-"` // Stored in halalas, excluded from JSON
	DiscountPercentage float64   `gorm:"default:0" json:"discount_percentage"`
	Amount             int64     `gorm:"not null" json:"-"` // Stored in halalas, excluded from JSON
	Warehouse          string    `gorm:"size:255" json:"warehouse"`
	IncomeAccount      string    `gorm:"size:255" json:"income_account"`
	CostCenter         string    `gorm:"size:255" json:"cost_center"`
	CreatedAt          time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert halalas to decimal for API responses
func (li SalesInvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias SalesInvoiceItem
	return json.Marshal(&struct {
		Alias
		Rate   float64 `json:"rate"`
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(li),
		Rate:   float64(li.Rate) / 100,
		Amount: float64(li.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice line
func (li *SalesInvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesInvoiceItem model
func (SalesInvoiceItem) TableName() string {
	return "sales_invoice_items"
}

// NamingSeries is a per-prefix counter for document numbering,
// e.g. prefix "ACC-SINV-2026-" with current 12 names the next
// invoice ACC-SINV-2026-00013.
type NamingSeries struct {
	Prefix    string    `gorm:"size:100;primary_key" json:"prefix"`
	Current   int64     `gorm:"not null;default:0" json:"current"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the NamingSeries model
func (NamingSeries) TableName() string {
	return "naming_series"
}
