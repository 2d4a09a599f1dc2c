package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item represents an entry in the item master
type Item struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code         string    `gorm:"size:100;uniqueIndex;not null" json:"item_code"`
	Name         string    `gorm:"size:255;not null" json:"item_name"`
	ItemGroup    string    `gorm:"size:100;not null" json:"item_group"`
	Description  string    `gorm:"type:text" json:"description"`
	StockUOM     string    `gorm:"size:50;not null;default:Nos" json:"stock_uom"`
	StandardRate int64     `gorm:"default:0" json:"-"` // Stored in halalas, excluded from JSON
	Disabled     bool      `gorm:"default:false" json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Defaults []ItemDefault `gorm:"foreignKey:ItemID" json:"item_defaults,omitempty"`
	Taxes    []ItemTax     `gorm:"foreignKey:ItemID" json:"taxes,omitempty"`
}

// MarshalJSON custom marshaler to convert halalas to decimal for API responses
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		StandardRate float64 `json:"standard_rate"`
	}{
		Alias:        Alias(i),
		StandardRate: float64(i.StandardRate) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// DefaultFor returns the item's defaults row for a company, if any
func (i *Item) DefaultFor(companyID uuid.UUID) *ItemDefault {
	for idx := range i.Defaults {
		if i.Defaults[idx].CompanyID == companyID {
			return &i.Defaults[idx]
		}
	}
	return nil
}

// TaxRate returns the rate of the item's first tax template, when one is
// attached, as an override of the company VAT rate. The second return is
// false when the item carries no template.
func (i *Item) TaxRate() (float64, bool) {
	if len(i.Taxes) == 0 || i.Taxes[0].Rate == nil {
		return 0, false
	}
	return *i.Taxes[0].Rate, true
}

// ItemDefault holds company-specific defaults for an item
type ItemDefault struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ItemID            uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	CompanyID         uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	DefaultWarehouse  string    `gorm:"size:255" json:"default_warehouse"`
	DefaultPriceList  string    `gorm:"size:255" json:"default_price_list"`
	IncomeAccount     string    `gorm:"size:255" json:"income_account"`
	ExpenseAccount    string    `gorm:"size:255" json:"expense_account"`
	SellingCostCenter string    `gorm:"size:255" json:"selling_cost_center"`
	CreatedAt         time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new item default
func (d *ItemDefault) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ItemDefault model
func (ItemDefault) TableName() string {
	return "item_defaults"
}

// ItemTax links an item to a tax template. Rate is denormalized from the
// template at attach time so invoice pricing needs no extra lookup.
type ItemTax struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ItemID          uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemTaxTemplate string    `gorm:"size:255;not null" json:"item_tax_template"`
	TaxCategory     string    `gorm:"size:255" json:"tax_category"`
	Rate            *float64  `json:"rate,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new item tax row
func (t *ItemTax) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ItemTax model
func (ItemTax) TableName() string {
	return "item_taxes"
}
