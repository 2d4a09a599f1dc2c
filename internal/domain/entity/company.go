package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents a company that invoices are issued for
type Company struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name                 string    `gorm:"size:255;unique;not null" json:"name"`
	Abbr                 string    `gorm:"size:10" json:"abbr"`
	DefaultCurrency      string    `gorm:"size:10;not null;default:SAR" json:"default_currency"`
	Country              string    `gorm:"size:100" json:"country"`
	VATPercent           int       `gorm:"default:15" json:"vat_percent"`
	DefaultIncomeAccount string    `gorm:"size:255" json:"default_income_account"`
	DefaultCostCenter    string    `gorm:"size:255" json:"default_cost_center"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	// Relationships
	Warehouses []Warehouse `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}
