package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemGroup classifies items. Group nodes cannot hold items directly.
type ItemGroup struct {
	Name            string `gorm:"size:100;primary_key" json:"name"`
	ParentItemGroup string `gorm:"size:100" json:"parent_item_group"`
	IsGroup         bool   `gorm:"default:false" json:"is_group"`
}

// TableName returns the table name for the ItemGroup model
func (ItemGroup) TableName() string {
	return "item_groups"
}

// Territory is a customer territory lookup entry
type Territory struct {
	Name string `gorm:"size:100;primary_key" json:"name"`
}

// TableName returns the table name for the Territory model
func (Territory) TableName() string {
	return "territories"
}

// CustomerGroup is a customer group lookup entry
type CustomerGroup struct {
	Name string `gorm:"size:100;primary_key" json:"name"`
}

// TableName returns the table name for the CustomerGroup model
func (CustomerGroup) TableName() string {
	return "customer_groups"
}

// TaxCategory is a tax category lookup entry
type TaxCategory struct {
	Name     string `gorm:"size:100;primary_key" json:"name"`
	Title    string `gorm:"size:255" json:"title"`
	Disabled bool   `gorm:"default:false" json:"disabled"`
}

// TableName returns the table name for the TaxCategory model
func (TaxCategory) TableName() string {
	return "tax_categories"
}

// ItemTaxTemplate maps a named tax template to a company and a rate
type ItemTaxTemplate struct {
	Name      string     `gorm:"size:255;primary_key" json:"name"`
	Title     string     `gorm:"size:255" json:"title"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Rate      float64    `gorm:"default:0" json:"rate"`
}

// TableName returns the table name for the ItemTaxTemplate model
func (ItemTaxTemplate) TableName() string {
	return "item_tax_templates"
}

// Warehouse represents a stock location belonging to a company
type Warehouse struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	IsGroup   bool      `gorm:"default:false" json:"is_group"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new warehouse
func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Warehouse model
func (Warehouse) TableName() string {
	return "warehouses"
}
