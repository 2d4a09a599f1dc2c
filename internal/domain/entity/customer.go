package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents an invoiced party. CustomerName is the natural key:
// lookups match on it exactly, and the unique index backs the duplicate
// recovery when two requests create the same customer concurrently.
type Customer struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName          string     `gorm:"size:255;uniqueIndex;not null" json:"customer_name"`
	CustomerType          string     `gorm:"size:50;not null;default:Company" json:"customer_type"`
	CustomerGroup         string     `gorm:"size:100;not null" json:"customer_group"`
	Territory             string     `gorm:"size:100;not null" json:"territory"`
	Email                 *string    `gorm:"size:255" json:"email,omitempty"`
	Mobile                *string    `gorm:"size:50" json:"mobile,omitempty"`
	VATRegistrationNumber *string    `gorm:"size:50" json:"vat_registration_number,omitempty"`
	DefaultCompanyID      *uuid.UUID `gorm:"type:uuid;index" json:"default_company_id,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`

	// Relationships
	Identifiers []CustomerIdentifier `gorm:"foreignKey:CustomerID" json:"identifiers,omitempty"`
	Addresses   []Address            `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerIdentifier is a typed additional-identifier row on a customer,
// e.g. {type_name: "Commercial Registration Number", type_code: "CRN"}
type CustomerIdentifier struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	TypeName   string    `gorm:"size:100;not null" json:"type_name"`
	TypeCode   string    `gorm:"size:20" json:"type_code"`
	Value      string    `gorm:"size:100;not null" json:"value"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new identifier row
func (ci *CustomerIdentifier) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CustomerIdentifier model
func (CustomerIdentifier) TableName() string {
	return "customer_identifiers"
}
