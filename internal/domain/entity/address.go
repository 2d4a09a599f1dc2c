package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressTypeBilling is the only address type this API creates
const AddressTypeBilling = "Billing"

// Address is a billing address owned by exactly one customer. It is created
// only alongside a newly created customer, never attached to a pre-existing
// one, and never mutated afterwards.
type Address struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Title          string    `gorm:"size:255;uniqueIndex;not null" json:"title"`
	AddressType    string    `gorm:"size:50;not null" json:"address_type"`
	Line1          string    `gorm:"size:255" json:"address_line1"`
	Line2          string    `gorm:"size:255" json:"address_line2"`
	BuildingNumber string    `gorm:"size:50" json:"building_number"`
	Area           string    `gorm:"size:100" json:"area"`
	City           string    `gorm:"size:100" json:"city"`
	County         string    `gorm:"size:100" json:"county"`
	State          string    `gorm:"size:100" json:"state"`
	Pincode        string    `gorm:"size:20" json:"pincode"`
	Country        string    `gorm:"size:100" json:"country"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new address
func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Address model
func (Address) TableName() string {
	return "addresses"
}
