package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// APIClient is an integration credential: a key id plus a bcrypt-hashed
// secret, exchanged for a JWT pair at the token endpoint.
type APIClient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	KeyID       string    `gorm:"size:100;uniqueIndex;not null" json:"key_id"`
	SecretHash  string    `gorm:"size:255;not null" json:"-"`
	Permissions string    `gorm:"size:500" json:"permissions"`
	Disabled    bool      `gorm:"default:false" json:"disabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new API client
func (c *APIClient) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the APIClient model
func (APIClient) TableName() string {
	return "api_clients"
}

// PermissionList splits the stored permissions string
func (c *APIClient) PermissionList() []string {
	if c.Permissions == "" {
		return nil
	}
	parts := strings.Split(c.Permissions, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
