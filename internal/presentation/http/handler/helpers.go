package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetClientID extracts the authenticated client ID from the Gin context
func GetClientID(c *gin.Context) *uuid.UUID {
	clientIDVal, exists := c.Get("client_id")
	if !exists {
		return nil
	}
	clientID, ok := clientIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &clientID
}

// GetClientName extracts the authenticated client name from the Gin context
func GetClientName(c *gin.Context) string {
	name, exists := c.Get("client_name")
	if !exists {
		return ""
	}
	return name.(string)
}

// GetClientPermissions extracts the client permissions from the Gin context
func GetClientPermissions(c *gin.Context) []string {
	permissions, exists := c.Get("client_permissions")
	if !exists {
		return nil
	}
	return permissions.([]string)
}

// HasPermission checks whether the authenticated client holds a permission
func HasPermission(c *gin.Context, permission string) bool {
	for _, p := range GetClientPermissions(c) {
		if p == permission {
			return true
		}
	}
	return false
}
