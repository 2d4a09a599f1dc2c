package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// InvoiceCreated is the flat envelope returned by the invoice creation
// endpoint. Integrations parse these fields by name; do not nest them.
type InvoiceCreated struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	InvoiceName string  `json:"invoice_name"`
	InvoiceURL  string  `json:"invoice_url"`
	Customer    string  `json:"customer"`
	GrandTotal  float64 `json:"grand_total"`
}

// InvoiceFailure is the flat failure envelope of the invoice endpoints.
// InvoiceName serializes as null so clients can probe it unconditionally.
type InvoiceFailure struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	InvoiceName *string `json:"invoice_name"`
}

// ItemCreated is the flat envelope returned by the item creation endpoint
type ItemCreated struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
	ItemURL  string `json:"item_url"`
}

// Success sends a success response
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response using the taxonomy's status code
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Errors,
	})
}

// InvoiceError sends an error in the invoice endpoints' flat envelope
func InvoiceError(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, InvoiceFailure{
		Success:     false,
		Message:     appErr.Message,
		InvoiceName: nil,
	})
}

// ErrorWithCode sends an error response with a specific status code
func ErrorWithCode(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: message,
	})
}

// OK sends a 200 OK response
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// Created sends a 201 Created response
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	ErrorWithCode(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden response
func Forbidden(c *gin.Context, message string) {
	ErrorWithCode(c, http.StatusForbidden, message)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, http.StatusBadRequest, message)
}
