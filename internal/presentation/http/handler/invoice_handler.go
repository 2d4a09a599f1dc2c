package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zatca-bridge/invoicing-api/internal/application/service"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/dto/request"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/dto/response"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
)

// InvoiceHandler handles the sales invoice endpoints
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// bindCreateInvoice reads the payload from the JSON body, or from query
// parameters when the client used GET. The legacy ERP endpoint accepted both
// and existing integrations still send both.
func bindCreateInvoice(c *gin.Context) (*request.CreateInvoiceRequest, error) {
	var req request.CreateInvoiceRequest
	if c.Request.Method == http.MethodGet {
		if err := c.ShouldBindQuery(&req); err != nil {
			return nil, apperror.NewValidationError("Invalid request parameters: " + err.Error())
		}
		if raw := c.Query("items"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Items); err != nil {
				return nil, apperror.NewValidationError(err.Error())
			}
		}
		if raw := c.Query("additional_fields"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.AdditionalFields); err != nil {
				return nil, apperror.NewValidationError(err.Error())
			}
		}
		return &req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperror.NewValidationError("Invalid request payload: " + err.Error())
	}
	return &req, nil
}

// CreateSalesInvoice handles POST and GET /api/v1/invoices
func (h *InvoiceHandler) CreateSalesInvoice(c *gin.Context) {
	// Checked in-handler rather than via RequirePermission: failures on this
	// endpoint must use the flat invoice envelope with a null invoice_name.
	if !HasPermission(c, "create-invoices") {
		response.InvoiceError(c, apperror.NewPermissionError("You do not have permission to create invoices"))
		return
	}

	req, err := bindCreateInvoice(c)
	if err != nil {
		response.InvoiceError(c, err)
		return
	}

	postingDate, err := request.ParseDate(req.PostingDate)
	if err != nil {
		response.InvoiceError(c, apperror.NewValidationError("Invalid 'posting_date': "+err.Error()))
		return
	}
	dueDate, err := request.ParseDate(req.DueDate)
	if err != nil {
		response.InvoiceError(c, apperror.NewValidationError("Invalid 'due_date': "+err.Error()))
		return
	}

	items := make([]service.InvoiceItemInput, len(req.Items))
	for i, line := range req.Items {
		items[i] = service.InvoiceItemInput{
			ItemCode:           strings.TrimSpace(line.ItemCode),
			Qty:                line.Qty,
			Rate:               line.Rate,
			UOM:                line.UOM,
			Warehouse:          line.Warehouse,
			Description:        line.Description,
			DiscountPercentage: line.DiscountPercentage,
			IncomeAccount:      line.IncomeAccount,
			CostCenter:         line.CostCenter,
		}
	}

	input := &service.CreateInvoiceInput{
		Company:                      strings.TrimSpace(req.Company),
		CustomerName:                 strings.TrimSpace(req.CustomerName),
		Items:                        items,
		CustomerEmail:                req.CustomerEmail,
		CustomerPhone:                req.CustomerPhone,
		CustomerGroup:                req.CustomerGroup,
		CustomerType:                 req.CustomerType,
		Territory:                    req.Territory,
		VATRegistrationNumber:        req.VATRegistrationNumber,
		CommercialRegistrationNumber: req.CommercialRegistrationNumber,
		AddressLine1:                 req.AddressLine1,
		AddressLine2:                 req.AddressLine2,
		BuildingNumber:               req.BuildingNumber,
		Area:                         req.Area,
		City:                         req.City,
		County:                       req.County,
		State:                        req.State,
		Pincode:                      req.Pincode,
		Country:                      req.Country,
		PostingDate:                  postingDate,
		DueDate:                      dueDate,
		Currency:                     req.Currency,
		QRCode:                       req.QRCode,
		SubmitInvoice:                req.SubmitInvoice,
		AdditionalFields:             req.AdditionalFields,
	}

	result, err := h.invoiceService.CreateSalesInvoice(c.Request.Context(), input)
	if err != nil {
		response.InvoiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.InvoiceCreated{
		Success:     true,
		Message:     fmt.Sprintf("Sales Invoice %s created successfully", result.InvoiceName),
		InvoiceName: result.InvoiceName,
		InvoiceURL:  result.InvoiceURL,
		Customer:    result.Customer,
		GrandTotal:  result.GrandTotal,
	})
}

// UpdateQRCode handles POST and GET /api/v1/invoices/qr-code
func (h *InvoiceHandler) UpdateQRCode(c *gin.Context) {
	if !HasPermission(c, "create-invoices") {
		response.InvoiceError(c, apperror.NewPermissionError("You do not have permission to update invoices"))
		return
	}

	var req request.UpdateQRCodeRequest
	if c.Request.Method == http.MethodGet {
		if err := c.ShouldBindQuery(&req); err != nil {
			response.InvoiceError(c, apperror.NewValidationError("Invalid request parameters: "+err.Error()))
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.InvoiceError(c, apperror.NewValidationError("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.invoiceService.UpdateQRCode(c.Request.Context(), req.InvoiceName, req.QRCode); err != nil {
		response.InvoiceError(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("QR code updated successfully for invoice %s", req.InvoiceName), nil)
}

// GetInvoice handles GET /api/v1/invoices/:name
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}
