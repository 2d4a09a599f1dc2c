package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zatca-bridge/invoicing-api/internal/application/service"
	"github.com/zatca-bridge/invoicing-api/internal/config"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/dto/request"
	"github.com/zatca-bridge/invoicing-api/internal/presentation/http/dto/response"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
	"github.com/zatca-bridge/invoicing-api/pkg/utils"
)

// ItemHandler handles the item master and reference-data endpoints
type ItemHandler struct {
	itemService *service.ItemService
	cfg         config.InvoicingConfig
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService, cfg config.InvoicingConfig) *ItemHandler {
	return &ItemHandler{itemService: itemService, cfg: cfg}
}

// CreateItem handles POST /api/v1/items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewValidationError("Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		ItemCode:         req.ItemCode,
		ItemName:         req.ItemName,
		ItemGroup:        req.ItemGroup,
		Description:      req.Description,
		StockUOM:         req.StockUOM,
		StandardRate:     req.StandardRate,
		Company:          req.Company,
		DefaultWarehouse: req.DefaultWarehouse,
		IncomeAccount:    req.IncomeAccount,
		ExpenseAccount:   req.ExpenseAccount,
		CostCenter:       req.CostCenter,
		ItemTaxTemplate:  req.ItemTaxTemplate,
		TaxCategory:      req.TaxCategory,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ItemCreated{
		Success:  true,
		Message:  fmt.Sprintf("Item %s created successfully", item.Code),
		ItemCode: item.Code,
		ItemName: item.Name,
		ItemURL:  utils.RecordURL(h.cfg.BaseURL, "Item", item.Code),
	})
}

// GetItem handles GET /api/v1/items/:code
func (h *ItemHandler) GetItem(c *gin.Context) {
	item, err := h.itemService.GetItem(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item retrieved successfully", item)
}

// ListTaxTemplates handles GET /api/v1/tax-templates
func (h *ItemHandler) ListTaxTemplates(c *gin.Context) {
	templates, err := h.itemService.ListTaxTemplates(c.Request.Context(), c.Query("company"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tax templates retrieved successfully", templates)
}

// ListTaxCategories handles GET /api/v1/tax-categories
func (h *ItemHandler) ListTaxCategories(c *gin.Context) {
	categories, err := h.itemService.ListTaxCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tax categories retrieved successfully", categories)
}

// ListItemGroups handles GET /api/v1/item-groups
func (h *ItemHandler) ListItemGroups(c *gin.Context) {
	groups, err := h.itemService.ListItemGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item groups retrieved successfully", groups)
}
