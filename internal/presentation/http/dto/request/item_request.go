package request

// CreateItemRequest represents the create item payload
type CreateItemRequest struct {
	ItemCode     string  `json:"item_code" form:"item_code"`
	ItemName     string  `json:"item_name" form:"item_name"`
	ItemGroup    string  `json:"item_group" form:"item_group"`
	Description  string  `json:"description" form:"description"`
	StockUOM     string  `json:"stock_uom" form:"stock_uom"`
	StandardRate float64 `json:"standard_rate" form:"standard_rate"`

	Company          string `json:"company" form:"company"`
	DefaultWarehouse string `json:"default_warehouse" form:"default_warehouse"`
	IncomeAccount    string `json:"income_account" form:"income_account"`
	ExpenseAccount   string `json:"expense_account" form:"expense_account"`
	CostCenter       string `json:"cost_center" form:"cost_center"`

	ItemTaxTemplate string `json:"item_tax_template" form:"item_tax_template"`
	TaxCategory     string `json:"tax_category" form:"tax_category"`
}
