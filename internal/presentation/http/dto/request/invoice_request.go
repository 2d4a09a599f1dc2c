package request

import (
	"encoding/json"
	"errors"
	"time"
)

// ItemLine is one requested invoice line as sent by the client
type ItemLine struct {
	ItemCode           string   `json:"item_code"`
	Qty                float64  `json:"qty"`
	Rate               *float64 `json:"rate,omitempty"`
	UOM                string   `json:"uom,omitempty"`
	Warehouse          string   `json:"warehouse,omitempty"`
	Description        string   `json:"description,omitempty"`
	DiscountPercentage float64  `json:"discount_percentage,omitempty"`
	IncomeAccount      string   `json:"income_account,omitempty"`
	CostCenter         string   `json:"cost_center,omitempty"`
}

// ItemLines accepts either a JSON array or a JSON-encoded string holding one.
// Some ERP client libraries double-encode list parameters and the API has to
// take both forms.
type ItemLines []ItemLine

// UnmarshalJSON implements json.Unmarshaler
func (l *ItemLines) UnmarshalJSON(data []byte) error {
	var lines []ItemLine
	if err := json.Unmarshal(data, &lines); err == nil {
		*l = lines
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return errors.New("items must be a JSON array or a JSON-encoded string")
	}
	if err := json.Unmarshal([]byte(encoded), &lines); err != nil {
		return errors.New("items string does not contain a valid JSON array")
	}
	*l = lines
	return nil
}

// StringMap accepts either a JSON object or a JSON-encoded string holding one
type StringMap map[string]interface{}

// UnmarshalJSON implements json.Unmarshaler
func (m *StringMap) UnmarshalJSON(data []byte) error {
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err == nil {
		*m = obj
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return errors.New("value must be a JSON object or a JSON-encoded string")
	}
	if err := json.Unmarshal([]byte(encoded), &obj); err != nil {
		return errors.New("string does not contain a valid JSON object")
	}
	*m = obj
	return nil
}

// CreateInvoiceRequest represents the create sales invoice payload. Every
// field also carries a form tag so the endpoint works with query parameters.
type CreateInvoiceRequest struct {
	Company      string    `json:"company" form:"company"`
	CustomerName string    `json:"customer_name" form:"customer_name"`
	Items        ItemLines `json:"items" form:"-"`

	CustomerEmail                string `json:"customer_email" form:"customer_email"`
	CustomerPhone                string `json:"customer_phone" form:"customer_phone"`
	CustomerGroup                string `json:"customer_group" form:"customer_group"`
	CustomerType                 string `json:"customer_type" form:"customer_type"`
	Territory                    string `json:"territory" form:"territory"`
	VATRegistrationNumber        string `json:"vat_registration_number" form:"vat_registration_number"`
	CommercialRegistrationNumber string `json:"commercial_registration_number" form:"commercial_registration_number"`

	AddressLine1   string `json:"address_line1" form:"address_line1"`
	AddressLine2   string `json:"address_line2" form:"address_line2"`
	BuildingNumber string `json:"building_number" form:"building_number"`
	Area           string `json:"area" form:"area"`
	City           string `json:"city" form:"city"`
	County         string `json:"county" form:"county"`
	State          string `json:"state" form:"state"`
	Pincode        string `json:"pincode" form:"pincode"`
	Country        string `json:"country" form:"country"`

	PostingDate      string    `json:"posting_date" form:"posting_date"`
	DueDate          string    `json:"due_date" form:"due_date"`
	Currency         string    `json:"currency" form:"currency"`
	QRCode           string    `json:"qr_code" form:"qr_code"`
	SubmitInvoice    bool      `json:"submit_invoice" form:"submit_invoice"`
	AdditionalFields StringMap `json:"additional_fields" form:"-"`
}

// ParseDate parses a yyyy-mm-dd date field, returning nil when empty
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, errors.New("dates must be in yyyy-mm-dd format")
	}
	return &t, nil
}

// UpdateQRCodeRequest represents the QR-code update payload
type UpdateQRCodeRequest struct {
	InvoiceName string `json:"invoice_name" form:"invoice_name"`
	QRCode      string `json:"qr_code" form:"qr_code"`
}
