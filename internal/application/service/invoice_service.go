package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zatca-bridge/invoicing-api/internal/config"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	"github.com/zatca-bridge/invoicing-api/internal/domain/enum"
	"github.com/zatca-bridge/invoicing-api/internal/domain/repository"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
	"github.com/zatca-bridge/invoicing-api/pkg/utils"
	"go.uber.org/zap"
)

var oneHundred = decimal.NewFromInt(100)

// InvoiceService handles sales invoice creation and QR-code updates
type InvoiceService struct {
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
	itemRepo     repository.ItemRepository
	invoiceRepo  repository.InvoiceRepository
	seriesRepo   repository.NamingSeriesRepository
	masterRepo   repository.MasterDataRepository
	uow          repository.UnitOfWork
	cfg          config.InvoicingConfig
	log          *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	addressRepo repository.AddressRepository,
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
	seriesRepo repository.NamingSeriesRepository,
	masterRepo repository.MasterDataRepository,
	uow repository.UnitOfWork,
	cfg config.InvoicingConfig,
	log *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		addressRepo:  addressRepo,
		itemRepo:     itemRepo,
		invoiceRepo:  invoiceRepo,
		seriesRepo:   seriesRepo,
		masterRepo:   masterRepo,
		uow:          uow,
		cfg:          cfg,
		log:          log,
	}
}

// InvoiceItemInput represents one requested invoice line
type InvoiceItemInput struct {
	ItemCode           string
	Qty                float64
	Rate               *float64
	UOM                string
	Warehouse          string
	Description        string
	DiscountPercentage float64
	IncomeAccount      string
	CostCenter         string
}

// CreateInvoiceInput represents the create sales invoice input
type CreateInvoiceInput struct {
	Company      string
	CustomerName string
	Items        []InvoiceItemInput

	// Customer fields, used only when the customer does not exist yet
	CustomerEmail                string
	CustomerPhone                string
	CustomerGroup                string
	CustomerType                 string
	Territory                    string
	VATRegistrationNumber        string
	CommercialRegistrationNumber string

	// Address fields, used only when a new customer is created
	AddressLine1   string
	AddressLine2   string
	BuildingNumber string
	Area           string
	City           string
	County         string
	State          string
	Pincode        string
	Country        string

	// Invoice fields
	PostingDate      *time.Time
	DueDate          *time.Time
	Currency         string
	QRCode           string
	SubmitInvoice    bool
	AdditionalFields map[string]interface{}
}

// CreateInvoiceResult is returned on successful invoice creation
type CreateInvoiceResult struct {
	InvoiceName string
	InvoiceURL  string
	Customer    string
	GrandTotal  float64
}

// CreateSalesInvoice validates the request, resolves or creates the customer
// (plus billing address), assembles the invoice and persists everything as
// one atomic unit. Any failure rolls back all writes of the call, including
// a customer created moments earlier.
func (s *InvoiceService) CreateSalesInvoice(ctx context.Context, input *CreateInvoiceInput) (*CreateInvoiceResult, error) {
	if err := validateCreateInvoice(input); err != nil {
		return nil, err
	}

	var result *CreateInvoiceResult
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		company, err := s.companyRepo.GetByName(ctx, input.Company)
		if err != nil {
			return err
		}
		if company == nil {
			return apperror.NewDoesNotExistError(
				fmt.Sprintf("Company '%s' does not exist. Please check the company name.", input.Company))
		}

		customer, err := s.resolveOrCreateCustomer(ctx, company, input)
		if err != nil {
			return err
		}

		invoice, err := s.assembleInvoice(ctx, company, customer, input)
		if err != nil {
			return err
		}

		if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}

		if input.SubmitInvoice {
			if err := s.invoiceRepo.SetStatus(ctx, invoice.Name, enum.InvoiceStatusSubmitted); err != nil {
				return err
			}
		}

		result = &CreateInvoiceResult{
			InvoiceName: invoice.Name,
			InvoiceURL:  utils.RecordURL(s.cfg.BaseURL, "Sales Invoice", invoice.Name),
			Customer:    customer.CustomerName,
			GrandTotal:  invoice.GetGrandTotalDecimal(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("sales invoice created",
		zap.String("invoice", result.InvoiceName),
		zap.String("customer", result.Customer),
		zap.Float64("grand_total", result.GrandTotal))
	return result, nil
}

// validateCreateInvoice checks the whole payload and reports every missing or
// malformed field in a single error.
func validateCreateInvoice(input *CreateInvoiceInput) error {
	var missing []string
	if input.Company == "" {
		missing = append(missing, "company")
	}
	if input.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if len(input.Items) == 0 {
		missing = append(missing, "items")
	}

	var problems []string
	var fields []apperror.FieldError
	if len(missing) > 0 {
		problems = append(problems, "Missing required fields: "+strings.Join(missing, ", "))
		for _, f := range missing {
			fields = append(fields, apperror.FieldError{Field: f, Message: "required"})
		}
	}

	for idx, line := range input.Items {
		n := idx + 1
		if line.ItemCode == "" {
			problems = append(problems, fmt.Sprintf("Item %d: 'item_code' is required", n))
			fields = append(fields, apperror.FieldError{Field: fmt.Sprintf("items[%d].item_code", idx), Message: "required"})
		}
		if line.Qty <= 0 {
			problems = append(problems, fmt.Sprintf("Item %d: 'qty' must be greater than zero", n))
			fields = append(fields, apperror.FieldError{Field: fmt.Sprintf("items[%d].qty", idx), Message: "must be greater than zero"})
		}
		if line.Rate != nil && *line.Rate < 0 {
			problems = append(problems, fmt.Sprintf("Item %d: 'rate' cannot be negative", n))
			fields = append(fields, apperror.FieldError{Field: fmt.Sprintf("items[%d].rate", idx), Message: "cannot be negative"})
		}
		if line.DiscountPercentage < 0 || line.DiscountPercentage > 100 {
			problems = append(problems, fmt.Sprintf("Item %d: 'discount_percentage' must be between 0 and 100", n))
			fields = append(fields, apperror.FieldError{Field: fmt.Sprintf("items[%d].discount_percentage", idx), Message: "must be between 0 and 100"})
		}
	}

	if len(problems) > 0 {
		return apperror.NewFieldValidationError(strings.Join(problems, "; "), fields)
	}
	return nil
}

// resolveOrCreateCustomer returns the existing customer with the requested
// name, or creates one (with an optional billing address) when absent. An
// existing customer is returned unchanged: the request's optional customer and
// address fields are ignored, by design there is no upsert.
func (s *InvoiceService) resolveOrCreateCustomer(ctx context.Context, company *entity.Company, input *CreateInvoiceInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByName(ctx, input.CustomerName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	customerGroup := input.CustomerGroup
	if customerGroup == "" {
		customerGroup = "Commercial"
	}
	customerType := input.CustomerType
	if customerType == "" {
		customerType = "Company"
	}
	territory := input.Territory
	if territory == "" {
		territory = "All Territories"
	}

	if ok, err := s.masterRepo.CustomerGroupExists(ctx, customerGroup); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperror.NewDoesNotExistError(fmt.Sprintf("Customer Group '%s' does not exist", customerGroup))
	}
	if ok, err := s.masterRepo.TerritoryExists(ctx, territory); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperror.NewDoesNotExistError(fmt.Sprintf("Territory '%s' does not exist", territory))
	}

	customer := &entity.Customer{
		CustomerName:     input.CustomerName,
		CustomerType:     customerType,
		CustomerGroup:    customerGroup,
		Territory:        territory,
		DefaultCompanyID: &company.ID,
	}
	if input.CustomerEmail != "" {
		email := input.CustomerEmail
		customer.Email = &email
	}
	if input.CustomerPhone != "" {
		phone := input.CustomerPhone
		customer.Mobile = &phone
	}
	if input.VATRegistrationNumber != "" {
		vat := input.VATRegistrationNumber
		customer.VATRegistrationNumber = &vat
	}
	if input.CommercialRegistrationNumber != "" {
		customer.Identifiers = append(customer.Identifiers, entity.CustomerIdentifier{
			TypeName: "Commercial Registration Number",
			TypeCode: "CRN",
			Value:    input.CommercialRegistrationNumber,
		})
	}

	// The insert runs in its own savepoint: two concurrent requests can both
	// pass the existence check, and the loser's duplicate-key failure must not
	// poison the enclosing transaction.
	createErr := s.uow.Do(ctx, func(ctx context.Context) error {
		return s.customerRepo.Create(ctx, customer)
	})
	if createErr != nil {
		if apperror.IsDuplicateEntry(createErr) {
			winner, err := s.customerRepo.GetByName(ctx, input.CustomerName)
			if err != nil {
				return nil, err
			}
			if winner != nil {
				return winner, nil
			}
		}
		return nil, createErr
	}

	if hasAddressFields(input) {
		if err := s.createBillingAddress(ctx, customer, input); err != nil {
			return nil, err
		}
	}

	s.log.Info("customer created", zap.String("customer", customer.CustomerName))
	return customer, nil
}

func hasAddressFields(input *CreateInvoiceInput) bool {
	return input.AddressLine1 != "" || input.AddressLine2 != "" || input.BuildingNumber != "" ||
		input.Area != "" || input.City != "" || input.County != "" ||
		input.State != "" || input.Pincode != "" || input.Country != ""
}

func (s *InvoiceService) createBillingAddress(ctx context.Context, customer *entity.Customer, input *CreateInvoiceInput) error {
	country := input.Country
	if country == "" {
		country = s.cfg.DefaultCountry
	}
	address := &entity.Address{
		CustomerID:     customer.ID,
		Title:          customer.CustomerName + "-" + entity.AddressTypeBilling,
		AddressType:    entity.AddressTypeBilling,
		Line1:          input.AddressLine1,
		Line2:          input.AddressLine2,
		BuildingNumber: input.BuildingNumber,
		Area:           input.Area,
		City:           input.City,
		County:         input.County,
		State:          input.State,
		Pincode:        input.Pincode,
		Country:        country,
	}
	return s.addressRepo.Create(ctx, address)
}

// assembleInvoice builds the invoice draft: resolves every item line against
// the item master, applies defaults, prices the lines and computes totals.
func (s *InvoiceService) assembleInvoice(ctx context.Context, company *entity.Company, customer *entity.Customer, input *CreateInvoiceInput) (*entity.SalesInvoice, error) {
	codes := make([]string, len(input.Items))
	for i, line := range input.Items {
		codes[i] = line.ItemCode
	}
	items, err := s.itemRepo.GetByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	itemMap := make(map[string]*entity.Item, len(items))
	for i := range items {
		itemMap[items[i].Code] = &items[i]
	}

	defaultWarehouse, err := s.masterRepo.DefaultWarehouse(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	vatPercent := company.VATPercent
	if vatPercent == 0 {
		vatPercent = s.cfg.DefaultVATPercent
	}
	companyVAT := decimal.NewFromInt(int64(vatPercent))

	netTotal := decimal.Zero
	taxTotal := decimal.Zero
	lines := make([]entity.SalesInvoiceItem, 0, len(input.Items))
	for _, lineInput := range input.Items {
		item, exists := itemMap[lineInput.ItemCode]
		if !exists {
			return nil, apperror.NewDoesNotExistError(
				fmt.Sprintf("Item '%s' does not exist in the system", lineInput.ItemCode))
		}
		if item.Disabled {
			return nil, apperror.NewValidationError(
				fmt.Sprintf("Item '%s' is disabled and cannot be invoiced", item.Code))
		}

		rate := decimal.NewFromInt(item.StandardRate).Div(oneHundred)
		if lineInput.Rate != nil {
			rate = decimal.NewFromFloat(*lineInput.Rate)
		}
		qty := decimal.NewFromFloat(lineInput.Qty)
		discount := decimal.NewFromFloat(lineInput.DiscountPercentage)
		amount := qty.Mul(rate).Mul(oneHundred.Sub(discount)).Div(oneHundred)

		taxRate := companyVAT
		if itemRate, ok := item.TaxRate(); ok {
			taxRate = decimal.NewFromFloat(itemRate)
		}
		taxTotal = taxTotal.Add(amount.Mul(taxRate).Div(oneHundred))
		netTotal = netTotal.Add(amount)

		itemDefault := item.DefaultFor(company.ID)

		warehouse := lineInput.Warehouse
		if warehouse == "" && itemDefault != nil {
			warehouse = itemDefault.DefaultWarehouse
		}
		if warehouse == "" {
			warehouse = defaultWarehouse
		}

		incomeAccount := lineInput.IncomeAccount
		if incomeAccount == "" && itemDefault != nil {
			incomeAccount = itemDefault.IncomeAccount
		}
		if incomeAccount == "" {
			incomeAccount = company.DefaultIncomeAccount
		}

		costCenter := lineInput.CostCenter
		if costCenter == "" && itemDefault != nil {
			costCenter = itemDefault.SellingCostCenter
		}
		if costCenter == "" {
			costCenter = company.DefaultCostCenter
		}

		uom := lineInput.UOM
		if uom == "" {
			uom = item.StockUOM
		}
		description := lineInput.Description
		if description == "" {
			description = item.Description
		}

		lines = append(lines, entity.SalesInvoiceItem{
			ItemCode:           item.Code,
			ItemName:           item.Name,
			Description:        description,
			Qty:                lineInput.Qty,
			UOM:                uom,
			Rate:               rate.Mul(oneHundred).Round(0).IntPart(),
			DiscountPercentage: lineInput.DiscountPercentage,
			Amount:             amount.Mul(oneHundred).Round(0).IntPart(),
			Warehouse:          warehouse,
			IncomeAccount:      incomeAccount,
			CostCenter:         costCenter,
		})
	}

	postingDate := time.Now()
	if input.PostingDate != nil {
		postingDate = *input.PostingDate
	}
	currency := input.Currency
	if currency == "" {
		currency = company.DefaultCurrency
	}

	name, err := s.nextInvoiceName(ctx, postingDate)
	if err != nil {
		return nil, err
	}

	net := netTotal.Mul(oneHundred).Round(0).IntPart()
	taxes := taxTotal.Mul(oneHundred).Round(0).IntPart()

	return &entity.SalesInvoice{
		Name:             name,
		CompanyID:        company.ID,
		CustomerID:       customer.ID,
		PostingDate:      postingDate,
		DueDate:          input.DueDate,
		Currency:         currency,
		Status:           enum.InvoiceStatusDraft,
		QRCode:           input.QRCode,
		AdditionalFields: input.AdditionalFields,
		NetTotal:         net,
		TotalTaxes:       taxes,
		GrandTotal:       net + taxes,
		Items:            lines,
	}, nil
}

func (s *InvoiceService) nextInvoiceName(ctx context.Context, postingDate time.Time) (string, error) {
	prefix := fmt.Sprintf("%s-%d-", s.cfg.InvoicePrefix, postingDate.Year())
	n, err := s.seriesRepo.Next(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", prefix, n), nil
}

// GetInvoice retrieves an invoice by its document name
func (s *InvoiceService) GetInvoice(ctx context.Context, name string) (*entity.SalesInvoice, error) {
	invoice, err := s.invoiceRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewDoesNotExistError(fmt.Sprintf("Sales Invoice '%s' does not exist", name))
	}
	return invoice, nil
}

// UpdateQRCode overwrites the opaque QR payload of an existing invoice. The
// payload structure is not validated; it is stored verbatim.
func (s *InvoiceService) UpdateQRCode(ctx context.Context, invoiceName, qrCode string) error {
	var problems []string
	if invoiceName == "" {
		problems = append(problems, "Invoice name is required")
	}
	if qrCode == "" {
		problems = append(problems, "QR code data is required")
	}
	if len(problems) > 0 {
		return apperror.NewValidationError(strings.Join(problems, "; "))
	}

	return s.uow.Do(ctx, func(ctx context.Context) error {
		found, err := s.invoiceRepo.UpdateQRCode(ctx, invoiceName, qrCode)
		if err != nil {
			return err
		}
		if !found {
			return apperror.NewDoesNotExistError(fmt.Sprintf("Sales Invoice '%s' does not exist", invoiceName))
		}
		return nil
	})
}
