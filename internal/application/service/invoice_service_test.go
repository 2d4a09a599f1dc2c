package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zatca-bridge/invoicing-api/internal/config"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	"github.com/zatca-bridge/invoicing-api/internal/domain/enum"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
	"go.uber.org/zap"
)

type invoiceServiceFixture struct {
	svc          *InvoiceService
	companyRepo  *mockCompanyRepo
	customerRepo *mockCustomerRepo
	addressRepo  *mockAddressRepo
	itemRepo     *mockItemRepo
	invoiceRepo  *mockInvoiceRepo
	seriesRepo   *mockSeriesRepo
	masterRepo   *mockMasterRepo
}

func newInvoiceServiceFixture() *invoiceServiceFixture {
	f := &invoiceServiceFixture{
		companyRepo:  new(mockCompanyRepo),
		customerRepo: new(mockCustomerRepo),
		addressRepo:  new(mockAddressRepo),
		itemRepo:     new(mockItemRepo),
		invoiceRepo:  new(mockInvoiceRepo),
		seriesRepo:   new(mockSeriesRepo),
		masterRepo:   new(mockMasterRepo),
	}
	cfg := config.InvoicingConfig{
		BaseURL:           "https://erp.example.com",
		DefaultCountry:    "Saudi Arabia",
		DefaultVATPercent: 15,
		InvoicePrefix:     "ACC-SINV",
	}
	f.svc = NewInvoiceService(
		f.companyRepo, f.customerRepo, f.addressRepo, f.itemRepo,
		f.invoiceRepo, f.seriesRepo, f.masterRepo,
		passthroughUnitOfWork{}, cfg, zap.NewNop(),
	)
	return f
}

func testCompany() *entity.Company {
	return &entity.Company{
		ID:                   uuid.New(),
		Name:                 "ACME Trading",
		Abbr:                 "ACME",
		DefaultCurrency:      "SAR",
		Country:              "Saudi Arabia",
		VATPercent:           15,
		DefaultIncomeAccount: "Sales - ACME",
		DefaultCostCenter:    "Main - ACME",
	}
}

func testItems() []entity.Item {
	return []entity.Item{
		{Code: "PROD-001", Name: "Widget", ItemGroup: "Products", StockUOM: "Nos", StandardRate: 2500},
		{Code: "PROD-002", Name: "Gadget", ItemGroup: "Products", StockUOM: "Nos", StandardRate: 25000},
	}
}

func testInput(postingDate time.Time) *CreateInvoiceInput {
	return &CreateInvoiceInput{
		Company:      "ACME Trading",
		CustomerName: "Al Noor Trading Est",
		PostingDate:  &postingDate,
		Items: []InvoiceItemInput{
			{ItemCode: "PROD-001", Qty: 10, DiscountPercentage: 10},
			{ItemCode: "PROD-002", Qty: 4},
		},
	}
}

func TestCreateSalesInvoiceValidationBatchesAllProblems(t *testing.T) {
	f := newInvoiceServiceFixture()

	_, err := f.svc.CreateSalesInvoice(context.Background(), &CreateInvoiceInput{})

	assert.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	appErr := apperror.GetAppError(err)
	assert.Contains(t, appErr.Message, "company")
	assert.Contains(t, appErr.Message, "customer_name")
	assert.Contains(t, appErr.Message, "items")
	f.companyRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestCreateSalesInvoiceValidatesItemLines(t *testing.T) {
	f := newInvoiceServiceFixture()

	_, err := f.svc.CreateSalesInvoice(context.Background(), &CreateInvoiceInput{
		Company:      "ACME Trading",
		CustomerName: "Al Noor Trading Est",
		Items: []InvoiceItemInput{
			{ItemCode: "", Qty: 0},
			{ItemCode: "PROD-002", Qty: 2, DiscountPercentage: 150},
		},
	})

	assert.True(t, apperror.IsValidation(err))
	appErr := apperror.GetAppError(err)
	assert.Contains(t, appErr.Message, "Item 1: 'item_code' is required")
	assert.Contains(t, appErr.Message, "Item 1: 'qty' must be greater than zero")
	assert.Contains(t, appErr.Message, "Item 2: 'discount_percentage' must be between 0 and 100")
}

func TestCreateSalesInvoiceUnknownCompany(t *testing.T) {
	f := newInvoiceServiceFixture()
	f.companyRepo.On("GetByName", mock.Anything, "Ghost Co").Return(nil, nil)

	postingDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	input := testInput(postingDate)
	input.Company = "Ghost Co"

	_, err := f.svc.CreateSalesInvoice(context.Background(), input)

	assert.True(t, apperror.IsDoesNotExist(err))
	assert.Contains(t, err.Error(), "Company 'Ghost Co' does not exist")
}

func TestCreateSalesInvoiceUnknownItem(t *testing.T) {
	f := newInvoiceServiceFixture()
	company := testCompany()
	f.companyRepo.On("GetByName", mock.Anything, "ACME Trading").Return(company, nil)
	f.customerRepo.On("GetByName", mock.Anything, "Al Noor Trading Est").
		Return(&entity.Customer{ID: uuid.New(), CustomerName: "Al Noor Trading Est"}, nil)
	f.itemRepo.On("GetByCodes", mock.Anything, []string{"PROD-999"}).Return([]entity.Item{}, nil)
	f.masterRepo.On("DefaultWarehouse", mock.Anything, company.ID).Return("Stores - ACME", nil)

	postingDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	input := testInput(postingDate)
	input.Items = []InvoiceItemInput{{ItemCode: "PROD-999", Qty: 1}}

	_, err := f.svc.CreateSalesInvoice(context.Background(), input)

	assert.True(t, apperror.IsDoesNotExist(err))
	assert.Equal(t, "Item 'PROD-999' does not exist in the system", err.Error())
	f.invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSalesInvoiceComputesTotalsWithDiscountAndVAT(t *testing.T) {
	f := newInvoiceServiceFixture()
	company := testCompany()
	f.companyRepo.On("GetByName", mock.Anything, "ACME Trading").Return(company, nil)
	f.customerRepo.On("GetByName", mock.Anything, "Al Noor Trading Est").
		Return(&entity.Customer{ID: uuid.New(), CustomerName: "Al Noor Trading Est"}, nil)
	f.itemRepo.On("GetByCodes", mock.Anything, []string{"PROD-001", "PROD-002"}).Return(testItems(), nil)
	f.masterRepo.On("DefaultWarehouse", mock.Anything, company.ID).Return("Stores - ACME", nil)
	f.seriesRepo.On("Next", mock.Anything, "ACC-SINV-2026-").Return(int64(42), nil)

	var created *entity.SalesInvoice
	f.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.SalesInvoice")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.SalesInvoice)
		}).Return(nil)

	postingDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	result, err := f.svc.CreateSalesInvoice(context.Background(), testInput(postingDate))

	assert.NoError(t, err)
	assert.Equal(t, "ACC-SINV-2026-00042", result.InvoiceName)
	assert.Equal(t, "Al Noor Trading Est", result.Customer)
	// 10 x 25.00 less 10% = 225.00, plus 4 x 250.00 = 1000.00
	assert.Equal(t, int64(122500), created.NetTotal)
	// 15% VAT on 1225.00
	assert.Equal(t, int64(18375), created.TotalTaxes)
	assert.Equal(t, int64(140875), created.GrandTotal)
	assert.Equal(t, 1408.75, result.GrandTotal)
	assert.Equal(t, "https://erp.example.com/app/sales-invoice/ACC-SINV-2026-00042", result.InvoiceURL)

	assert.Len(t, created.Items, 2)
	first := created.Items[0]
	assert.Equal(t, int64(22500), first.Amount)
	assert.Equal(t, "Stores - ACME", first.Warehouse)
	assert.Equal(t, "Sales - ACME", first.IncomeAccount)
	assert.Equal(t, "Main - ACME", first.CostCenter)
	assert.Equal(t, "Nos", first.UOM)
	assert.Equal(t, enum.InvoiceStatusDraft, created.Status)
	f.invoiceRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSalesInvoiceItemTaxTemplateOverridesCompanyVAT(t *testing.T) {
	f := newInvoiceServiceFixture()
	company := testCompany()
	zeroRated := 0.0
	items := []entity.Item{
		{
			Code: "EXPORT-001", Name: "Export Widget", StockUOM: "Nos", StandardRate: 10000,
			Taxes: []entity.ItemTax{{ItemTaxTemplate: "KSA VAT Zero - ACME", Rate: &zeroRated}},
		},
	}
	f.companyRepo.On("GetByName", mock.Anything, "ACME Trading").Return(company, nil)
	f.customerRepo.On("GetByName", mock.Anything, "Al Noor Trading Est").
		Return(&entity.Customer{ID: uuid.New(), CustomerName: "Al Noor Trading Est"}, nil)
	f.itemRepo.On("GetByCodes", mock.Anything, []string{"EXPORT-001"}).Return(items, nil)
	f.masterRepo.On("DefaultWarehouse", mock.Anything, company.ID).Return("Stores - ACME", nil)
	f.seriesRepo.On("Next", mock.Anything, "ACC-SINV-2026-").Return(int64(1), nil)

	var created *entity.SalesInvoice
	f.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.SalesInvoice")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.SalesInvoice)
		}).Return(nil)

	postingDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	input := testInput(postingDate)
	input.Items = []InvoiceItemInput{{ItemCode: "EXPORT-001", Qty: 2}}

	_, err := f.svc.CreateSalesInvoice(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, int64(20000), created.NetTotal)
	assert.Equal(t, int64(0), created.TotalTaxes)
	assert.Equal(t, int64(20000), created.GrandTotal)
}

func TestCreateSalesInvoiceFallsBackToConfiguredVATRate(t *testing.T) {
	f := newInvoiceServiceFixture()
	company := testCompany()
	// A company row without a VAT rate uses the configured default of 15%
	company.VATPercent = 0
	f.companyRepo.On("GetByName", mock.Anything, "ACME Trading").Return(company, nil)
	f.customerRepo.On("GetByName", mock.Anything, "Al Noor Trading Est").
		Return(&entity.Customer{ID: uuid.New(), CustomerName: "Al Noor Trading Est"}, nil)
	f.itemRepo.On("GetByCodes", mock.Anything, mock.Anything).Return(testItems(), nil)
	f.masterRepo.On("DefaultWarehouse", mock.Anything, company.ID).Return("Stores - ACME", nil)
	f.seriesRepo.On("Next", mock.Anything, "ACC-SINV-2026-").Return(int64(5), nil)

	var created *entity.SalesInvoice
	f.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.SalesInvoice")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.SalesInvoice)
		}).Return(nil)

	postingDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := f.svc.CreateSalesInvoice(context.Background(), testInput(postingDate))

	assert.NoError(t, err)
	assert.Equal(t, int64(18375), created.TotalTaxes)
	assert.Equal(t, int64(140875), created.GrandTotal)
}

func TestCreateSalesInvoiceSubmitsWhenRequested(t *testing.T) {
	f := newInvoiceServiceFixture()
	company := testCompany()
	f.companyRepo.On("GetByName", mock.Anything, "ACME Trading").Return(company, nil)
	f.customerRepo.On("GetByName", mock.Anything, "Al Noor Trading Est").
		Return(&entity.Customer{ID: uuid.New(), CustomerName: "Al Noor Trading Est"}, nil)
	f.itemRepo.On("GetByCodes", mock.Anything, mock.Anything).Return(testItems(), nil)
	f.masterRepo.On("DefaultWarehouse", mock.Anything, company.ID).Return("Stores - ACME", nil)
	f.seriesRepo.On("Next", mock.Anything, "ACC-SINV-2026-").Return(int64(7), nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.invoiceRepo.On("SetStatus", mock.Anything, "ACC-SINV-2026-00007", enum.InvoiceStatusSubmitted).Return(nil)

	postingDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	input := testInput(postingDate)
	input.SubmitInvoice = true

	_, err := f.svc.CreateSalesInvoice(context.Background(), input)

	assert.NoError(t, err)
	f.invoiceRepo.AssertExpectations(t)
}

func TestCreateSalesInvoiceCreatesCustomerWithDefaults(t *testing.T) {
	f := newInvoiceServiceFixture()
	company := testCompany()
	f.companyRepo.On("GetByName", mock.Anything, "ACME Trading").Return(company, nil)
	f.customerRepo.On("GetByName", mock.Anything, "New Customer LLC").Return(nil, nil)
	f.masterRepo.On("CustomerGroupExists", mock.Anything, "Commercial").Return(true, nil)
	f.masterRepo.On("TerritoryExists", mock.Anything, "All Territories").Return(true, nil)

	var createdCustomer *entity.Customer
	f.customerRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			createdCustomer = args.Get(1).(*entity.Customer)
		}).Return(nil)

	var createdAddress *entity.Address
	f.addressRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Address")).
		Run(func(args mock.Arguments) {
			createdAddress = args.Get(1).(*entity.Address)
		}).Return(nil)

	f.itemRepo.On("GetByCodes", mock.Anything, mock.Anything).Return(testItems(), nil)
	f.masterRepo.On("DefaultWarehouse", mock.Anything, company.ID).Return("Stores - ACME", nil)
	f.seriesRepo.On("Next", mock.Anything, "ACC-SINV-2026-").Return(int64(3), nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	postingDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	input := testInput(postingDate)
	input.CustomerName = "New Customer LLC"
	input.CommercialRegistrationNumber = "1010101010"
	input.VATRegistrationNumber = "310000000000003"
	input.AddressLine1 = "King Fahd Road"
	input.City = "Riyadh"

	_, err := f.svc.CreateSalesInvoice(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "Commercial", createdCustomer.CustomerGroup)
	assert.Equal(t, "Company", createdCustomer.CustomerType)
	assert.Equal(t, "All Territories", createdCustomer.Territory)
	assert.Equal(t, company.ID, *createdCustomer.DefaultCompanyID)
	assert.Equal(t, "310000000000003", *createdCustomer.VATRegistrationNumber)
	assert.Len(t, createdCustomer.Identifiers, 1)
	assert.Equal(t, "Commercial Registration Number", createdCustomer.Identifiers[0].TypeName)
	assert.Equal(t, "CRN", createdCustomer.Identifiers[0].TypeCode)
	assert.Equal(t, "1010101010", createdCustomer.Identifiers[0].Value)

	assert.Equal(t, "New Customer LLC-Billing", createdAddress.Title)
	assert.Equal(t, entity.AddressTypeBilling, createdAddress.AddressType)
	assert.Equal(t, "Saudi Arabia", createdAddress.Country)
}

func TestCreateSalesInvoiceExistingCustomerIsNotModified(t *testing.T) {
	f := newInvoiceServiceFixture()
	company := testCompany()
	existing := &entity.Customer{ID: uuid.New(), CustomerName: "Al Noor Trading Est", CustomerGroup: "Government"}
	f.companyRepo.On("GetByName", mock.Anything, "ACME Trading").Return(company, nil)
	f.customerRepo.On("GetByName", mock.Anything, "Al Noor Trading Est").Return(existing, nil)
	f.itemRepo.On("GetByCodes", mock.Anything, mock.Anything).Return(testItems(), nil)
	f.masterRepo.On("DefaultWarehouse", mock.Anything, company.ID).Return("Stores - ACME", nil)
	f.seriesRepo.On("Next", mock.Anything, "ACC-SINV-2026-").Return(int64(9), nil)
	f.invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	postingDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	input := testInput(postingDate)
	// These must be ignored for an existing customer
	input.CustomerGroup = "Individual"
	input.AddressLine1 = "Some Street"

	_, err := f.svc.CreateSalesInvoice(context.Background(), input)

	assert.NoError(t, err)
	f.customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.addressRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSalesInvoiceRecoversFromConcurrentCustomerCreation(t *testing.T) {
	f := newInvoiceServiceFixture()
	company := testCompany()
	winner := &entity.Customer{ID: uuid.New(), CustomerName: "Raced Customer"}

	f.companyRepo.On("GetByName", mock.Anything, "ACME Trading").Return(company, nil)
	f.customerRepo.On("GetByName", mock.Anything, "Raced Customer").Return(nil, nil).Once()
	f.masterRepo.On("CustomerGroupExists", mock.Anything, "Commercial").Return(true, nil)
	f.masterRepo.On("TerritoryExists", mock.Anything, "All Territories").Return(true, nil)
	f.customerRepo.On("Create", mock.Anything, mock.Anything).
		Return(apperror.NewDuplicateEntryError("Customer 'Raced Customer' already exists"))
	f.customerRepo.On("GetByName", mock.Anything, "Raced Customer").Return(winner, nil).Once()

	f.itemRepo.On("GetByCodes", mock.Anything, mock.Anything).Return(testItems(), nil)
	f.masterRepo.On("DefaultWarehouse", mock.Anything, company.ID).Return("Stores - ACME", nil)
	f.seriesRepo.On("Next", mock.Anything, "ACC-SINV-2026-").Return(int64(11), nil)

	var created *entity.SalesInvoice
	f.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.SalesInvoice")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.SalesInvoice)
		}).Return(nil)

	postingDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	input := testInput(postingDate)
	input.CustomerName = "Raced Customer"

	result, err := f.svc.CreateSalesInvoice(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "Raced Customer", result.Customer)
	assert.Equal(t, winner.ID, created.CustomerID)
}

func TestUpdateQRCodeValidation(t *testing.T) {
	f := newInvoiceServiceFixture()

	err := f.svc.UpdateQRCode(context.Background(), "", "")

	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, err.Error(), "Invoice name is required")
	assert.Contains(t, err.Error(), "QR code data is required")
}

func TestUpdateQRCodeUnknownInvoice(t *testing.T) {
	f := newInvoiceServiceFixture()
	f.invoiceRepo.On("UpdateQRCode", mock.Anything, "ACC-SINV-2026-99999", "payload").Return(false, nil)

	err := f.svc.UpdateQRCode(context.Background(), "ACC-SINV-2026-99999", "payload")

	assert.True(t, apperror.IsDoesNotExist(err))
	assert.Contains(t, err.Error(), "ACC-SINV-2026-99999")
}

func TestUpdateQRCodeSuccess(t *testing.T) {
	f := newInvoiceServiceFixture()
	f.invoiceRepo.On("UpdateQRCode", mock.Anything, "ACC-SINV-2026-00001", "BASE64QR==").Return(true, nil)

	err := f.svc.UpdateQRCode(context.Background(), "ACC-SINV-2026-00001", "BASE64QR==")

	assert.NoError(t, err)
	f.invoiceRepo.AssertExpectations(t)
}

func TestGetInvoiceUnknown(t *testing.T) {
	f := newInvoiceServiceFixture()
	f.invoiceRepo.On("GetByName", mock.Anything, "ACC-SINV-2026-00404").Return(nil, nil)

	_, err := f.svc.GetInvoice(context.Background(), "ACC-SINV-2026-00404")

	assert.True(t, apperror.IsDoesNotExist(err))
}
