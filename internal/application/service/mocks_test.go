package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	"github.com/zatca-bridge/invoicing-api/internal/domain/enum"
	"github.com/zatca-bridge/invoicing-api/internal/domain/repository"
)

type mockCompanyRepo struct{ mock.Mock }

func (m *mockCompanyRepo) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *mockCustomerRepo) GetByName(ctx context.Context, name string) (*entity.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

type mockAddressRepo struct{ mock.Mock }

func (m *mockAddressRepo) Create(ctx context.Context, address *entity.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *mockAddressRepo) GetByTitle(ctx context.Context, title string) (*entity.Address, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Address), args.Error(1)
}

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, item *entity.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *mockItemRepo) GetByCodes(ctx context.Context, codes []string) ([]entity.Item, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Item), args.Error(1)
}

func (m *mockItemRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type mockInvoiceRepo struct{ mock.Mock }

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *entity.SalesInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *mockInvoiceRepo) GetByName(ctx context.Context, name string) (*entity.SalesInvoice, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesInvoice), args.Error(1)
}

func (m *mockInvoiceRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockInvoiceRepo) SetStatus(ctx context.Context, name string, status enum.InvoiceStatus) error {
	args := m.Called(ctx, name, status)
	return args.Error(0)
}

func (m *mockInvoiceRepo) UpdateQRCode(ctx context.Context, name string, qrCode string) (bool, error) {
	args := m.Called(ctx, name, qrCode)
	return args.Bool(0), args.Error(1)
}

type mockSeriesRepo struct{ mock.Mock }

func (m *mockSeriesRepo) Next(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

type mockMasterRepo struct{ mock.Mock }

func (m *mockMasterRepo) TerritoryExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockMasterRepo) CustomerGroupExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockMasterRepo) ItemGroupExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockMasterRepo) TaxCategoryExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockMasterRepo) GetTaxTemplate(ctx context.Context, name string) (*entity.ItemTaxTemplate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ItemTaxTemplate), args.Error(1)
}

func (m *mockMasterRepo) ListTaxTemplates(ctx context.Context, companyID *uuid.UUID) ([]entity.ItemTaxTemplate, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ItemTaxTemplate), args.Error(1)
}

func (m *mockMasterRepo) ListTaxCategories(ctx context.Context) ([]entity.TaxCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TaxCategory), args.Error(1)
}

func (m *mockMasterRepo) ListItemGroups(ctx context.Context) ([]entity.ItemGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ItemGroup), args.Error(1)
}

func (m *mockMasterRepo) DefaultWarehouse(ctx context.Context, companyID uuid.UUID) (string, error) {
	args := m.Called(ctx, companyID)
	return args.String(0), args.Error(1)
}

type mockAPIClientRepo struct{ mock.Mock }

func (m *mockAPIClientRepo) GetByKeyID(ctx context.Context, keyID string) (*entity.APIClient, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.APIClient), args.Error(1)
}

func (m *mockAPIClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.APIClient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.APIClient), args.Error(1)
}

// passthroughUnitOfWork runs the function directly; rollback behavior is
// covered by the sqlite-backed repository tests.
type passthroughUnitOfWork struct{}

func (passthroughUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ repository.UnitOfWork = passthroughUnitOfWork{}
