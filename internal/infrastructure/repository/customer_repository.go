package repository

import (
	"context"
	"errors"

	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	domainRepo "github.com/zatca-bridge/invoicing-api/internal/domain/repository"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	err := dbFrom(ctx, r.db).Create(customer).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewDuplicateEntryError("Customer '" + customer.CustomerName + "' already exists")
	}
	return err
}

func (r *customerRepository) GetByName(ctx context.Context, name string) (*entity.Customer, error) {
	var customer entity.Customer
	err := dbFrom(ctx, r.db).Preload("Identifiers").First(&customer, "customer_name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) domainRepo.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	err := dbFrom(ctx, r.db).Create(address).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewDuplicateEntryError("Address '" + address.Title + "' already exists")
	}
	return err
}

func (r *addressRepository) GetByTitle(ctx context.Context, title string) (*entity.Address, error) {
	var address entity.Address
	err := dbFrom(ctx, r.db).First(&address, "title = ?", title).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}
