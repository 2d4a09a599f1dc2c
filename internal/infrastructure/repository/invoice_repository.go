package repository

import (
	"context"
	"errors"

	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	"github.com/zatca-bridge/invoicing-api/internal/domain/enum"
	domainRepo "github.com/zatca-bridge/invoicing-api/internal/domain/repository"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new sales invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.SalesInvoice) error {
	err := dbFrom(ctx, r.db).Create(invoice).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewDuplicateEntryError("Sales Invoice '" + invoice.Name + "' already exists")
	}
	return err
}

func (r *invoiceRepository) GetByName(ctx context.Context, name string) (*entity.SalesInvoice, error) {
	var invoice entity.SalesInvoice
	err := dbFrom(ctx, r.db).Preload("Items").First(&invoice, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.SalesInvoice{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *invoiceRepository) SetStatus(ctx context.Context, name string, status enum.InvoiceStatus) error {
	return dbFrom(ctx, r.db).Model(&entity.SalesInvoice{}).
		Where("name = ?", name).
		Update("status", status).Error
}

func (r *invoiceRepository) UpdateQRCode(ctx context.Context, name string, qrCode string) (bool, error) {
	result := dbFrom(ctx, r.db).Model(&entity.SalesInvoice{}).
		Where("name = ?", name).
		Update("qr_code", qrCode)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type namingSeriesRepository struct {
	db *gorm.DB
}

// NewNamingSeriesRepository creates a new naming series repository
func NewNamingSeriesRepository(db *gorm.DB) domainRepo.NamingSeriesRepository {
	return &namingSeriesRepository{db: db}
}

// Next increments the series counter under a row lock so concurrent invoice
// creations never share a number. Must run inside a transaction.
func (r *namingSeriesRepository) Next(ctx context.Context, prefix string) (int64, error) {
	db := dbFrom(ctx, r.db)

	var series entity.NamingSeries
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&series, "prefix = ?", prefix).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		series = entity.NamingSeries{Prefix: prefix, Current: 0}
		if err := db.Create(&series).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	series.Current++
	if err := db.Model(&entity.NamingSeries{}).
		Where("prefix = ?", prefix).
		Update("current", series.Current).Error; err != nil {
		return 0, err
	}
	return series.Current, nil
}
