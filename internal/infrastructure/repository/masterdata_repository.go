package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	domainRepo "github.com/zatca-bridge/invoicing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type masterDataRepository struct {
	db *gorm.DB
}

// NewMasterDataRepository creates a new master data repository
func NewMasterDataRepository(db *gorm.DB) domainRepo.MasterDataRepository {
	return &masterDataRepository{db: db}
}

func (r *masterDataRepository) exists(ctx context.Context, model interface{}, name string) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(model).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *masterDataRepository) TerritoryExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, &entity.Territory{}, name)
}

func (r *masterDataRepository) CustomerGroupExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, &entity.CustomerGroup{}, name)
}

func (r *masterDataRepository) ItemGroupExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, &entity.ItemGroup{}, name)
}

func (r *masterDataRepository) TaxCategoryExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, &entity.TaxCategory{}, name)
}

func (r *masterDataRepository) GetTaxTemplate(ctx context.Context, name string) (*entity.ItemTaxTemplate, error) {
	var template entity.ItemTaxTemplate
	err := dbFrom(ctx, r.db).First(&template, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *masterDataRepository) ListTaxTemplates(ctx context.Context, companyID *uuid.UUID) ([]entity.ItemTaxTemplate, error) {
	var templates []entity.ItemTaxTemplate
	query := dbFrom(ctx, r.db).Model(&entity.ItemTaxTemplate{})
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}
	err := query.Order("name ASC").Find(&templates).Error
	return templates, err
}

func (r *masterDataRepository) ListTaxCategories(ctx context.Context) ([]entity.TaxCategory, error) {
	var categories []entity.TaxCategory
	err := dbFrom(ctx, r.db).Where("disabled = ?", false).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *masterDataRepository) ListItemGroups(ctx context.Context) ([]entity.ItemGroup, error) {
	var groups []entity.ItemGroup
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&groups).Error
	return groups, err
}

func (r *masterDataRepository) DefaultWarehouse(ctx context.Context, companyID uuid.UUID) (string, error) {
	var warehouse entity.Warehouse
	err := dbFrom(ctx, r.db).
		Where("company_id = ? AND is_group = ?", companyID, false).
		Order("name ASC").
		First(&warehouse).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return warehouse.Name, nil
}
