package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	"github.com/zatca-bridge/invoicing-api/internal/domain/repository"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
	"go.uber.org/zap"
)

// ItemService handles item master creation and reference-data lookups
type ItemService struct {
	itemRepo    repository.ItemRepository
	companyRepo repository.CompanyRepository
	masterRepo  repository.MasterDataRepository
	uow         repository.UnitOfWork
	log         *zap.Logger
}

// NewItemService creates a new item service
func NewItemService(
	itemRepo repository.ItemRepository,
	companyRepo repository.CompanyRepository,
	masterRepo repository.MasterDataRepository,
	uow repository.UnitOfWork,
	log *zap.Logger,
) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		companyRepo: companyRepo,
		masterRepo:  masterRepo,
		uow:         uow,
		log:         log,
	}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	ItemCode     string
	ItemName     string
	ItemGroup    string
	Description  string
	StockUOM     string
	StandardRate float64

	// Optional company defaults
	Company          string
	DefaultWarehouse string
	IncomeAccount    string
	ExpenseAccount   string
	CostCenter       string

	// Optional tax template attachment
	ItemTaxTemplate string
	TaxCategory     string
}

// CreateItem adds an item to the item master, optionally with company
// defaults and a tax template attachment.
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	var missing []string
	if input.ItemCode == "" {
		missing = append(missing, "item_code")
	}
	if input.ItemName == "" {
		missing = append(missing, "item_name")
	}
	if input.ItemGroup == "" {
		missing = append(missing, "item_group")
	}
	if len(missing) > 0 {
		return nil, apperror.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}
	if input.StandardRate < 0 {
		return nil, apperror.NewValidationError("'standard_rate' cannot be negative")
	}

	if ok, err := s.masterRepo.ItemGroupExists(ctx, input.ItemGroup); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperror.NewDoesNotExistError(fmt.Sprintf("Item Group '%s' does not exist", input.ItemGroup))
	}

	item := &entity.Item{
		Code:         input.ItemCode,
		Name:         input.ItemName,
		ItemGroup:    input.ItemGroup,
		Description:  input.Description,
		StockUOM:     input.StockUOM,
		StandardRate: decimal.NewFromFloat(input.StandardRate).Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
	}
	if item.StockUOM == "" {
		item.StockUOM = "Nos"
	}
	if item.Description == "" {
		item.Description = input.ItemName
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if input.Company != "" {
			company, err := s.companyRepo.GetByName(ctx, input.Company)
			if err != nil {
				return err
			}
			if company == nil {
				return apperror.NewDoesNotExistError(
					fmt.Sprintf("Company '%s' does not exist. Please check the company name.", input.Company))
			}
			item.Defaults = append(item.Defaults, entity.ItemDefault{
				CompanyID:         company.ID,
				DefaultWarehouse:  input.DefaultWarehouse,
				IncomeAccount:     input.IncomeAccount,
				ExpenseAccount:    input.ExpenseAccount,
				SellingCostCenter: input.CostCenter,
			})
		}

		// An unknown template or category is skipped, never fatal; the item
		// is still created and the template can be attached later.
		if input.ItemTaxTemplate != "" {
			template, err := s.masterRepo.GetTaxTemplate(ctx, input.ItemTaxTemplate)
			if err != nil {
				return err
			}
			if template == nil {
				s.log.Warn("skipping unknown item tax template",
					zap.String("item_code", input.ItemCode),
					zap.String("item_tax_template", input.ItemTaxTemplate))
			} else {
				taxCategory := input.TaxCategory
				if taxCategory != "" {
					ok, err := s.masterRepo.TaxCategoryExists(ctx, taxCategory)
					if err != nil {
						return err
					}
					if !ok {
						s.log.Warn("dropping unknown tax category",
							zap.String("item_code", input.ItemCode),
							zap.String("tax_category", taxCategory))
						taxCategory = ""
					}
				}
				rate := template.Rate
				item.Taxes = append(item.Taxes, entity.ItemTax{
					ItemTaxTemplate: template.Name,
					TaxCategory:     taxCategory,
					Rate:            &rate,
				})
			}
		}

		return s.itemRepo.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("item created", zap.String("item_code", item.Code))
	return item, nil
}

// GetItem retrieves an item by code
func (s *ItemService) GetItem(ctx context.Context, code string) (*entity.Item, error) {
	item, err := s.itemRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewDoesNotExistError(fmt.Sprintf("Item '%s' does not exist in the system", code))
	}
	return item, nil
}

// ListTaxTemplates lists item tax templates, optionally scoped to a company
func (s *ItemService) ListTaxTemplates(ctx context.Context, companyName string) ([]entity.ItemTaxTemplate, error) {
	var companyID *uuid.UUID
	if companyName != "" {
		company, err := s.companyRepo.GetByName(ctx, companyName)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, apperror.NewDoesNotExistError(
				fmt.Sprintf("Company '%s' does not exist. Please check the company name.", companyName))
		}
		companyID = &company.ID
	}
	return s.masterRepo.ListTaxTemplates(ctx, companyID)
}

// ListTaxCategories lists the enabled tax categories
func (s *ItemService) ListTaxCategories(ctx context.Context) ([]entity.TaxCategory, error) {
	return s.masterRepo.ListTaxCategories(ctx)
}

// ListItemGroups lists the item groups
func (s *ItemService) ListItemGroups(ctx context.Context) ([]entity.ItemGroup, error) {
	return s.masterRepo.ListItemGroups(ctx)
}
