package repository

import (
	"context"
	"errors"

	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	domainRepo "github.com/zatca-bridge/invoicing-api/internal/domain/repository"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	err := dbFrom(ctx, r.db).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewDuplicateEntryError("Item code '" + item.Code + "' already exists")
	}
	return err
}

func (r *itemRepository) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	var item entity.Item
	err := dbFrom(ctx, r.db).Preload("Defaults").Preload("Taxes").First(&item, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetByCodes(ctx context.Context, codes []string) ([]entity.Item, error) {
	var items []entity.Item
	err := dbFrom(ctx, r.db).Preload("Defaults").Preload("Taxes").
		Where("code IN ?", codes).
		Find(&items).Error
	return items, err
}

func (r *itemRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.Item{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
