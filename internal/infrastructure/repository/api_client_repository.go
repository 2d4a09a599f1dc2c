package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zatca-bridge/invoicing-api/internal/domain/entity"
	domainRepo "github.com/zatca-bridge/invoicing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type apiClientRepository struct {
	db *gorm.DB
}

// NewAPIClientRepository creates a new API client repository
func NewAPIClientRepository(db *gorm.DB) domainRepo.APIClientRepository {
	return &apiClientRepository{db: db}
}

func (r *apiClientRepository) GetByKeyID(ctx context.Context, keyID string) (*entity.APIClient, error) {
	var client entity.APIClient
	err := dbFrom(ctx, r.db).First(&client, "key_id = ?", keyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *apiClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.APIClient, error) {
	var client entity.APIClient
	err := dbFrom(ctx, r.db).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}
