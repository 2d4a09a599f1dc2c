package service

import (
	"context"

	"github.com/zatca-bridge/invoicing-api/internal/domain/repository"
	"github.com/zatca-bridge/invoicing-api/pkg/apperror"
	"github.com/zatca-bridge/invoicing-api/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService exchanges API credentials for JWT token pairs
type AuthService struct {
	clientRepo repository.APIClientRepository
	jwtManager *utils.JWTManager
	log        *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(clientRepo repository.APIClientRepository, jwtManager *utils.JWTManager, log *zap.Logger) *AuthService {
	return &AuthService{
		clientRepo: clientRepo,
		jwtManager: jwtManager,
		log:        log,
	}
}

// TokenPair holds an access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// IssueToken verifies a key id/secret pair and issues tokens
func (s *AuthService) IssueToken(ctx context.Context, keyID, secret string) (*TokenPair, error) {
	client, err := s.clientRepo.GetByKeyID(ctx, keyID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if client.Disabled {
		return nil, apperror.NewPermissionError("API client is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.SecretHash), []byte(secret)); err != nil {
		s.log.Warn("failed credential check", zap.String("key_id", keyID))
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(client.ID, client.Name, client.PermissionList())
	if err != nil {
		return nil, apperror.NewUnexpectedError("Failed to generate access token")
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(client.ID)
	if err != nil {
		return nil, apperror.NewUnexpectedError("Failed to generate refresh token")
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	clientID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.Disabled {
		return nil, apperror.ErrUnauthorized
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(client.ID, client.Name, client.PermissionList())
	if err != nil {
		return nil, apperror.NewUnexpectedError("Failed to generate access token")
	}
	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(client.ID)
	if err != nil {
		return nil, apperror.NewUnexpectedError("Failed to generate refresh token")
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		TokenType:    "Bearer",
	}, nil
}
