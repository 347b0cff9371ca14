package services

import (
	"context"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/platform/config"
	"github.com/SscSPs/shopbooks/internal/utils"
)

// tokenService issues the JWT access tokens the auth middleware checks.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	accessToken, expiryTime, err := utils.GenerateJWT(user.Username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
