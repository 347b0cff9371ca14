package services

import (
	"context"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT whose subject is the username.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
