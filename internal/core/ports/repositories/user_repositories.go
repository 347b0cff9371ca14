package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByUsername retrieves a user. Returns apperrors.ErrNotFound when absent.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the username is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates the password hash, email and role of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, username string, at time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
