package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	"github.com/SscSPs/shopbooks/internal/models"
	"github.com/SscSPs/shopbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (username, password_hash, role, email, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query, m.Username, m.PasswordHash, m.Role, m.Email, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", user.Username, apperrors.ErrDuplicate)
		}
		return apperrors.NewStoreError("failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT username, password_hash, role, email, last_login, created_at
		FROM users
		WHERE username = $1;
	`
	var m models.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&m.Username,
		&m.PasswordHash,
		&m.Role,
		&m.Email,
		&m.LastLogin,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to find user %s", username), err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $1, email = $2, role = $3 WHERE username = $4`,
		m.PasswordHash, m.Email, m.Role, m.Username)
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to update user %s", user.Username), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) TouchLastLogin(ctx context.Context, username string, at time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET last_login = $1 WHERE username = $2`, at, username)
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to record login of %s", username), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
