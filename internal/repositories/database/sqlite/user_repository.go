package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	"github.com/SscSPs/shopbooks/internal/models"
	"github.com/SscSPs/shopbooks/internal/utils/mapping"
)

type SQLiteUserRepository struct {
	db *sql.DB
}

func newSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

var _ portsrepo.UserRepositoryFacade = (*SQLiteUserRepository)(nil)

func (r *SQLiteUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role, email, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.Username, m.PasswordHash, m.Role, m.Email, formatTimestamp(m.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", user.Username, apperrors.ErrDuplicate)
		}
		return apperrors.NewStoreError("failed to save user", err)
	}
	return nil
}

func (r *SQLiteUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m models.User
	var lastLogin sql.NullString
	var createdAt string
	err := r.db.QueryRowContext(ctx, `
		SELECT username, password_hash, role, email, last_login, created_at
		FROM users
		WHERE username = ?`, username).Scan(
		&m.Username,
		&m.PasswordHash,
		&m.Role,
		&m.Email,
		&lastLogin,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to find user %s", username), err)
	}

	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to read user %s", username), err)
	}
	if lastLogin.Valid {
		at, err := parseTimestamp(lastLogin.String)
		if err != nil {
			return nil, apperrors.NewStoreError(fmt.Sprintf("failed to read user %s", username), err)
		}
		m.LastLogin = &at
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *SQLiteUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, email = ?, role = ? WHERE username = ?`,
		m.PasswordHash, m.Email, m.Role, m.Username)
	return checkAffected(res, err, fmt.Sprintf("failed to update user %s", user.Username))
}

func (r *SQLiteUserRepository) TouchLastLogin(ctx context.Context, username string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE username = ?`, formatTimestamp(at), username)
	return checkAffected(res, err, fmt.Sprintf("failed to record login of %s", username))
}

func checkAffected(res sql.Result, err error, message string) error {
	if err != nil {
		return apperrors.NewStoreError(message, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError(message, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
