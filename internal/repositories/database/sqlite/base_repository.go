// Package sqlite keeps the books in a single SQLite file through the pure-Go
// modernc driver. Dates are stored as YYYY-MM-DD text and amounts as decimal
// text so no precision is lost.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
)

// timestampLayout is the storage layout of created_at and last_login.
const timestampLayout = time.RFC3339Nano

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// Ping checks the database file can be reached.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		return apperrors.NewStoreError("failed to ping database", err)
	}
	return nil
}

func formatDate(t time.Time) string {
	return domain.BusinessDate(t).Format(domain.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := domain.ParseBusinessDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad stored date %q: %w", s, err)
	}
	return t, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad stored timestamp %q: %w", s, err)
	}
	return t, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
