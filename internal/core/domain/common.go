package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
)

// DateLayout is the wire and storage layout of business dates.
const DateLayout = "2006-01-02"

// MonthLayout labels calendar-month buckets.
const MonthLayout = "2006-01"

// AuditFields holds creation attribution for append-only records.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // Username reference
}

// BusinessDate truncates t to a calendar date at UTC midnight.
func BusinessDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseBusinessDate parses a YYYY-MM-DD string. A trailing time component
// (as spreadsheets often export) is tolerated and dropped.
func ParseBusinessDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return BusinessDate(t), nil
		}
		if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
			return BusinessDate(t), nil
		}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.Validationf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// MonthStart returns the first day of t's calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
