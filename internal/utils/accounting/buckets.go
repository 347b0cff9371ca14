package accounting

import (
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
)

// BucketLabel maps a business date onto the label of its time bucket.
// Days label themselves, weeks end on Sunday and carry that Sunday's date,
// months carry their first day.
func BucketLabel(date time.Time, g domain.Granularity) time.Time {
	d := domain.BusinessDate(date)
	switch g {
	case domain.GranularityWeek:
		offset := (7 - int(d.Weekday())) % 7
		return d.AddDate(0, 0, offset)
	case domain.GranularityMonth:
		return domain.MonthStart(d)
	default:
		return d
	}
}

// MonthKey labels a date by calendar month.
func MonthKey(date time.Time) string {
	return date.Format(domain.MonthLayout)
}
