package holiday

import "context"

// HolidayRepository defines data access to the holiday calendar.
type HolidayRepository interface {
	// IsHoliday reports whether the YYYY-MM-DD date is a configured
	// public holiday.
	IsHoliday(ctx context.Context, date string) (bool, error)

	// ListByYear retrieves the calendar entries for one year, ordered by
	// date.
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
}
