package attendance

import "context"

// AttendanceLogRepository defines the aggregations the engine needs over
// recorded attendance days. The records themselves are written elsewhere.
type AttendanceLogRepository interface {
	// CountLateForMonth counts the late days recorded for one staff
	// member in the given month.
	CountLateForMonth(ctx context.Context, staffID string, year int, month int) (int, error)

	// HasClockedInOn reports whether a clock-in exists for the staff
	// member on the YYYY-MM-DD date.
	HasClockedInOn(ctx context.Context, staffID string, date string) (bool, error)
}
