package shift

import "context"

// ShiftRepository defines data access for shift reference data.
type ShiftRepository interface {
	// FetchStaffShifts retrieves all weekly assignments for one staff
	// member, at most one per day of week.
	FetchStaffShifts(ctx context.Context, staffID string) ([]StaffShiftAssignment, error)

	// FetchShiftDefinitions retrieves every shift definition.
	FetchShiftDefinitions(ctx context.Context) ([]ShiftDefinition, error)

	// ListStaffIDsForDay retrieves the staff IDs that have a working
	// (non off-day) assignment on the given day of week.
	ListStaffIDsForDay(ctx context.Context, dayOfWeek int) ([]string, error)

	// EnsureDefaultDefinitions inserts the default shift definitions when
	// the table is empty. Used at startup so the MORNING fallback always
	// resolves on a fresh install.
	EnsureDefaultDefinitions(ctx context.Context, defaults []ShiftDefinition) error
}
