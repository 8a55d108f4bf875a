package shift

import "context"

// ShiftService resolves shift reference data for the attendance engine
// and the shift-management screens.
type ShiftService interface {
	// GetStaffShiftForToday resolves the applicable shift for the current
	// Brunei day. A missing assignment falls back to the MORNING default
	// definition; a repository failure degrades to an unresolved shift
	// (nil, not off day) rather than returning an error, so an unreachable
	// store never blocks a clock-in attempt.
	GetStaffShiftForToday(ctx context.Context, staffID string) TodayShift

	// ListDefinitions retrieves every shift definition.
	ListDefinitions(ctx context.Context) ([]ShiftDefinitionResponse, error)

	// GetStaffWeek retrieves a staff member's weekly assignments.
	GetStaffWeek(ctx context.Context, staffID string) ([]StaffShiftResponse, error)
}
