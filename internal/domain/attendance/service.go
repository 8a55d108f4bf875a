package attendance

import "context"

// AttendanceService is the shift-validation engine. Every method fails
// open: an unreachable settings, shift, or holiday store degrades to
// permissive defaults and is logged, never surfaced to the caller.
// Availability of the clock-in action is preferred over strict
// enforcement when backing data is unreachable.
type AttendanceService interface {
	// ValidateClockIn decides whether the staff member may clock in right
	// now and whether the attempt counts as late. Precedence: holiday,
	// then off day, then no-shift (permissive), then shift evaluation.
	ValidateClockIn(ctx context.Context, staffID string) ClockInValidationResult

	// CalculateClockOutOvertime computes the overtime earned by clocking
	// out at clockOutTime ("HH:mm") against today's shift.
	CalculateClockOutOvertime(ctx context.Context, staffID string, clockOutTime string) ClockOutOvertimeResult

	// CheckMonthlyLateLimit applies the configured monthly cap to a
	// precomputed late count.
	CheckMonthlyLateLimit(ctx context.Context, staffID string, currentMonthLateCount int) LateLimitResult

	// CountLateThisMonth aggregates the staff member's late days for the
	// current Brunei month. Degrades to 0 when the log store is
	// unreachable.
	CountLateThisMonth(ctx context.Context, staffID string) int

	// GetSettings resolves the attendance thresholds with per-field
	// fallback to the documented defaults.
	GetSettings(ctx context.Context) AttendanceSettings
}
