package attendance

import "github.com/kedai-hq/backoffice-backend-go/internal/domain/shift"

// ClockInStatus is the evaluator's decision for one clock-in attempt
// against a shift start time.
//
// MinutesDiff is reported as an absolute magnitude on the blocked and
// late branches but as the raw signed distance on the on-time branch.
// The asymmetry is part of the contract the clock-in screens rely on.
type ClockInStatus struct {
	Allowed     bool   `json:"allowed"`
	IsEarly     bool   `json:"is_early"`
	IsLate      bool   `json:"is_late"`
	MinutesDiff int    `json:"minutes_diff"`
	Message     string `json:"message,omitempty"`
}

// ClockInValidationResult is the full validation outcome consumed by the
// clock-in screens. Exactly one of the holiday, off-day, or shift-based
// evaluation paths governs a result: a holiday overrides the off-day and
// lateness checks, and an off day overrides shift evaluation.
type ClockInValidationResult struct {
	Allowed         bool                   `json:"allowed"`
	IsLate          bool                   `json:"is_late"`
	IsEarlyBlocked  bool                   `json:"is_early_blocked"`
	IsHoliday       bool                   `json:"is_holiday"`
	IsOffDay        bool                   `json:"is_off_day"`
	LateMinutes     int                    `json:"late_minutes"`
	ExpectedClockIn *string                `json:"expected_clock_in"`
	Message         string                 `json:"message,omitempty"`
	Shift           *shift.ShiftDefinition `json:"shift"`
}

// ClockOutOvertimeResult carries the overtime earned by one clock-out
// plus the expected clock-out time for display.
type ClockOutOvertimeResult struct {
	OvertimeMinutes  int     `json:"overtime_minutes"`
	ExpectedClockOut *string `json:"expected_clock_out"`
}

// LateLimitResult is the monthly late-limit check outcome.
type LateLimitResult struct {
	Exceeded bool `json:"exceeded"`
	Limit    int  `json:"limit"`
	Count    int  `json:"count"`
}
