package attendance

import "time"

// Defaults applied whenever the settings store is unreachable or a key
// is missing or unparseable.
const (
	DefaultGraceMinutes       = 15
	DefaultEarlyLimitMinutes  = 30
	DefaultOTThresholdMinutes = 30
	DefaultMaxLatePerMonth    = 3
)

// AttendanceSettings bundles the configurable thresholds the engine
// evaluates against.
type AttendanceSettings struct {
	GraceMinutes       int `json:"grace_minutes"`
	EarlyLimitMinutes  int `json:"early_limit_minutes"`
	OTThresholdMinutes int `json:"ot_threshold_minutes"`
	MaxLatePerMonth    int `json:"max_late_per_month"`
}

// DefaultSettings returns the full fallback bundle.
func DefaultSettings() AttendanceSettings {
	return AttendanceSettings{
		GraceMinutes:       DefaultGraceMinutes,
		EarlyLimitMinutes:  DefaultEarlyLimitMinutes,
		OTThresholdMinutes: DefaultOTThresholdMinutes,
		MaxLatePerMonth:    DefaultMaxLatePerMonth,
	}
}

// AttendanceLog is one recorded attendance day. Records are written by
// the surrounding clock-in/out screens; the engine only aggregates them
// for the monthly late limit and the reminder job.
type AttendanceLog struct {
	ID              string
	StaffID         string
	Date            time.Time
	ClockIn         *time.Time
	ClockOut        *time.Time
	IsLate          bool
	LateMinutes     int
	OvertimeMinutes int
}
