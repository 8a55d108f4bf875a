package setting

// System setting keys read by the attendance engine.
const (
	KeyLateThresholdMinutes     = "late_threshold_minutes"
	KeyEarlyClockInLimitMinutes = "early_clock_in_limit_minutes"
	KeyOvertimeThresholdMinutes = "overtime_threshold_minutes"
	KeyMaxLatePerMonth          = "max_late_per_month"
)

// SystemSetting is one row of the key-value settings store.
type SystemSetting struct {
	Key   string
	Value string
}
