package attendance

import (
	"fmt"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/attendance"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/timeutil"
)

// GetClockInStatus classifies a clock-in attempt at currentMinutes
// (Brunei minutes since midnight) against a shift starting at shiftStart
// ("HH:mm"). The caller supplies the current moment so evaluation stays
// deterministic under test.
//
// Boundary ties go to the lenient branch: exactly earlyLimitMinutes early
// is allowed, exactly gracePeriodMinutes late is still on time.
func GetClockInStatus(currentMinutes int, shiftStart string, earlyLimitMinutes, gracePeriodMinutes int) attendance.ClockInStatus {
	shiftMinutes := timeutil.TimeToMinutes(shiftStart)
	diff := currentMinutes - shiftMinutes

	if diff < -earlyLimitMinutes {
		return attendance.ClockInStatus{
			Allowed:     false,
			IsEarly:     true,
			IsLate:      false,
			MinutesDiff: -diff,
			Message: fmt.Sprintf("Anda cuba clock in %d minit awal. Sila tunggu sampai %s.",
				-diff, timeutil.MinutesToTime(shiftMinutes-earlyLimitMinutes)),
		}
	}

	if diff > gracePeriodMinutes {
		return attendance.ClockInStatus{
			Allowed:     true,
			IsEarly:     false,
			IsLate:      true,
			MinutesDiff: diff,
			Message:     fmt.Sprintf("Anda lewat %d minit.", diff),
		}
	}

	// On time. MinutesDiff keeps its sign here, unlike the branches
	// above which report magnitude.
	return attendance.ClockInStatus{
		Allowed:     true,
		IsEarly:     diff < 0,
		IsLate:      false,
		MinutesDiff: diff,
	}
}

// CalculateOvertimeMinutes returns the minutes worked past shiftEnd when
// they exceed otThresholdMinutes, and 0 otherwise. The threshold is
// exclusive: clocking out exactly otThresholdMinutes past the shift end
// earns nothing.
func CalculateOvertimeMinutes(shiftEnd, clockOutTime string, otThresholdMinutes int) int {
	diff := timeutil.TimeToMinutes(clockOutTime) - timeutil.TimeToMinutes(shiftEnd)
	if diff > otThresholdMinutes {
		return diff
	}
	return 0
}
