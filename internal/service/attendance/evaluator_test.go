package attendance

import (
	"testing"

	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
)

const (
	testShiftStart = "09:00"
	testEarlyLimit = 30
	testGrace      = 15
)

func TestGetClockInStatus_TooEarlyBlocked(t *testing.T) {
	t.Parallel()

	// 08:29 is 31 minutes early against a 30-minute limit
	status := GetClockInStatus(timeutil.TimeToMinutes("08:29"), testShiftStart, testEarlyLimit, testGrace)

	assert.False(t, status.Allowed)
	assert.True(t, status.IsEarly)
	assert.False(t, status.IsLate)
	assert.Equal(t, 31, status.MinutesDiff)
	assert.Equal(t, "Anda cuba clock in 31 minit awal. Sila tunggu sampai 08:30.", status.Message)
}

func TestGetClockInStatus_WithinEarlyLimit(t *testing.T) {
	t.Parallel()

	// 08:31 is 29 minutes early, inside the limit
	status := GetClockInStatus(timeutil.TimeToMinutes("08:31"), testShiftStart, testEarlyLimit, testGrace)

	assert.True(t, status.Allowed)
	assert.True(t, status.IsEarly)
	assert.False(t, status.IsLate)
	// On-time branch keeps the signed value
	assert.Equal(t, -29, status.MinutesDiff)
}

func TestGetClockInStatus_ExactlyOnTime(t *testing.T) {
	t.Parallel()

	status := GetClockInStatus(timeutil.TimeToMinutes("09:00"), testShiftStart, testEarlyLimit, testGrace)

	assert.True(t, status.Allowed)
	assert.False(t, status.IsEarly)
	assert.False(t, status.IsLate)
	assert.Equal(t, 0, status.MinutesDiff)
	assert.Empty(t, status.Message)
}

func TestGetClockInStatus_WithinGracePeriod(t *testing.T) {
	t.Parallel()

	// 09:15 is exactly the grace boundary; still on time
	status := GetClockInStatus(timeutil.TimeToMinutes("09:15"), testShiftStart, testEarlyLimit, testGrace)

	assert.True(t, status.Allowed)
	assert.False(t, status.IsLate)
	assert.Equal(t, 15, status.MinutesDiff)
}

func TestGetClockInStatus_LateAfterGrace(t *testing.T) {
	t.Parallel()

	status := GetClockInStatus(timeutil.TimeToMinutes("09:16"), testShiftStart, testEarlyLimit, testGrace)

	assert.True(t, status.Allowed)
	assert.False(t, status.IsEarly)
	assert.True(t, status.IsLate)
	assert.Equal(t, 16, status.MinutesDiff)
	assert.Equal(t, "Anda lewat 16 minit.", status.Message)
}

func TestGetClockInStatus_Boundaries(t *testing.T) {
	t.Parallel()

	// Exactly earlyLimit early: allowed, not blocked
	atLimit := GetClockInStatus(timeutil.TimeToMinutes("08:30"), testShiftStart, testEarlyLimit, testGrace)
	assert.True(t, atLimit.Allowed)
	assert.True(t, atLimit.IsEarly)
	assert.Equal(t, -30, atLimit.MinutesDiff)

	// One past the limit: blocked, magnitude reported
	pastLimit := GetClockInStatus(timeutil.TimeToMinutes("08:29"), testShiftStart, testEarlyLimit, testGrace)
	assert.False(t, pastLimit.Allowed)
	assert.Equal(t, 31, pastLimit.MinutesDiff)

	// Exactly grace late: not late
	atGrace := GetClockInStatus(timeutil.TimeToMinutes("09:15"), testShiftStart, testEarlyLimit, testGrace)
	assert.False(t, atGrace.IsLate)

	// One past grace: late
	pastGrace := GetClockInStatus(timeutil.TimeToMinutes("09:16"), testShiftStart, testEarlyLimit, testGrace)
	assert.True(t, pastGrace.IsLate)
}

func TestCalculateOvertimeMinutes(t *testing.T) {
	t.Parallel()

	// Early and on-time departures earn nothing
	assert.Equal(t, 0, CalculateOvertimeMinutes("18:00", "17:30", 30))
	assert.Equal(t, 0, CalculateOvertimeMinutes("18:00", "18:00", 30))

	// Threshold is exclusive
	assert.Equal(t, 0, CalculateOvertimeMinutes("18:00", "18:30", 30))
	assert.Equal(t, 31, CalculateOvertimeMinutes("18:00", "18:31", 30))

	// Past the threshold the full difference counts
	assert.Equal(t, 120, CalculateOvertimeMinutes("18:00", "20:00", 30))
}
