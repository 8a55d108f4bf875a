package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/attendance"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/holiday"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/setting"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/shift"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== TEST DOUBLES =====

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time { return f.t }

// bruneiClockAt builds a clock frozen at the given Brunei wall-clock
// moment. 2024-01-01 is a Monday.
func bruneiClockAt(hour, minute int) timeutil.BruneiClock {
	utc := time.Date(2024, 1, 1, hour-8, minute, 0, 0, time.UTC)
	return timeutil.NewBruneiClock(fixedClock{t: utc})
}

type stubShiftService struct {
	today shift.TodayShift
}

func (s *stubShiftService) GetStaffShiftForToday(ctx context.Context, staffID string) shift.TodayShift {
	return s.today
}

func (s *stubShiftService) ListDefinitions(ctx context.Context) ([]shift.ShiftDefinitionResponse, error) {
	return nil, nil
}

func (s *stubShiftService) GetStaffWeek(ctx context.Context, staffID string) ([]shift.StaffShiftResponse, error) {
	return nil, nil
}

type stubSettingRepo struct {
	values map[string]string
	err    error
}

func (s *stubSettingRepo) GetSystemSetting(ctx context.Context, key string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	value, ok := s.values[key]
	if !ok {
		return "", setting.ErrSettingNotFound
	}
	return value, nil
}

type stubHolidayRepo struct {
	holidays map[string]bool
	err      error
}

func (s *stubHolidayRepo) IsHoliday(ctx context.Context, date string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.holidays[date], nil
}

func (s *stubHolidayRepo) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return nil, nil
}

type stubLogRepo struct {
	lateCount int
	clockedIn map[string]bool
	err       error
}

func (s *stubLogRepo) CountLateForMonth(ctx context.Context, staffID string, year, month int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.lateCount, nil
}

func (s *stubLogRepo) HasClockedInOn(ctx context.Context, staffID string, date string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.clockedIn[date], nil
}

var morningShift = shift.ShiftDefinition{
	ID:        "1",
	Code:      "MORNING",
	Name:      "Shift Pagi",
	StartTime: "09:00",
	EndTime:   "18:00",
}

func defaultSettingValues() map[string]string {
	return map[string]string{
		setting.KeyLateThresholdMinutes:     "15",
		setting.KeyEarlyClockInLimitMinutes: "30",
		setting.KeyOvertimeThresholdMinutes: "30",
		setting.KeyMaxLatePerMonth:          "3",
	}
}

func newTestService(
	today shift.TodayShift,
	settingRepo *stubSettingRepo,
	holidayRepo *stubHolidayRepo,
	logRepo *stubLogRepo,
	clock timeutil.BruneiClock,
) attendance.AttendanceService {
	return NewAttendanceService(
		&stubShiftService{today: today},
		settingRepo,
		holidayRepo,
		logRepo,
		clock,
	)
}

// ===== VALIDATE CLOCK-IN TESTS =====

func TestValidateClockIn_OnTime(t *testing.T) {
	t.Parallel()

	today := shift.TodayShift{Shift: &morningShift, DayOfWeek: 1}
	svc := newTestService(today,
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(8, 50),
	)

	result := svc.ValidateClockIn(context.Background(), "staff-1")

	assert.True(t, result.Allowed)
	assert.False(t, result.IsLate)
	assert.False(t, result.IsEarlyBlocked)
	assert.False(t, result.IsHoliday)
	assert.False(t, result.IsOffDay)
	assert.Equal(t, 0, result.LateMinutes)
	require.NotNil(t, result.ExpectedClockIn)
	assert.Equal(t, "09:00", *result.ExpectedClockIn)
	require.NotNil(t, result.Shift)
	assert.Equal(t, "MORNING", result.Shift.Code)
}

func TestValidateClockIn_LateAfterGrace(t *testing.T) {
	t.Parallel()

	today := shift.TodayShift{Shift: &morningShift, DayOfWeek: 1}
	svc := newTestService(today,
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(9, 16),
	)

	result := svc.ValidateClockIn(context.Background(), "staff-1")

	assert.True(t, result.Allowed)
	assert.True(t, result.IsLate)
	assert.Equal(t, 16, result.LateMinutes)
	assert.Equal(t, "Anda lewat 16 minit.", result.Message)
}

func TestValidateClockIn_TooEarlyBlocked(t *testing.T) {
	t.Parallel()

	today := shift.TodayShift{Shift: &morningShift, DayOfWeek: 1}
	svc := newTestService(today,
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(8, 29),
	)

	result := svc.ValidateClockIn(context.Background(), "staff-1")

	assert.False(t, result.Allowed)
	assert.True(t, result.IsEarlyBlocked)
	assert.False(t, result.IsLate)
	assert.Equal(t, 0, result.LateMinutes)
}

func TestValidateClockIn_HolidayOverridesLateness(t *testing.T) {
	t.Parallel()

	today := shift.TodayShift{Shift: &morningShift, DayOfWeek: 1}
	svc := newTestService(today,
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{holidays: map[string]bool{"2024-01-01": true}},
		&stubLogRepo{},
		bruneiClockAt(11, 45), // far past grace; holiday still wins
	)

	result := svc.ValidateClockIn(context.Background(), "staff-1")

	assert.True(t, result.Allowed)
	assert.True(t, result.IsHoliday)
	assert.False(t, result.IsLate)
	assert.False(t, result.IsOffDay)
	// Informational shift lookup survives the holiday override
	require.NotNil(t, result.ExpectedClockIn)
	assert.Equal(t, "09:00", *result.ExpectedClockIn)
}

func TestValidateClockIn_OffDay(t *testing.T) {
	t.Parallel()

	today := shift.TodayShift{Shift: nil, IsOffDay: true, DayOfWeek: 1}
	svc := newTestService(today,
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(9, 0),
	)

	result := svc.ValidateClockIn(context.Background(), "staff-1")

	assert.True(t, result.Allowed)
	assert.True(t, result.IsOffDay)
	assert.Nil(t, result.Shift)
	assert.Nil(t, result.ExpectedClockIn)
	assert.Contains(t, result.Message, "cuti")
}

func TestValidateClockIn_NoShiftIsPermissive(t *testing.T) {
	t.Parallel()

	today := shift.TodayShift{Shift: nil, IsOffDay: false, DayOfWeek: 1}
	svc := newTestService(today,
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(13, 0), // hours late, but nothing to be late against
	)

	result := svc.ValidateClockIn(context.Background(), "staff-1")

	assert.True(t, result.Allowed)
	assert.False(t, result.IsLate)
	assert.False(t, result.IsHoliday)
	assert.False(t, result.IsOffDay)
	assert.Nil(t, result.ExpectedClockIn)
}

func TestValidateClockIn_HolidayLookupFailureFailsOpen(t *testing.T) {
	t.Parallel()

	today := shift.TodayShift{Shift: &morningShift, DayOfWeek: 1}
	svc := newTestService(today,
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{err: errors.New("store unreachable")},
		&stubLogRepo{},
		bruneiClockAt(9, 0),
	)

	result := svc.ValidateClockIn(context.Background(), "staff-1")

	assert.True(t, result.Allowed)
	assert.False(t, result.IsHoliday)
}

// ===== SETTINGS LOADER TESTS =====

func TestGetSettings_FromStore(t *testing.T) {
	t.Parallel()

	svc := newTestService(shift.TodayShift{},
		&stubSettingRepo{values: map[string]string{
			setting.KeyLateThresholdMinutes:     "10",
			setting.KeyEarlyClockInLimitMinutes: "45",
			setting.KeyOvertimeThresholdMinutes: "20",
			setting.KeyMaxLatePerMonth:          "5",
		}},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(9, 0),
	)

	settings := svc.GetSettings(context.Background())

	assert.Equal(t, 10, settings.GraceMinutes)
	assert.Equal(t, 45, settings.EarlyLimitMinutes)
	assert.Equal(t, 20, settings.OTThresholdMinutes)
	assert.Equal(t, 5, settings.MaxLatePerMonth)
}

func TestGetSettings_PerFieldFallback(t *testing.T) {
	t.Parallel()

	// One key present, one unparseable, two missing
	svc := newTestService(shift.TodayShift{},
		&stubSettingRepo{values: map[string]string{
			setting.KeyLateThresholdMinutes:     "20",
			setting.KeyOvertimeThresholdMinutes: "not-a-number",
		}},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(9, 0),
	)

	settings := svc.GetSettings(context.Background())

	assert.Equal(t, 20, settings.GraceMinutes)
	assert.Equal(t, attendance.DefaultEarlyLimitMinutes, settings.EarlyLimitMinutes)
	assert.Equal(t, attendance.DefaultOTThresholdMinutes, settings.OTThresholdMinutes)
	assert.Equal(t, attendance.DefaultMaxLatePerMonth, settings.MaxLatePerMonth)
}

func TestGetSettings_StoreUnreachableReturnsDefaults(t *testing.T) {
	t.Parallel()

	svc := newTestService(shift.TodayShift{},
		&stubSettingRepo{err: errors.New("connection refused")},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(9, 0),
	)

	settings := svc.GetSettings(context.Background())

	assert.Equal(t, attendance.DefaultSettings(), settings)
}

// ===== CLOCK-OUT OVERTIME TESTS =====

func TestCalculateClockOutOvertime_PastThreshold(t *testing.T) {
	t.Parallel()

	today := shift.TodayShift{Shift: &morningShift, DayOfWeek: 1}
	svc := newTestService(today,
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(18, 31),
	)

	result := svc.CalculateClockOutOvertime(context.Background(), "staff-1", "18:31")

	assert.Equal(t, 31, result.OvertimeMinutes)
	require.NotNil(t, result.ExpectedClockOut)
	assert.Equal(t, "18:00", *result.ExpectedClockOut)
}

func TestCalculateClockOutOvertime_AtThreshold(t *testing.T) {
	t.Parallel()

	today := shift.TodayShift{Shift: &morningShift, DayOfWeek: 1}
	svc := newTestService(today,
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(18, 30),
	)

	result := svc.CalculateClockOutOvertime(context.Background(), "staff-1", "18:30")

	assert.Equal(t, 0, result.OvertimeMinutes)
}

func TestCalculateClockOutOvertime_NoShift(t *testing.T) {
	t.Parallel()

	svc := newTestService(shift.TodayShift{},
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(18, 31),
	)

	result := svc.CalculateClockOutOvertime(context.Background(), "staff-1", "18:31")

	assert.Equal(t, 0, result.OvertimeMinutes)
	assert.Nil(t, result.ExpectedClockOut)
}

// ===== LATE LIMIT TESTS =====

func TestCheckMonthlyLateLimit(t *testing.T) {
	t.Parallel()

	svc := newTestService(shift.TodayShift{},
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{},
		bruneiClockAt(9, 0),
	)

	under := svc.CheckMonthlyLateLimit(context.Background(), "staff-1", 2)
	assert.False(t, under.Exceeded)
	assert.Equal(t, 3, under.Limit)
	assert.Equal(t, 2, under.Count)

	// The cap is inclusive: reaching the limit already exceeds it
	atLimit := svc.CheckMonthlyLateLimit(context.Background(), "staff-1", 3)
	assert.True(t, atLimit.Exceeded)

	over := svc.CheckMonthlyLateLimit(context.Background(), "staff-1", 4)
	assert.True(t, over.Exceeded)
}

func TestCountLateThisMonth(t *testing.T) {
	t.Parallel()

	svc := newTestService(shift.TodayShift{},
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{lateCount: 2},
		bruneiClockAt(9, 0),
	)

	assert.Equal(t, 2, svc.CountLateThisMonth(context.Background(), "staff-1"))
}

func TestCountLateThisMonth_StoreUnreachable(t *testing.T) {
	t.Parallel()

	svc := newTestService(shift.TodayShift{},
		&stubSettingRepo{values: defaultSettingValues()},
		&stubHolidayRepo{},
		&stubLogRepo{err: errors.New("connection refused")},
		bruneiClockAt(9, 0),
	)

	assert.Equal(t, 0, svc.CountLateThisMonth(context.Background(), "staff-1"))
}
