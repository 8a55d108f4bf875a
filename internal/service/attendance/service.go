package attendance

import (
	"context"
	"log/slog"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/attendance"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/holiday"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/setting"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/shift"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	shiftService      shift.ShiftService
	settingRepo       setting.SystemSettingRepository
	holidayRepo       holiday.HolidayRepository
	attendanceLogRepo attendance.AttendanceLogRepository
	clock             timeutil.BruneiClock
}

// ValidateClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ValidateClockIn(ctx context.Context, staffID string) attendance.ClockInValidationResult {
	today := a.clock.Today()

	isHoliday, err := a.holidayRepo.IsHoliday(ctx, today)
	if err != nil {
		slog.Error("Holiday lookup failed, treating as working day",
			"staff_id", staffID, "date", today, "error", err)
		isHoliday = false
	}

	todayShift := a.shiftService.GetStaffShiftForToday(ctx, staffID)

	// Holiday overrides off-day and lateness checks. The shift lookup is
	// still informational: expected clock-in is shown when known.
	if isHoliday {
		return attendance.ClockInValidationResult{
			Allowed:         true,
			IsHoliday:       true,
			ExpectedClockIn: shiftStartTime(todayShift.Shift),
			Shift:           todayShift.Shift,
		}
	}

	if todayShift.IsOffDay {
		return attendance.ClockInValidationResult{
			Allowed:  true,
			IsOffDay: true,
			Message:  "Hari ini hari cuti anda",
		}
	}

	// No shift resolvable: clock-in is allowed with no lateness check.
	// Known gap: a schedule data-entry hole bypasses enforcement.
	if todayShift.Shift == nil {
		return attendance.ClockInValidationResult{Allowed: true}
	}

	settings := a.GetSettings(ctx)
	status := GetClockInStatus(
		a.clock.CurrentMinutes(),
		todayShift.Shift.StartTime,
		settings.EarlyLimitMinutes,
		settings.GraceMinutes,
	)

	lateMinutes := 0
	if status.IsLate {
		lateMinutes = status.MinutesDiff
	}

	return attendance.ClockInValidationResult{
		Allowed:         status.Allowed,
		IsLate:          status.IsLate,
		IsEarlyBlocked:  !status.Allowed && status.IsEarly,
		LateMinutes:     lateMinutes,
		ExpectedClockIn: &todayShift.Shift.StartTime,
		Message:         status.Message,
		Shift:           todayShift.Shift,
	}
}

// CalculateClockOutOvertime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CalculateClockOutOvertime(ctx context.Context, staffID string, clockOutTime string) attendance.ClockOutOvertimeResult {
	todayShift := a.shiftService.GetStaffShiftForToday(ctx, staffID)
	if todayShift.Shift == nil {
		return attendance.ClockOutOvertimeResult{OvertimeMinutes: 0, ExpectedClockOut: nil}
	}

	settings := a.GetSettings(ctx)
	otMinutes := CalculateOvertimeMinutes(todayShift.Shift.EndTime, clockOutTime, settings.OTThresholdMinutes)

	return attendance.ClockOutOvertimeResult{
		OvertimeMinutes:  otMinutes,
		ExpectedClockOut: &todayShift.Shift.EndTime,
	}
}

// CheckMonthlyLateLimit implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckMonthlyLateLimit(ctx context.Context, staffID string, currentMonthLateCount int) attendance.LateLimitResult {
	settings := a.GetSettings(ctx)

	return attendance.LateLimitResult{
		Exceeded: currentMonthLateCount >= settings.MaxLatePerMonth,
		Limit:    settings.MaxLatePerMonth,
		Count:    currentMonthLateCount,
	}
}

// CountLateThisMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CountLateThisMonth(ctx context.Context, staffID string) int {
	now := a.clock.Now()
	count, err := a.attendanceLogRepo.CountLateForMonth(ctx, staffID, now.Year(), int(now.Month()))
	if err != nil {
		slog.Error("Late count aggregation failed, treating as zero",
			"staff_id", staffID, "error", err)
		return 0
	}
	return count
}

func shiftStartTime(s *shift.ShiftDefinition) *string {
	if s == nil {
		return nil
	}
	return &s.StartTime
}

func NewAttendanceService(
	shiftService shift.ShiftService,
	settingRepo setting.SystemSettingRepository,
	holidayRepo holiday.HolidayRepository,
	attendanceLogRepo attendance.AttendanceLogRepository,
	clock timeutil.BruneiClock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		shiftService:      shiftService,
		settingRepo:       settingRepo,
		holidayRepo:       holidayRepo,
		attendanceLogRepo: attendanceLogRepo,
		clock:             clock,
	}
}
