package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/attendance"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/shift"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/timeutil"
)

// ReminderJobs sweeps for staff who are past their grace period without a
// clock-in and logs a reminder for the ops dashboard to pick up.
type ReminderJobs struct {
	shiftRepo         shift.ShiftRepository
	shiftService      shift.ShiftService
	attendanceService attendance.AttendanceService
	attendanceLogRepo attendance.AttendanceLogRepository
	clock             timeutil.BruneiClock
}

func NewReminderJobs(
	shiftRepo shift.ShiftRepository,
	shiftService shift.ShiftService,
	attendanceService attendance.AttendanceService,
	attendanceLogRepo attendance.AttendanceLogRepository,
	clock timeutil.BruneiClock,
) *ReminderJobs {
	return &ReminderJobs{
		shiftRepo:         shiftRepo,
		shiftService:      shiftService,
		attendanceService: attendanceService,
		attendanceLogRepo: attendanceLogRepo,
		clock:             clock,
	}
}

func (j *ReminderJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("clock_in_reminder", interval, j.RemindMissingClockIns)
}

// RemindMissingClockIns flags every staff member whose shift started more
// than the grace period ago today with no clock-in recorded yet.
func (j *ReminderJobs) RemindMissingClockIns(ctx context.Context) error {
	dayOfWeek := j.clock.DayOfWeek()
	today := j.clock.Today()
	currentMinutes := j.clock.CurrentMinutes()

	staffIDs, err := j.shiftRepo.ListStaffIDsForDay(ctx, dayOfWeek)
	if err != nil {
		return fmt.Errorf("failed to list staff for reminder sweep: %w", err)
	}

	settings := j.attendanceService.GetSettings(ctx)

	reminded := 0
	for _, staffID := range staffIDs {
		todayShift := j.shiftService.GetStaffShiftForToday(ctx, staffID)
		if todayShift.Shift == nil || todayShift.IsOffDay {
			continue
		}

		graceEnd := timeutil.TimeToMinutes(todayShift.Shift.StartTime) + settings.GraceMinutes
		if currentMinutes <= graceEnd {
			continue
		}

		hasClockIn, err := j.attendanceLogRepo.HasClockedInOn(ctx, staffID, today)
		if err != nil {
			slog.Error("Cron: clock-in check failed", "staff_id", staffID, "error", err)
			continue
		}
		if hasClockIn {
			continue
		}

		slog.Warn("Staff past grace period without clock-in",
			"staff_id", staffID,
			"shift", todayShift.Shift.Code,
			"expected_clock_in", todayShift.Shift.StartTime,
			"minutes_overdue", currentMinutes-timeutil.TimeToMinutes(todayShift.Shift.StartTime))
		reminded++
	}

	slog.Info("Cron: clock-in reminder sweep done",
		"candidates", len(staffIDs), "reminded", reminded)
	return nil
}
