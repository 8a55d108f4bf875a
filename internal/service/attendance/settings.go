package attendance

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/attendance"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/setting"
)

// GetSettings implements attendance.AttendanceService.
//
// The four keys are fetched concurrently and each falls back to its
// default independently; a missing or unparseable value never poisons
// the others. The loader itself never fails.
func (a *AttendanceServiceImpl) GetSettings(ctx context.Context) attendance.AttendanceSettings {
	settings := attendance.DefaultSettings()

	fields := []struct {
		key  string
		dest *int
	}{
		{setting.KeyLateThresholdMinutes, &settings.GraceMinutes},
		{setting.KeyEarlyClockInLimitMinutes, &settings.EarlyLimitMinutes},
		{setting.KeyOvertimeThresholdMinutes, &settings.OTThresholdMinutes},
		{setting.KeyMaxLatePerMonth, &settings.MaxLatePerMonth},
	}

	var wg sync.WaitGroup
	for _, field := range fields {
		field := field
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := a.settingRepo.GetSystemSetting(ctx, field.key)
			if err != nil {
				slog.Warn("Attendance setting unavailable, using default",
					"key", field.key, "error", err)
				return
			}
			parsed, err := strconv.Atoi(value)
			if err != nil {
				slog.Warn("Attendance setting not numeric, using default",
					"key", field.key, "value", value)
				return
			}
			*field.dest = parsed
		}()
	}
	wg.Wait()

	return settings
}
