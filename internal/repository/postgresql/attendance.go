package postgresql

import (
	"context"
	"fmt"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/attendance"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/database"
)

type attendanceLogRepositoryImpl struct {
	db *database.DB
}

// CountLateForMonth implements attendance.AttendanceLogRepository.
func (a *attendanceLogRepositoryImpl) CountLateForMonth(ctx context.Context, staffID string, year int, month int) (int, error) {
	q := GetQuerier(ctx, a.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM attendance_logs
		WHERE staff_id = $1
		  AND is_late = TRUE
		  AND EXTRACT(YEAR FROM log_date) = $2
		  AND EXTRACT(MONTH FROM log_date) = $3
	`, staffID, year, month).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count late days: %w", err)
	}

	return count, nil
}

// HasClockedInOn implements attendance.AttendanceLogRepository.
func (a *attendanceLogRepositoryImpl) HasClockedInOn(ctx context.Context, staffID string, date string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM attendance_logs
			WHERE staff_id = $1 AND log_date = $2::date AND clock_in IS NOT NULL
		)
	`, staffID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check clock-in for %s: %w", date, err)
	}

	return exists, nil
}

func NewAttendanceLogRepository(db *database.DB) attendance.AttendanceLogRepository {
	return &attendanceLogRepositoryImpl{db: db}
}
