package attendance

import "errors"

var (
	ErrStaffIDRequired     = errors.New("staff ID is required")
	ErrInvalidClockOutTime = errors.New("clock-out time must be in HH:mm format")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
)
