package response

import (
	"errors"
	"net/http"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/attendance"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/setting"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/shift"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrStaffIDRequired):
		BadRequest(w, "Staff ID is required", nil)
	case errors.Is(err, attendance.ErrInvalidClockOutTime):
		BadRequest(w, "Clock-out time must be in HH:mm format", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift definition not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Staff shift assignment not found")
	case errors.Is(err, shift.ErrInvalidDayOfWeek):
		BadRequest(w, "Day of week must be between 0 (Sunday) and 6 (Saturday)", nil)

	// Settings domain errors
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "System setting not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
