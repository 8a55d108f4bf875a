package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/attendance"
	"github.com/kedai-hq/backoffice-backend-go/internal/handler/http/response"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ValidateClockIn(w http.ResponseWriter, r *http.Request)
	ClockOutOvertime(w http.ResponseWriter, r *http.Request)
	LateLimit(w http.ResponseWriter, r *http.Request)
	Settings(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ValidateClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ValidateClockIn(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if validator.IsEmpty(staffID) {
		response.HandleError(w, attendance.ErrStaffIDRequired)
		return
	}

	result := h.attendanceService.ValidateClockIn(r.Context(), staffID)
	response.Success(w, result)
}

// ClockOutOvertime implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOutOvertime(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if validator.IsEmpty(staffID) {
		response.HandleError(w, attendance.ErrStaffIDRequired)
		return
	}

	clockOut := r.URL.Query().Get("clock_out")
	if !validator.IsValidClockTime(clockOut) {
		response.HandleError(w, attendance.ErrInvalidClockOutTime)
		return
	}

	result := h.attendanceService.CalculateClockOutOvertime(r.Context(), staffID, clockOut)
	response.Success(w, result)
}

// LateLimit implements AttendanceHandler.
//
// The current month's late count is aggregated from the attendance log
// unless the caller supplies its own count via the "count" query param.
func (h *attendanceHandlerImpl) LateLimit(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if validator.IsEmpty(staffID) {
		response.HandleError(w, attendance.ErrStaffIDRequired)
		return
	}

	var count int
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "count must be a non-negative integer", nil)
			return
		}
		count = parsed
	} else {
		count = h.attendanceService.CountLateThisMonth(r.Context(), staffID)
	}

	result := h.attendanceService.CheckMonthlyLateLimit(r.Context(), staffID, count)
	response.Success(w, result)
}

// Settings implements AttendanceHandler.
func (h *attendanceHandlerImpl) Settings(w http.ResponseWriter, r *http.Request) {
	settings := h.attendanceService.GetSettings(r.Context())
	response.Success(w, settings)
}
