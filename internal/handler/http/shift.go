package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/attendance"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/shift"
	"github.com/kedai-hq/backoffice-backend-go/internal/handler/http/response"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/validator"
)

type ShiftHandler interface {
	ListDefinitions(w http.ResponseWriter, r *http.Request)
	GetStaffWeek(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// ListDefinitions implements ShiftHandler.
func (h *shiftHandlerImpl) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	definitions, err := h.shiftService.ListDefinitions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, definitions)
}

// GetStaffWeek implements ShiftHandler.
func (h *shiftHandlerImpl) GetStaffWeek(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if validator.IsEmpty(staffID) {
		response.HandleError(w, attendance.ErrStaffIDRequired)
		return
	}

	week, err := h.shiftService.GetStaffWeek(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, week)
}
