package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/holiday"
	"github.com/kedai-hq/backoffice-backend-go/internal/handler/http/response"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/timeutil"
)

type HolidayHandler interface {
	ListByYear(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayRepo holiday.HolidayRepository
	clock       timeutil.BruneiClock
}

func NewHolidayHandler(holidayRepo holiday.HolidayRepository, clock timeutil.BruneiClock) HolidayHandler {
	return &holidayHandlerImpl{
		holidayRepo: holidayRepo,
		clock:       clock,
	}
}

// ListByYear implements HolidayHandler. Defaults to the current Brunei
// year when no "year" query param is given.
func (h *holidayHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	year := h.clock.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
		year = parsed
	}

	holidays, err := h.holidayRepo.ListByYear(r.Context(), year)
	if err != nil {
		slog.Error("Failed to list holidays", "year", year, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, holidays)
}
