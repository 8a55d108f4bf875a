package shift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/shift"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/timeutil"
)

type ShiftServiceImpl struct {
	shiftRepo shift.ShiftRepository
	clock     timeutil.BruneiClock
}

// GetStaffShiftForToday implements shift.ShiftService.
//
// Resolution order: the assignment matching today's day of week; when no
// assignment exists, the MORNING default definition; when the assignment
// is an off day, no shift at all. A repository failure degrades to an
// unresolved shift and is logged; resolution never blocks a clock-in.
func (s *ShiftServiceImpl) GetStaffShiftForToday(ctx context.Context, staffID string) shift.TodayShift {
	dayOfWeek := s.clock.DayOfWeek()

	assignments, err := s.shiftRepo.FetchStaffShifts(ctx, staffID)
	if err != nil {
		slog.Error("Staff shift lookup failed, resolving without a shift",
			"staff_id", staffID, "day_of_week", dayOfWeek, "error", err)
		return shift.TodayShift{Shift: nil, IsOffDay: false, DayOfWeek: dayOfWeek}
	}

	var todayAssignment *shift.StaffShiftAssignment
	for i := range assignments {
		if assignments[i].DayOfWeek == dayOfWeek {
			todayAssignment = &assignments[i]
			break
		}
	}

	if todayAssignment == nil {
		return shift.TodayShift{
			Shift:     s.defaultShift(ctx, staffID),
			IsOffDay:  false,
			DayOfWeek: dayOfWeek,
		}
	}

	if todayAssignment.IsOffDay {
		return shift.TodayShift{Shift: nil, IsOffDay: true, DayOfWeek: dayOfWeek}
	}

	return shift.TodayShift{Shift: todayAssignment.Shift, IsOffDay: false, DayOfWeek: dayOfWeek}
}

// defaultShift looks up the MORNING fallback definition, or nil when it
// does not exist or the lookup fails.
func (s *ShiftServiceImpl) defaultShift(ctx context.Context, staffID string) *shift.ShiftDefinition {
	definitions, err := s.shiftRepo.FetchShiftDefinitions(ctx)
	if err != nil {
		slog.Error("Shift definition lookup failed, resolving without a shift",
			"staff_id", staffID, "error", err)
		return nil
	}
	for i := range definitions {
		if definitions[i].Code == shift.DefaultShiftCode {
			return &definitions[i]
		}
	}
	return nil
}

// ListDefinitions implements shift.ShiftService.
func (s *ShiftServiceImpl) ListDefinitions(ctx context.Context) ([]shift.ShiftDefinitionResponse, error) {
	definitions, err := s.shiftRepo.FetchShiftDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift definitions: %w", err)
	}

	responses := make([]shift.ShiftDefinitionResponse, 0, len(definitions))
	for _, def := range definitions {
		responses = append(responses, mapDefinitionToResponse(def))
	}
	return responses, nil
}

// GetStaffWeek implements shift.ShiftService.
func (s *ShiftServiceImpl) GetStaffWeek(ctx context.Context, staffID string) ([]shift.StaffShiftResponse, error) {
	assignments, err := s.shiftRepo.FetchStaffShifts(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff shifts: %w", err)
	}

	responses := make([]shift.StaffShiftResponse, 0, len(assignments))
	for _, assignment := range assignments {
		resp := shift.StaffShiftResponse{
			DayOfWeek: assignment.DayOfWeek,
			DayName:   timeutil.DayNameMalay(assignment.DayOfWeek),
			IsOffDay:  assignment.IsOffDay,
		}
		if assignment.Shift != nil {
			mapped := mapDefinitionToResponse(*assignment.Shift)
			resp.Shift = &mapped
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func mapDefinitionToResponse(def shift.ShiftDefinition) shift.ShiftDefinitionResponse {
	return shift.ShiftDefinitionResponse{
		ID:        def.ID,
		Code:      def.Code,
		Name:      def.Name,
		StartTime: def.StartTime,
		EndTime:   def.EndTime,
	}
}

func NewShiftService(shiftRepo shift.ShiftRepository, clock timeutil.BruneiClock) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo: shiftRepo,
		clock:     clock,
	}
}
