package fixtures

import (
	"github.com/google/uuid"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/shift"
)

// DefaultShiftDefinitions returns the shift patterns seeded on a fresh
// install. MORNING doubles as the fallback shift for staff with no
// assignment, so it must always exist.
func DefaultShiftDefinitions() []shift.ShiftDefinition {
	return []shift.ShiftDefinition{
		{
			ID:        uuid.NewString(),
			Code:      "MORNING",
			Name:      "Shift Pagi",
			StartTime: "09:00",
			EndTime:   "18:00",
		},
		{
			ID:        uuid.NewString(),
			Code:      "EVENING",
			Name:      "Shift Petang",
			StartTime: "14:00",
			EndTime:   "23:00",
		},
		{
			ID:        uuid.NewString(),
			Code:      "SPLIT",
			Name:      "Shift Berpecah",
			StartTime: "10:00",
			EndTime:   "22:00",
		},
	}
}
