package shift

// DefaultShiftCode is the shift definition used when a staff member has
// no assignment for the current day of week.
const DefaultShiftCode = "MORNING"

// ShiftDefinition is a named shift pattern. Start and end times are
// "HH:mm" wall-clock strings in Brunei local time. Reference data owned
// by the shift-management screens; read-only to the attendance engine.
type ShiftDefinition struct {
	ID        string
	Code      string
	Name      string
	StartTime string
	EndTime   string
}

// StaffShiftAssignment binds a staff member to either a shift or an off
// day for one day of week (0=Sunday..6=Saturday). Shift is nil when
// IsOffDay is set or when the referenced definition has been removed.
type StaffShiftAssignment struct {
	ID        string
	StaffID   string
	DayOfWeek int
	Shift     *ShiftDefinition
	IsOffDay  bool
}
