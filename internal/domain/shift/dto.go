package shift

// TodayShift is the outcome of resolving a staff member's shift for the
// current Brunei day. Shift is nil on an off day and when nothing could
// be resolved at all; the two cases are told apart by IsOffDay.
type TodayShift struct {
	Shift     *ShiftDefinition
	IsOffDay  bool
	DayOfWeek int
}

type ShiftDefinitionResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type StaffShiftResponse struct {
	DayOfWeek int                      `json:"day_of_week"`
	DayName   string                   `json:"day_name"`
	IsOffDay  bool                     `json:"is_off_day"`
	Shift     *ShiftDefinitionResponse `json:"shift,omitempty"`
}
