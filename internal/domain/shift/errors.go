package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift definition not found")
	ErrAssignmentNotFound = errors.New("staff shift assignment not found")
	ErrInvalidDayOfWeek   = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
)
