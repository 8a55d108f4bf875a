package validator

import (
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClockTime reports whether s is a zero-padded "HH:mm" wall-clock
// string.
func IsValidClockTime(s string) bool {
	return clockTimeRegex.MatchString(s)
}

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate reports whether s has the YYYY-MM-DD shape.
func IsValidDate(s string) bool {
	return dateRegex.MatchString(s)
}

// IsValidDayOfWeek reports whether d is a 0=Sunday..6=Saturday index.
func IsValidDayOfWeek(d int) bool {
	return d >= 0 && d <= 6
}
