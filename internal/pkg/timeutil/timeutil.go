package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes parses an "HH:mm" wall-clock string into minutes since
// midnight. Input is not validated beyond the basic split; malformed
// strings yield zero components, mirroring how callers treat bad shift
// data as "midnight" rather than an error.
func TimeToMinutes(t string) int {
	hh, mm, _ := strings.Cut(t, ":")
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	return hours*60 + minutes
}

// MinutesToTime converts minutes since midnight back to a zero-padded
// "HH:mm" string. Callers are expected to pass values in 0..1439; no
// modulo is applied.
func MinutesToTime(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// TimeDifferenceMinutes returns actual minus expected in minutes.
// Positive means the actual time is later than expected.
func TimeDifferenceMinutes(expectedTime, actualTime string) int {
	return TimeToMinutes(actualTime) - TimeToMinutes(expectedTime)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime formats a wall-clock time as HH:mm.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatMinutesAsTime renders a minute count as a Malay duration label,
// e.g. "30 minit", "1 jam", "1 jam 30 minit".
func FormatMinutesAsTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minit", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d jam", hours)
	}
	return fmt.Sprintf("%d jam %d minit", hours, mins)
}

var dayNamesMalay = []string{"Ahad", "Isnin", "Selasa", "Rabu", "Khamis", "Jumaat", "Sabtu"}

var dayNamesEnglish = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayNameMalay returns the Malay day name for a 0=Sunday day-of-week
// index, or "" when the index is out of range.
func DayNameMalay(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek >= len(dayNamesMalay) {
		return ""
	}
	return dayNamesMalay[dayOfWeek]
}

// DayNameEnglish returns the English day name for a 0=Sunday day-of-week
// index, or "" when the index is out of range.
func DayNameEnglish(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek >= len(dayNamesEnglish) {
		return ""
	}
	return dayNamesEnglish[dayOfWeek]
}
