package timeutil

import "time"

// Brunei Darussalam runs at a fixed UTC+8 with no daylight saving. All
// attendance calculations apply that constant offset to the host clock
// instead of consulting the tz database, so results do not depend on the
// host's zone data.
var bruneiZone = time.FixedZone("GMT+8", 8*60*60)

// Clock supplies the current moment. Production code uses SystemClock;
// tests inject a fixed clock to make evaluation deterministic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// BruneiClock reads the current moment from an underlying Clock and
// exposes it in Brunei local time.
type BruneiClock struct {
	clock Clock
}

// NewBruneiClock wraps clock; a nil clock falls back to the system clock.
func NewBruneiClock(clock Clock) BruneiClock {
	if clock == nil {
		clock = systemClock{}
	}
	return BruneiClock{clock: clock}
}

// Now returns the current moment in Brunei local time.
func (b BruneiClock) Now() time.Time {
	return b.clock.Now().In(bruneiZone)
}

// Today returns the current Brunei date as YYYY-MM-DD.
func (b BruneiClock) Today() string {
	return FormatDate(b.Now())
}

// CurrentMinutes returns the current Brunei wall-clock time as minutes
// since midnight.
func (b BruneiClock) CurrentMinutes() int {
	now := b.Now()
	return now.Hour()*60 + now.Minute()
}

// DayOfWeek returns the current Brunei day of week, 0=Sunday..6=Saturday.
func (b BruneiClock) DayOfWeek() int {
	return int(b.Now().Weekday())
}

// ToBruneiISOString formats t as an ISO-8601 timestamp pinned to the
// Brunei offset, e.g. "2024-01-01T09:00:00+08:00".
func ToBruneiISOString(t time.Time) string {
	local := t.In(bruneiZone)
	return FormatDate(local) + "T" + local.Format("15:04:05") + "+08:00"
}
