package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time { return f.t }

func TestTimeToMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 60, TimeToMinutes("01:00"))
	assert.Equal(t, 90, TimeToMinutes("01:30"))
	assert.Equal(t, 1439, TimeToMinutes("23:59"))
}

func TestMinutesToTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "01:00", MinutesToTime(60))
	assert.Equal(t, "01:30", MinutesToTime(90))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tc := range []string{"00:00", "00:01", "08:30", "09:15", "12:00", "18:45", "23:59"} {
		assert.Equal(t, tc, MinutesToTime(TimeToMinutes(tc)))
	}
}

func TestTimeDifferenceMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TimeDifferenceMinutes("09:00", "09:00"))
	assert.Equal(t, 15, TimeDifferenceMinutes("09:00", "09:15"))
	assert.Equal(t, -15, TimeDifferenceMinutes("09:00", "08:45"))
}

func TestTimeDifferenceMinutes_Antisymmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"09:00", "09:15"},
		{"08:30", "18:00"},
		{"00:00", "23:59"},
		{"12:00", "12:00"},
	}
	for _, pair := range pairs {
		assert.Equal(t,
			TimeDifferenceMinutes(pair[0], pair[1]),
			-TimeDifferenceMinutes(pair[1], pair[0]),
		)
	}
}

func TestFormatMinutesAsTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "30 minit", FormatMinutesAsTime(30))
	assert.Equal(t, "1 jam", FormatMinutesAsTime(60))
	assert.Equal(t, "1 jam 30 minit", FormatMinutesAsTime(90))
	assert.Equal(t, "2 jam", FormatMinutesAsTime(120))
	assert.Equal(t, "0 minit", FormatMinutesAsTime(0))
}

func TestDayNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ahad", DayNameMalay(0))
	assert.Equal(t, "Sabtu", DayNameMalay(6))
	assert.Equal(t, "Sunday", DayNameEnglish(0))
	assert.Equal(t, "Saturday", DayNameEnglish(6))
	assert.Equal(t, "", DayNameMalay(7))
	assert.Equal(t, "", DayNameEnglish(-1))
}

func TestBruneiClock_FixedOffset(t *testing.T) {
	t.Parallel()

	// 2024-01-01 23:30 UTC is already 2024-01-02 07:30 in Brunei
	clock := NewBruneiClock(fixedClock{t: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)})

	assert.Equal(t, "2024-01-02", clock.Today())
	assert.Equal(t, 7*60+30, clock.CurrentMinutes())
	assert.Equal(t, 2, clock.DayOfWeek()) // Tuesday
}

func TestBruneiClock_HostZoneIrrelevant(t *testing.T) {
	t.Parallel()

	// The same instant expressed in a different host zone must resolve
	// to the same Brunei wall-clock reading.
	instant := time.Date(2024, 1, 1, 1, 16, 0, 0, time.UTC)
	hostZone := time.FixedZone("UTC-5", -5*60*60)

	utcClock := NewBruneiClock(fixedClock{t: instant})
	shiftedClock := NewBruneiClock(fixedClock{t: instant.In(hostZone)})

	assert.Equal(t, utcClock.CurrentMinutes(), shiftedClock.CurrentMinutes())
	assert.Equal(t, utcClock.Today(), shiftedClock.Today())
	assert.Equal(t, 9*60+16, utcClock.CurrentMinutes())
}

func TestToBruneiISOString(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01T09:00:00+08:00", ToBruneiISOString(instant))
}
