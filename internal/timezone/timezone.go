package timezone

import "time"

const DefaultTimezone = "America/New_York"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayOf strips the time-of-day component. Availability and bookings
// compare dates at calendar-day granularity only.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay parses a "2006-01-02" string into a day-normalized time in tz.
func ParseDay(dateStr, tz string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location(tz))
	if err != nil {
		return time.Time{}, err
	}
	return DayOf(t), nil
}
