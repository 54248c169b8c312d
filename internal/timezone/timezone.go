package timezone

import (
	"os"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	loc  *time.Location
	once sync.Once
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves the application timezone: APP_TIMEZONE when valid,
// UTC otherwise. Appointments and "today" checks all use this location.
func Location() *time.Location {
	once.Do(func() {
		tz := os.Getenv("APP_TIMEZONE")
		if IsValid(tz) {
			if l, err := time.LoadLocation(tz); err == nil {
				loc = l
				return
			}
		}
		loc, _ = time.LoadLocation(DefaultTimezone)
	})
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// MinutesOfDay converts a wall-clock instant to minutes since midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SameDate reports whether two instants fall on the same calendar date in
// the application timezone.
func SameDate(a, b time.Time) bool {
	a = a.In(Location())
	b = b.In(Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
