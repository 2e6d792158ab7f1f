// Package date provides date helpers pinned to the Mexico City timezone,
// which is the reference timezone for the Phoenix services.
package date

import (
	"time"
	_ "time/tzdata" // keep working on hosts without a system tz database
)

const mexicoZone = "America/Mexico_City"

var mexicoCity = func() *time.Location {
	loc, err := time.LoadLocation(mexicoZone)
	if err != nil {
		panic(err)
	}
	return loc
}()

// Location returns the America/Mexico_City location.
func Location() *time.Location {
	return mexicoCity
}

// Now returns the current time in the Mexico City timezone.
func Now() time.Time {
	return time.Now().In(mexicoCity)
}

// Today returns the current date in the Mexico City timezone, truncated to
// midnight.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, mexicoCity)
}

// ToMexico converts t to the Mexico City timezone.
func ToMexico(t time.Time) time.Time {
	return t.In(mexicoCity)
}

// FromMexico converts t to target. A nil target means UTC.
func FromMexico(t time.Time, target *time.Location) time.Time {
	if target == nil {
		target = time.UTC
	}
	return t.In(target)
}
