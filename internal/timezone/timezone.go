package timezone

import (
	"time"
	// Embedded zone database so Europe/Madrid resolves on slim images.
	_ "time/tzdata"
)

const DefaultTimezone = "Europe/Madrid"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

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

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ===============================
// Clock
// ===============================

// Clock is the only source of "now" for booking decisions.
type Clock interface {
	Now() time.Time
}

type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(tz string) SystemClock {
	return SystemClock{loc: Location(tz)}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always returns T. Used by tests and by replay tooling.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// Today returns the business-local calendar date of c as YYYY-MM-DD.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in the clock's location.
func ParseDate(c Clock, date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, c.Now().Location())
}
