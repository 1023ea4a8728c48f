package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// CurrentHourCutoffMinute is the last minute of an hour at which that same
// hour can still be booked.
const CurrentHourCutoffMinute = 40

// CheckBookingTime applies the same-day rules for a new booking: an hour
// already gone is rejected, and the current hour only until :40. Other days
// always pass.
func CheckBookingTime(date time.Time, hhmm string, now time.Time) error {
	if !sameDate(date, now) {
		return nil
	}

	requested := slotHour(hhmm)
	current := now.Hour()

	if requested < current {
		return httperr.ErrPastHour()
	}
	if requested == current && now.Minute() > CurrentHourCutoffMinute {
		return httperr.ErrTooClose()
	}
	return nil
}
