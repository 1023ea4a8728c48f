package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func TestCheckBookingTime(t *testing.T) {
	today := day(2025, 6, 2)

	cases := []struct {
		name string
		date time.Time
		hhmm string
		now  time.Time
		code string
	}{
		{"other day", day(2025, 6, 3), "09:00", time.Date(2025, 6, 2, 18, 59, 0, 0, madrid), ""},
		{"past hour", today, "13:00", time.Date(2025, 6, 2, 14, 25, 0, 0, madrid), "past_hour"},
		{"current hour minute 45", today, "14:00", time.Date(2025, 6, 2, 14, 45, 0, 0, madrid), "too_close"},
		{"current hour minute 10", today, "14:00", time.Date(2025, 6, 2, 14, 10, 0, 0, madrid), ""},
		{"current hour minute 40", today, "14:00", time.Date(2025, 6, 2, 14, 40, 0, 0, madrid), ""},
		{"later hour", today, "15:00", time.Date(2025, 6, 2, 14, 59, 0, 0, madrid), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckBookingTime(tc.date, tc.hhmm, tc.now)
			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("err = %v, want %s", err, tc.code)
			}
			if !httperr.IsKind(err, httperr.KindPastTime) {
				t.Fatalf("kind mismatch for %v", err)
			}
		})
	}
}
