package appointment

import (
	"strconv"
	"time"
)

type Availability struct {
	Date      string   `json:"date"`
	BarberID  *uint    `json:"barbero_id"`
	Available []string `json:"available_slots"`
	Booked    []string `json:"booked_slots"`
	Reason    Reason   `json:"-"`
}

// ResolveAvailability removes booked times from the canonical slots of date
// and, when date is today, every slot whose hour is not strictly after the
// current hour. booked is reported back unchanged.
func ResolveAvailability(
	policy WorkingHoursPolicy,
	date time.Time,
	booked []string,
	now time.Time,
) Availability {

	out := Availability{
		Date:      date.Format("2006-01-02"),
		Available: []string{},
		Booked:    booked,
	}
	if out.Booked == nil {
		out.Booked = []string{}
	}

	slots, reason := policy.GenerateSlots(date)
	if reason != ReasonNone {
		out.Reason = reason
		return out
	}

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	sameDay := sameDate(date, now)

	for _, s := range slots {
		if _, ok := taken[s]; ok {
			continue
		}
		// Same day: the whole current hour is gone, whatever the minute.
		if sameDay && slotHour(s) <= now.Hour() {
			continue
		}
		out.Available = append(out.Available, s)
	}

	return out
}

func sameDate(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func slotHour(hhmm string) int {
	if len(hhmm) < 2 {
		return -1
	}
	h, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		return -1
	}
	return h
}
