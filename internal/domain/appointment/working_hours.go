package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// WorkingHoursPolicy describes the shop's fixed opening hours. Slots start at
// StartHour and the last one starts before EndHour.
type WorkingHoursPolicy struct {
	StartHour   int
	EndHour     int
	Days        []time.Weekday
	SlotMinutes int
}

type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNonWorkingDay Reason = "non_working_day"
)

func DefaultPolicy() WorkingHoursPolicy {
	return WorkingHoursPolicy{
		StartHour: 9,
		EndHour:   19,
		Days: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		SlotMinutes: 60,
	}
}

func (p WorkingHoursPolicy) IsWorkingDay(day time.Weekday) bool {
	for _, d := range p.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Slots is the canonical, ordered list of slot start times ("HH:MM").
// Each call builds a fresh slice.
func (p WorkingHoursPolicy) Slots() []string {
	step := p.SlotMinutes
	if step <= 0 {
		step = 60
	}

	day := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	var slots []string
	for m := p.StartHour * 60; m < p.EndHour*60; m += step {
		slots = append(slots, day.Add(time.Duration(m)*time.Minute).Format(timezone.TimeLayout))
	}
	return slots
}

// GenerateSlots returns the canonical slots for date, or an empty list and
// ReasonNonWorkingDay when the shop is closed that weekday.
func (p WorkingHoursPolicy) GenerateSlots(date time.Time) ([]string, Reason) {
	if !p.IsWorkingDay(date.Weekday()) {
		return []string{}, ReasonNonWorkingDay
	}
	return p.Slots(), ReasonNone
}
