package appointment

import (
	"reflect"
	"testing"
	"time"
)

func TestGenerateSlots_WorkingDay(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	slots, reason := DefaultPolicy().GenerateSlots(monday)
	if reason != ReasonNone {
		t.Fatalf("reason = %q, want none", reason)
	}

	want := []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00", "18:00",
	}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
}

func TestGenerateSlots_Weekend(t *testing.T) {
	for _, d := range []int{7, 8} { // Sat 7th, Sun 8th June 2025
		date := time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
		slots, reason := DefaultPolicy().GenerateSlots(date)
		if len(slots) != 0 {
			t.Fatalf("%s: slots = %v, want none", date.Weekday(), slots)
		}
		if reason != ReasonNonWorkingDay {
			t.Fatalf("%s: reason = %q, want %q", date.Weekday(), reason, ReasonNonWorkingDay)
		}
	}
}

func TestSlots_Restartable(t *testing.T) {
	p := DefaultPolicy()
	a := p.Slots()
	a[0] = "mutated"
	if b := p.Slots(); b[0] != "09:00" {
		t.Fatalf("second call saw mutation: %v", b)
	}
}

func TestSlots_CustomGranularity(t *testing.T) {
	p := WorkingHoursPolicy{StartHour: 10, EndHour: 12, Days: []time.Weekday{time.Monday}, SlotMinutes: 30}
	want := []string{"10:00", "10:30", "11:00", "11:30"}
	if got := p.Slots(); !reflect.DeepEqual(got, want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}
}
