package appointment

import (
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestApplyChanges_CompletedAwardsOnce(t *testing.T) {
	ap := &models.Appointment{ID: 1, UserID: 7, ServiceType: "corte_barba", Status: "confirmed"}

	events := ApplyChanges(ap, Changes{Status: ptr(StatusCompleted)})
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	ev, ok := events[0].(AppointmentCompleted)
	if !ok || ev.ServiceType.CompletionPoints() != 15 || ev.UserID != 7 {
		t.Fatalf("unexpected event %+v", events[0])
	}

	if again := ApplyChanges(ap, Changes{Status: ptr(StatusCompleted)}); len(again) != 0 {
		t.Fatalf("re-completing emitted %v", again)
	}
}

func TestApplyChanges_CompletionUsesUpdatedService(t *testing.T) {
	ap := &models.Appointment{ServiceType: "tinte", Status: "pending"}

	events := ApplyChanges(ap, Changes{
		ServiceType: ptr(ServiceBeard),
		Status:      ptr(StatusCompleted),
	})

	ev := events[0].(AppointmentCompleted)
	if ev.ServiceType != ServiceBeard {
		t.Fatalf("service = %s, want barba", ev.ServiceType)
	}
}

func TestApplyChanges_CancelRefundsOnlyFreeHaircut(t *testing.T) {
	free := &models.Appointment{ServiceType: "corte_gratis", Status: "pending", IsFreeHaircut: true}
	paid := &models.Appointment{ServiceType: "corte", Status: "pending"}

	if ev := ApplyChanges(free, Changes{Status: ptr(StatusCancelled)}); len(ev) != 1 {
		t.Fatalf("free haircut cancel events = %v", ev)
	}
	if ev := ApplyChanges(paid, Changes{Status: ptr(StatusCancelled)}); len(ev) != 0 {
		t.Fatalf("paid cancel events = %v", ev)
	}
	if ev := ApplyChanges(free, Changes{Status: ptr(StatusCancelled)}); len(ev) != 0 {
		t.Fatalf("second cancel refunded again: %v", ev)
	}
}

func TestApplyChanges_AnyToAny(t *testing.T) {
	ap := &models.Appointment{Status: "completed", ServiceType: "corte"}

	ApplyChanges(ap, Changes{Status: ptr(StatusPending)})
	if ap.Status != "pending" {
		t.Fatalf("status = %s, want pending", ap.Status)
	}
}

func TestApplyChanges_FieldsOnly(t *testing.T) {
	ap := &models.Appointment{Date: "2025-06-03", Time: "10:00", BarberID: 1, Status: "pending"}

	events := ApplyChanges(ap, Changes{Date: ptr("2025-06-04"), Time: ptr("11:00"), BarberID: ptr(uint(2)), Notes: ptr("x")})

	if events != nil {
		t.Fatalf("events = %v, want nil", events)
	}
	if ap.Date != "2025-06-04" || ap.Time != "11:00" || ap.BarberID != 2 || ap.Notes != "x" {
		t.Fatalf("fields not applied: %+v", ap)
	}
}

func TestSoftDelete(t *testing.T) {
	t.Run("completed is archived", func(t *testing.T) {
		ap := &models.Appointment{Status: "completed", Notes: "buen corte"}
		SoftDelete(ap)
		if !ap.Archived || ap.Deleted || ap.Status != "completed" {
			t.Fatalf("unexpected state %+v", ap)
		}
		if ap.Notes != "[ARCHIVED] buen corte" {
			t.Fatalf("notes = %q", ap.Notes)
		}
	})

	t.Run("pending is deleted and cancelled", func(t *testing.T) {
		ap := &models.Appointment{Status: "pending"}
		SoftDelete(ap)
		if !ap.Deleted || ap.Status != "cancelled" || ap.Notes != "[DELETED]" {
			t.Fatalf("unexpected state %+v", ap)
		}
	})

	t.Run("deleting twice prefixes twice", func(t *testing.T) {
		ap := &models.Appointment{Status: "confirmed", Notes: "n"}
		SoftDelete(ap)
		SoftDelete(ap)
		if ap.Notes != "[DELETED] [DELETED] n" {
			t.Fatalf("notes = %q", ap.Notes)
		}
		if !ap.Deleted || ap.Archived || ap.Status != "cancelled" {
			t.Fatalf("flags changed: %+v", ap)
		}
	})
}

func TestCanManage(t *testing.T) {
	ap := &models.Appointment{UserID: 1, BarberID: 5}

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"owner", Actor{UserID: 1}, true},
		{"admin", Actor{UserID: 9, IsAdmin: true}, true},
		{"assigned barber", Actor{UserID: 9, BarberID: ptr(uint(5))}, true},
		{"other barber", Actor{UserID: 9, BarberID: ptr(uint(6))}, false},
		{"stranger", Actor{UserID: 2}, false},
	}
	for _, tc := range cases {
		if got := CanManage(tc.actor, ap); got != tc.want {
			t.Errorf("%s: CanManage = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestServiceTypes(t *testing.T) {
	want := map[ServiceType]int{
		ServiceHaircut: 10, ServiceHaircutBeard: 15, ServiceHaircutDye: 10,
		ServiceHaircutBeardDye: 15, ServiceBeard: 5, ServiceDye: 0, ServiceFreeHaircut: 0,
	}
	for s, pts := range want {
		if !s.Valid() || s.CompletionPoints() != pts {
			t.Errorf("%s: valid=%v points=%d, want %d", s, s.Valid(), s.CompletionPoints(), pts)
		}
	}
	if ServiceType("manicura").Valid() {
		t.Fatalf("unknown service accepted")
	}
	if !Status("confirmed").Valid() || Status("done").Valid() {
		t.Fatalf("status validation mismatch")
	}
}
