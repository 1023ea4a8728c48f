package appointment

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t, monday1425)
	uc := NewDeleteAppointment(f.repo, f.resolver(), nil)

	done := f.insert(models.Appointment{Date: "2025-06-02", Time: "09:00", Status: "completed", Notes: "ok"})
	pending := f.insert(models.Appointment{Date: "2025-06-03", Time: "10:00"})

	if _, err := uc.Execute(context.Background(), f.customer, done.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	got := f.reload(done.ID)
	if got.Notes != "[ARCHIVED] ok" || got.Status != "completed" || !got.Archived {
		t.Fatalf("archived = %+v", got)
	}

	if _, err := uc.Execute(context.Background(), f.customer, pending.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got = f.reload(pending.ID)
	if got.Notes != "[DELETED]" || got.Status != "cancelled" || !got.Deleted {
		t.Fatalf("deleted = %+v", got)
	}

	// Deleting again stacks the marker.
	if _, err := uc.Execute(context.Background(), f.customer, pending.ID); err != nil {
		t.Fatalf("delete again: %v", err)
	}
	if got = f.reload(pending.ID); got.Notes != "[DELETED] [DELETED]" {
		t.Fatalf("notes = %q", got.Notes)
	}

	// The slot is free again.
	res, err := f.availability().Execute(context.Background(), GetAvailabilityInput{Date: "2025-06-03", BarberID: &f.barber.ID})
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(res.Available) != 10 {
		t.Fatalf("available = %d, want 10", len(res.Available))
	}
}

func TestDeleteAppointment_Forbidden(t *testing.T) {
	f := newFixture(t, monday1425)
	ap := f.insert(modelsAt("2025-06-03", "10:00"))
	stranger := &models.User{Name: "Eva", Email: "eva@example.com", PasswordHash: "x"}
	f.db.Create(stranger)

	_, err := NewDeleteAppointment(f.repo, f.resolver(), nil).Execute(context.Background(), stranger, ap.ID)
	if !httperr.IsKind(err, httperr.KindAuthorization) {
		t.Fatalf("err = %v, want forbidden", err)
	}
}
