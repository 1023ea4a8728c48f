package audit

import (
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestDispatcher_WritesOnClose(t *testing.T) {
	gdb := dbtest.New(t)
	d := NewDispatcher(New(gdb))

	uid, id := uint(3), uint(9)
	d.Dispatch(Event{
		UserID:   &uid,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]any{"time": "10:00"},
	})
	d.Close()

	var rows []models.AuditLog
	if err := gdb.Find(&rows).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Action != "appointment_created" || *rows[0].EntityID != 9 {
		t.Fatalf("unexpected row %+v", rows[0])
	}
	if string(rows[0].Metadata) != `{"time":"10:00"}` {
		t.Fatalf("metadata = %s", rows[0].Metadata)
	}
}

func TestDispatcher_NilSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}
