package appointment

import (
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	DeletedMarker  = "[DELETED]"
	ArchivedMarker = "[ARCHIVED]"
)

// Changes is a partial update; nil fields are left untouched.
type Changes struct {
	Date        *string
	Time        *string
	BarberID    *uint
	ServiceType *ServiceType
	Notes       *string
	Status      *Status
}

func (c Changes) MovesSlot() bool {
	return c.Date != nil || c.Time != nil || c.BarberID != nil
}

// ===============================
// Domain Actions
// ===============================

// ApplyChanges mutates ap and returns the events caused by the status change.
// Any status may follow any other. Points follow the service type after the
// update is applied.
func ApplyChanges(ap *models.Appointment, ch Changes) []Event {
	previous := Status(ap.Status)

	if ch.Date != nil {
		ap.Date = *ch.Date
	}
	if ch.Time != nil {
		ap.Time = *ch.Time
	}
	if ch.BarberID != nil {
		ap.BarberID = *ch.BarberID
	}
	if ch.ServiceType != nil {
		ap.ServiceType = string(*ch.ServiceType)
	}
	if ch.Notes != nil {
		ap.Notes = *ch.Notes
	}

	if ch.Status == nil {
		return nil
	}

	next := *ch.Status
	ap.Status = string(next)

	var events []Event

	if next == StatusCancelled && previous != StatusCancelled && ap.IsFreeHaircut {
		events = append(events, AppointmentCancelled{
			AppointmentID: ap.ID,
			UserID:        ap.UserID,
			FreeHaircut:   true,
		})
	}

	if next == StatusCompleted && previous != StatusCompleted {
		events = append(events, AppointmentCompleted{
			AppointmentID: ap.ID,
			UserID:        ap.UserID,
			ServiceType:   ServiceType(ap.ServiceType),
		})
	}

	return events
}

// SoftDelete archives a completed appointment and deletes (cancelling) any
// other. The marker is prefixed again on every call.
func SoftDelete(ap *models.Appointment) {
	if Status(ap.Status) == StatusCompleted {
		ap.Archived = true
		ap.Notes = prefixNotes(ArchivedMarker, ap.Notes)
		return
	}

	ap.Deleted = true
	ap.Status = string(StatusCancelled)
	ap.Notes = prefixNotes(DeletedMarker, ap.Notes)
}

func prefixNotes(marker, notes string) string {
	if notes == "" {
		return marker
	}
	return marker + " " + notes
}

// ===============================
// Authorization
// ===============================

// Actor is the authenticated caller with its barber link already resolved.
// Barber is true for staff accounts even when no barber row matches them.
type Actor struct {
	UserID   uint
	IsAdmin  bool
	Barber   bool
	BarberID *uint
}

func (a Actor) IsBarber() bool {
	return a.Barber || a.BarberID != nil
}

// CanManage: owner, admin, or the barber the appointment is booked with.
func CanManage(actor Actor, ap *models.Appointment) bool {
	if actor.IsAdmin || ap.UserID == actor.UserID {
		return true
	}
	return actor.BarberID != nil && *actor.BarberID == ap.BarberID
}

func SlotKey(barberID uint, date, hhmm string) string {
	return models.AppointmentSlotKey(barberID, date, hhmm)
}
