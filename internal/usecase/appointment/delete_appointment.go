package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// DeleteAppointment soft-deletes: the row stays in the owner's history.
type DeleteAppointment struct {
	repo     domain.Repository
	resolver *BarberResolver
	audit    *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	resolver *BarberResolver,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	user *models.User,
	appointmentID uint,
) (*models.Appointment, error) {

	if _, err := loadManageable(ctx, uc.repo, uc.resolver, user, appointmentID); err != nil {
		return nil, err
	}

	var ap *models.Appointment
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		locked, err := tx.GetAppointmentForUpdate(ctx, appointmentID)
		if err != nil {
			return err
		}
		domain.SoftDelete(locked)
		ap = locked
		return tx.SaveAppointment(ctx, locked)
	})
	if err != nil {
		return nil, err
	}

	action := "appointment_deleted"
	if ap.Archived {
		action = "appointment_archived"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
