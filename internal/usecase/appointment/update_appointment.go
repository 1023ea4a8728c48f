package appointment

import (
	"context"
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// UpdateAppointmentInput mirrors a partial PUT body; nil means "not sent".
type UpdateAppointmentInput struct {
	Date        *string
	Time        *string
	BarberID    *uint
	ServiceType *string
	Notes       *string
	Status      *string
}

type UpdateAppointment struct {
	repo     domain.Repository
	resolver *BarberResolver
	clock    timezone.Clock
	ledger   *loyalty.Ledger
	audit    *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	resolver *BarberResolver,
	clock timezone.Clock,
	ledger *loyalty.Ledger,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		resolver: resolver,
		clock:    clock,
		ledger:   ledger,
		audit:    audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	user *models.User,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := loadManageable(ctx, uc.repo, uc.resolver, user, appointmentID); err != nil {
		return nil, err
	}

	changes, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	// Transitions are computed on the locked row, so concurrent updates see
	// each other's status and events fire once.
	var (
		previous models.Appointment
		ap       *models.Appointment
		events   []domain.Event
	)

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		locked, err := tx.GetAppointmentForUpdate(ctx, appointmentID)
		if err != nil {
			return err
		}
		previous = *locked
		events = domain.ApplyChanges(locked, changes)
		ap = locked

		// --------------------------------------------------
		// Moving an active appointment: target slot must be free
		// --------------------------------------------------
		movedSlot := ap.BarberID != previous.BarberID || ap.Date != previous.Date || ap.Time != previous.Time
		becameActive := !previous.IsActive() && ap.IsActive()
		if ap.IsActive() && (movedSlot || becameActive) {
			taken, err := tx.HasActiveAppointment(ctx, ap.BarberID, ap.Date, ap.Time, ap.ID)
			if err != nil {
				return err
			}
			if taken {
				return httperr.ErrScheduleConflict()
			}
		}

		if err := tx.SaveAppointment(ctx, ap); err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrScheduleConflict()
			}
			return err
		}
		return uc.ledger.Handle(ctx, tx, events...)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"previous_status": previous.Status,
			"status":          ap.Status,
			"events":          len(events),
		},
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}

func (uc *UpdateAppointment) validate(
	ctx context.Context,
	in UpdateAppointmentInput,
) (domain.Changes, error) {

	fields := map[string][]string{}
	var ch domain.Changes

	if in.Date != nil {
		today := timezone.Today(uc.clock)
		switch {
		case !validators.IsISODate(*in.Date):
			fields["date"] = append(fields["date"], "El campo date no es una fecha válida.")
		case *in.Date <= today:
			fields["date"] = append(fields["date"], "El campo date debe ser una fecha posterior a hoy.")
		default:
			ch.Date = in.Date
		}
	}

	if in.Time != nil {
		if validators.IsHHMM(*in.Time) {
			ch.Time = in.Time
		} else {
			fields["time"] = append(fields["time"], "El campo time no corresponde al formato H:i.")
		}
	}

	if in.BarberID != nil {
		if _, err := uc.repo.GetBarber(ctx, *in.BarberID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return ch, err
			}
			fields["barbero_id"] = append(fields["barbero_id"], "El barbero_id seleccionado es inválido.")
		} else {
			ch.BarberID = in.BarberID
		}
	}

	if in.ServiceType != nil {
		s := domain.ServiceType(*in.ServiceType)
		if s.Valid() {
			ch.ServiceType = &s
		} else {
			fields["service_type"] = append(fields["service_type"], validators.InvalidChoice("service_type", domain.ServiceTypes()))
		}
	}

	if in.Notes != nil {
		if utf8.RuneCountInString(*in.Notes) > MaxNotesLength {
			fields["notes"] = append(fields["notes"], "El campo notes no debe ser mayor que 500 caracteres.")
		} else {
			ch.Notes = in.Notes
		}
	}

	if in.Status != nil {
		s := domain.Status(*in.Status)
		if s.Valid() {
			ch.Status = &s
		} else {
			fields["status"] = append(fields["status"], validators.InvalidChoice("status", domain.Statuses()))
		}
	}

	if len(fields) > 0 {
		return ch, httperr.Validation(fields)
	}
	return ch, nil
}

// loadManageable fetches the appointment and checks the caller may change it.
func loadManageable(
	ctx context.Context,
	repo domain.Repository,
	resolver *BarberResolver,
	user *models.User,
	id uint,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("appointment_not_found", "Cita no encontrada")
		}
		return nil, err
	}

	actor, err := resolver.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}
	if !domain.CanManage(actor, ap) {
		return nil, httperr.Forbidden()
	}
	return ap, nil
}
