package appointment

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const MaxNotesLength = 500

// BookingNotifier receives committed bookings. Implementations must not fail
// the caller.
type BookingNotifier interface {
	AppointmentBooked(ctx context.Context, customer string, ap *models.Appointment)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID      uint
	Date        string
	Time        string
	BarberID    uint
	ServiceType string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	clock    timezone.Clock
	ledger   *loyalty.Ledger
	locker   lock.Locker
	lockTTL  time.Duration
	notifier BookingNotifier
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	clock timezone.Clock,
	ledger *loyalty.Ledger,
	locker lock.Locker,
	lockTTL time.Duration,
	notifier BookingNotifier,
	audit *audit.Dispatcher,
) *CreateAppointment {
	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	if lockTTL <= 0 {
		lockTTL = 10 * time.Second
	}
	return &CreateAppointment{
		repo:     repo,
		clock:    clock,
		ledger:   ledger,
		locker:   locker,
		lockTTL:  lockTTL,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	now := uc.clock.Now()

	// --------------------------------------------------
	// 1. Request validation
	// --------------------------------------------------
	date, err := uc.validate(ctx, in, now)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Same-day cutoff
	// --------------------------------------------------
	if err := domain.CheckBookingTime(date, in.Time, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Points for a free haircut
	// --------------------------------------------------
	user, err := uc.repo.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	service := domain.ServiceType(in.ServiceType)
	if service.IsFree() && !loyalty.CanRedeemFreeHaircut(user.Points) {
		return nil, httperr.ErrInsufficientPoints()
	}

	// --------------------------------------------------
	// 4. Slot lock + conflict check
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, domain.SlotKey(in.BarberID, in.Date, in.Time), uc.lockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, uc.conflict(in)
		}
		// The unique index still guards the slot.
		slog.WarnContext(ctx, "slot lock unavailable", "error", err)
		release = func() {}
	}
	defer release()

	taken, err := uc.repo.HasActiveAppointment(ctx, in.BarberID, in.Date, in.Time, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, uc.conflict(in)
	}

	// --------------------------------------------------
	// 5. Atomic write: appointment + point debit
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:        in.UserID,
		BarberID:      in.BarberID,
		Date:          in.Date,
		Time:          in.Time,
		ServiceType:   string(service),
		Status:        string(domain.InitialStatus()),
		IsFreeHaircut: service.IsFree(),
		Notes:         in.Notes,
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			if httperr.IsUniqueViolation(err) {
				return uc.conflict(in)
			}
			return err
		}

		if ap.IsFreeHaircut {
			return uc.ledger.Handle(ctx, tx, domain.FreeHaircutBooked{
				AppointmentID: ap.ID,
				UserID:        ap.UserID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. After commit: notification + audit
	// --------------------------------------------------
	if uc.notifier != nil {
		uc.notifier.AppointmentBooked(ctx, user.Name, ap)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barbero_id":   ap.BarberID,
			"date":         ap.Date,
			"time":         ap.Time,
			"service_type": ap.ServiceType,
		},
	})

	if barber, err := uc.repo.GetBarber(ctx, ap.BarberID); err == nil {
		ap.Barber = barber
	}

	return ap, nil
}

func (uc *CreateAppointment) validate(
	ctx context.Context,
	in CreateAppointmentInput,
	now time.Time,
) (time.Time, error) {

	fields := map[string][]string{}

	if !validators.IsISODate(in.Date) {
		fields["date"] = append(fields["date"], "El campo date no es una fecha válida.")
	} else if in.Date < now.Format(timezone.DateLayout) {
		fields["date"] = append(fields["date"], "El campo date debe ser una fecha posterior o igual a hoy.")
	}
	if !validators.IsHHMM(in.Time) {
		fields["time"] = append(fields["time"], "El campo time no corresponde al formato H:i.")
	}
	if !domain.ServiceType(in.ServiceType).Valid() {
		fields["service_type"] = append(fields["service_type"], validators.InvalidChoice("service_type", domain.ServiceTypes()))
	}
	if utf8.RuneCountInString(in.Notes) > MaxNotesLength {
		fields["notes"] = append(fields["notes"], "El campo notes no debe ser mayor que 500 caracteres.")
	}

	if in.BarberID == 0 {
		fields["barbero_id"] = append(fields["barbero_id"], "El campo barbero_id es obligatorio.")
	} else if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, err
		}
		fields["barbero_id"] = append(fields["barbero_id"], "El barbero_id seleccionado es inválido.")
	}

	if len(fields) > 0 {
		return time.Time{}, httperr.Validation(fields)
	}

	return time.ParseInLocation(timezone.DateLayout, in.Date, now.Location())
}

func (uc *CreateAppointment) conflict(in CreateAppointmentInput) error {
	uc.audit.Dispatch(audit.Event{
		UserID: &in.UserID,
		Action: "appointment_conflict",
		Entity: "appointment",
		Metadata: map[string]any{
			"barbero_id": in.BarberID,
			"date":       in.Date,
			"time":       in.Time,
		},
	})
	return httperr.ErrScheduleConflict()
}
