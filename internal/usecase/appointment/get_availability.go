package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const msgNonWorkingDay = "No hay citas disponibles en fin de semana"

type GetAvailabilityInput struct {
	Date     string
	BarberID *uint
}

type AvailabilityResult struct {
	domain.Availability
	Message string `json:"message,omitempty"`
}

type GetAvailability struct {
	repo   domain.Repository
	clock  timezone.Clock
	policy domain.WorkingHoursPolicy
}

func NewGetAvailability(
	repo domain.Repository,
	clock timezone.Clock,
	policy domain.WorkingHoursPolicy,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		clock:  clock,
		policy: policy,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) (*AvailabilityResult, error) {

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	if !validators.IsISODate(in.Date) {
		return nil, httperr.ValidationField("date", "El campo date no es una fecha válida.")
	}
	if in.Date < timezone.Today(uc.clock) {
		return nil, httperr.ValidationField("date",
			"El campo date debe ser una fecha posterior o igual a hoy.")
	}
	if in.BarberID != nil {
		if _, err := uc.repo.GetBarber(ctx, *in.BarberID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ValidationField("barbero_id",
					"El barbero_id seleccionado es inválido.")
			}
			return nil, err
		}
	}

	date, err := timezone.ParseDate(uc.clock, in.Date)
	if err != nil {
		return nil, httperr.ValidationField("date", "El campo date no es una fecha válida.")
	}

	// --------------------------------------------------
	// Closed day: nothing to look up
	// --------------------------------------------------
	if !uc.policy.IsWorkingDay(date.Weekday()) {
		av := domain.ResolveAvailability(uc.policy, date, nil, uc.clock.Now())
		av.BarberID = in.BarberID
		return &AvailabilityResult{Availability: av, Message: msgNonWorkingDay}, nil
	}

	booked, err := uc.repo.ListBookedTimes(ctx, in.Date, in.BarberID)
	if err != nil {
		return nil, err
	}

	av := domain.ResolveAvailability(uc.policy, date, booked, uc.clock.Now())
	av.BarberID = in.BarberID

	return &AvailabilityResult{Availability: av}, nil
}
