package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ListAppointments scopes the listing by role. Barber accounts take
// precedence over the admin flag.
type ListAppointments struct {
	repo     domain.Repository
	resolver *BarberResolver
}

func NewListAppointments(repo domain.Repository, resolver *BarberResolver) *ListAppointments {
	return &ListAppointments{repo: repo, resolver: resolver}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	user *models.User,
) ([]models.Appointment, error) {

	actor, err := uc.resolver.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.IsBarber():
		if actor.BarberID == nil {
			return []models.Appointment{}, nil
		}
		return uc.repo.ListAppointmentsForBarber(ctx, *actor.BarberID)

	case actor.IsAdmin:
		return uc.repo.ListAllAppointments(ctx)

	default:
		return uc.repo.ListAppointmentsForUser(ctx, user.ID)
	}
}
