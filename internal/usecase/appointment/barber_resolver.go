package appointment

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// BarberResolver turns a user into a domain.Actor. A user counts as a barber
// when flagged explicitly or when their email uses the staff domain; in the
// latter case the barber row is matched by name and the link is persisted.
type BarberResolver struct {
	repo        domain.Repository
	emailDomain string
}

func NewBarberResolver(repo domain.Repository, emailDomain string) *BarberResolver {
	return &BarberResolver{repo: repo, emailDomain: emailDomain}
}

func (r *BarberResolver) Resolve(ctx context.Context, user *models.User) (domain.Actor, error) {
	actor := domain.Actor{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		Barber:  user.IsBarber || user.HasBarberEmail(r.emailDomain),
	}
	if !actor.Barber {
		return actor, nil
	}

	if user.BarberID != nil {
		id := *user.BarberID
		actor.BarberID = &id
		return actor, nil
	}

	barber, err := r.repo.FindBarberByName(ctx, user.Name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return actor, nil
	}
	if err != nil {
		return actor, err
	}

	actor.BarberID = &barber.ID

	if err := r.repo.LinkUserToBarber(ctx, user.ID, barber.ID); err != nil {
		slog.WarnContext(ctx, "barber link not persisted",
			"user_id", user.ID, "barber_id", barber.ID, "error", err)
	} else {
		user.IsBarber = true
		user.BarberID = &barber.ID
	}

	return actor, nil
}
