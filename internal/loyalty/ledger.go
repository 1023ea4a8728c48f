package loyalty

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Store is the slice of the appointment repository the ledger writes through.
// Pass the transactional repository so balance changes commit with the
// appointment.
type Store interface {
	GetUserForUpdate(ctx context.Context, id uint) (*models.User, error)
	SaveUserPoints(ctx context.Context, userID uint, points int) error
}

type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// CanRedeemFreeHaircut reports whether a balance covers a free haircut.
func CanRedeemFreeHaircut(points int) bool {
	return points >= domain.FreeHaircutCost
}

// Debit takes amount points from the user. The balance never goes negative.
func (l *Ledger) Debit(ctx context.Context, store Store, userID uint, amount int) (int, error) {
	user, err := store.GetUserForUpdate(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user.Points < amount {
		return user.Points, httperr.ErrInsufficientPoints()
	}

	balance := user.Points - amount
	if err := store.SaveUserPoints(ctx, userID, balance); err != nil {
		return user.Points, err
	}
	return balance, nil
}

func (l *Ledger) Credit(ctx context.Context, store Store, userID uint, amount int) (int, error) {
	user, err := store.GetUserForUpdate(ctx, userID)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return user.Points, nil
	}

	balance := user.Points + amount
	if err := store.SaveUserPoints(ctx, userID, balance); err != nil {
		return user.Points, err
	}
	return balance, nil
}

// Handle applies the point effect of each appointment event in order.
func (l *Ledger) Handle(ctx context.Context, store Store, events ...domain.Event) error {
	for _, ev := range events {
		var err error

		switch e := ev.(type) {
		case domain.FreeHaircutBooked:
			_, err = l.Debit(ctx, store, e.UserID, domain.FreeHaircutCost)

		case domain.AppointmentCancelled:
			if !e.FreeHaircut {
				continue
			}
			_, err = l.Credit(ctx, store, e.UserID, domain.FreeHaircutCost)
			if err == nil {
				slog.InfoContext(ctx, "free haircut refunded",
					"appointment_id", e.AppointmentID, "user_id", e.UserID)
			}

		case domain.AppointmentCompleted:
			pts := e.ServiceType.CompletionPoints()
			if pts == 0 {
				continue
			}
			_, err = l.Credit(ctx, store, e.UserID, pts)
			if err == nil {
				slog.InfoContext(ctx, "completion points awarded",
					"appointment_id", e.AppointmentID, "user_id", e.UserID, "points", pts)
			}
		}

		if err != nil {
			return err
		}
	}
	return nil
}
