package loyalty

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type memStore struct {
	users map[uint]*models.User
	saves int
}

func (m *memStore) GetUserForUpdate(_ context.Context, id uint) (*models.User, error) {
	u := *m.users[id]
	return &u, nil
}

func (m *memStore) SaveUserPoints(_ context.Context, id uint, points int) error {
	m.users[id].Points = points
	m.saves++
	return nil
}

func newStore(points int) *memStore {
	return &memStore{users: map[uint]*models.User{1: {ID: 1, Points: points}}}
}

func TestDebit(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()

	s := newStore(99)
	if _, err := l.Debit(ctx, s, 1, domain.FreeHaircutCost); !httperr.IsKind(err, httperr.KindInsufficientPoints) {
		t.Fatalf("err = %v, want insufficient points", err)
	}
	if s.users[1].Points != 99 || s.saves != 0 {
		t.Fatalf("balance touched on failure: %d", s.users[1].Points)
	}

	s = newStore(100)
	balance, err := l.Debit(ctx, s, 1, domain.FreeHaircutCost)
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if balance != 0 || s.users[1].Points != 0 {
		t.Fatalf("balance = %d, want 0", balance)
	}
}

func TestHandle(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()

	cases := []struct {
		name  string
		start int
		ev    domain.Event
		want  int
	}{
		{"complete corte_barba", 0, domain.AppointmentCompleted{UserID: 1, ServiceType: domain.ServiceHaircutBeard}, 15},
		{"complete barba", 3, domain.AppointmentCompleted{UserID: 1, ServiceType: domain.ServiceBeard}, 8},
		{"complete tinte", 3, domain.AppointmentCompleted{UserID: 1, ServiceType: domain.ServiceDye}, 3},
		{"cancel free haircut", 0, domain.AppointmentCancelled{UserID: 1, FreeHaircut: true}, 100},
		{"cancel paid", 20, domain.AppointmentCancelled{UserID: 1}, 20},
		{"book free haircut", 130, domain.FreeHaircutBooked{UserID: 1}, 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(tc.start)
			if err := l.Handle(ctx, s, tc.ev); err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if got := s.users[1].Points; got != tc.want {
				t.Fatalf("points = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCanRedeemFreeHaircut(t *testing.T) {
	if CanRedeemFreeHaircut(99) || !CanRedeemFreeHaircut(100) {
		t.Fatalf("threshold must be 100")
	}
}
