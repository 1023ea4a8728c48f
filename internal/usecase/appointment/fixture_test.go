package appointment

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/db/dbtest"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

var madrid = timezone.Location("Europe/Madrid")

// Monday 2025-06-02 14:25 in Madrid.
var monday1425 = time.Date(2025, 6, 2, 14, 25, 0, 0, madrid)

type fixture struct {
	t        *testing.T
	db       *gorm.DB
	repo     *repository.AppointmentGormRepository
	clock    timezone.FixedClock
	customer *models.User
	admin    *models.User
	barber   *models.Barber
	other    *models.Barber
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	gdb := dbtest.New(t)

	f := &fixture{
		t:        t,
		db:       gdb,
		repo:     repository.NewAppointmentGormRepository(gdb),
		clock:    timezone.FixedClock{T: now},
		customer: &models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"},
		admin:    &models.User{Name: "Root", Email: "root@example.com", PasswordHash: "x", IsAdmin: true},
		barber:   &models.Barber{Name: "Carlos"},
		other:    &models.Barber{Name: "Luis"},
	}
	for _, v := range []any{f.customer, f.admin, f.barber, f.other} {
		if err := gdb.Create(v).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return f
}

func (f *fixture) resolver() *BarberResolver {
	return NewBarberResolver(f.repo, "@barbero.com")
}

func (f *fixture) create() *CreateAppointment {
	return NewCreateAppointment(
		f.repo, f.clock, loyalty.NewLedger(), lock.NewLocalLocker(),
		time.Second, notification.New(f.db), nil,
	)
}

func (f *fixture) update() *UpdateAppointment {
	return NewUpdateAppointment(f.repo, f.resolver(), f.clock, loyalty.NewLedger(), nil)
}

func (f *fixture) availability() *GetAvailability {
	return NewGetAvailability(f.repo, f.clock, domain.DefaultPolicy())
}

func (f *fixture) setPoints(u *models.User, points int) {
	f.t.Helper()
	if err := f.db.Model(u).Update("points", points).Error; err != nil {
		f.t.Fatalf("set points: %v", err)
	}
}

func (f *fixture) points(u *models.User) int {
	f.t.Helper()
	var fresh models.User
	if err := f.db.First(&fresh, u.ID).Error; err != nil {
		f.t.Fatalf("reload user: %v", err)
	}
	return fresh.Points
}

// insert writes an appointment directly, bypassing booking rules.
func (f *fixture) insert(ap models.Appointment) *models.Appointment {
	f.t.Helper()
	if ap.UserID == 0 {
		ap.UserID = f.customer.ID
	}
	if ap.BarberID == 0 {
		ap.BarberID = f.barber.ID
	}
	if ap.ServiceType == "" {
		ap.ServiceType = "corte"
	}
	if ap.Status == "" {
		ap.Status = "pending"
	}
	if err := f.db.Create(&ap).Error; err != nil {
		f.t.Fatalf("insert: %v", err)
	}
	return &ap
}

func (f *fixture) reload(id uint) *models.Appointment {
	f.t.Helper()
	var ap models.Appointment
	if err := f.db.First(&ap, id).Error; err != nil {
		f.t.Fatalf("reload appointment: %v", err)
	}
	return &ap
}

func ptr[T any](v T) *T { return &v }

func modelsAt(date, hhmm string) models.Appointment {
	return models.Appointment{Date: date, Time: hhmm}
}

func modelsAtStatus(date, hhmm, status string) models.Appointment {
	return models.Appointment{Date: date, Time: hhmm, Status: status}
}
