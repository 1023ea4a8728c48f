package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction. Returning an error rolls everything back.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	FindBarberByName(
		ctx context.Context,
		name string,
	) (*models.Barber, error)

	// -------- User --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// GetUserForUpdate locks the user row until the transaction ends.
	GetUserForUpdate(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	SaveUserPoints(
		ctx context.Context,
		userID uint,
		points int,
	) error

	LinkUserToBarber(
		ctx context.Context,
		userID uint,
		barberID uint,
	) error

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// GetAppointmentForUpdate locks the appointment row until the
	// transaction ends. Relations are not loaded.
	GetAppointmentForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// HasActiveAppointment ignores excludeID (0 = none).
	HasActiveAppointment(
		ctx context.Context,
		barberID uint,
		date string,
		hhmm string,
		excludeID uint,
	) (bool, error)

	// ListBookedTimes returns the times of active appointments on date,
	// across all barbers when barberID is nil.
	ListBookedTimes(
		ctx context.Context,
		date string,
		barberID *uint,
	) ([]string, error)

	ListAppointmentsForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)
}
