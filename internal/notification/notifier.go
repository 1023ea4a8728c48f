package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const TypeAppointmentCreated = "appointment_created"

type Notifier struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// AppointmentBooked broadcasts a new booking to staff. It runs after the
// booking commits; a failure is logged and never returned.
func (n *Notifier) AppointmentBooked(ctx context.Context, customer string, ap *models.Appointment) {
	if n == nil {
		return
	}

	row := models.Notification{
		Title: "Nueva cita reservada",
		Message: fmt.Sprintf("Nueva cita reservada por %s para el %s a las %s",
			customer, displayDate(ap.Date), ap.Time),
		Type: TypeAppointmentCreated,
	}

	if err := n.db.WithContext(ctx).Create(&row).Error; err != nil {
		slog.ErrorContext(ctx, "notification create failed",
			"appointment_id", ap.ID,
			"user", customer,
			"date", ap.Date,
			"time", ap.Time,
			"error", err,
		)
		return
	}

	slog.InfoContext(ctx, "notification created", "appointment_id", ap.ID)
}

// displayDate turns YYYY-MM-DD into DD-MM-YYYY.
func displayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// ======================================================
// Staff feed (broadcast rows)
// ======================================================

func (n *Notifier) ListForStaff(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	q := n.db.WithContext(ctx).Where("user_id IS NULL")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var rows []models.Notification
	err := q.Order("created_at DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (n *Notifier) MarkRead(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := n.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id IS NULL AND id IN ?", ids).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (n *Notifier) MarkAllRead(ctx context.Context) (int64, error) {
	res := n.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id IS NULL AND is_read = ?", false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// ======================================================
// Personal feed
// ======================================================

func (n *Notifier) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	var rows []models.Notification
	err := n.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (n *Notifier) MarkUserRead(ctx context.Context, userID, id uint) error {
	var row models.Notification
	err := n.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFound("notification_not_found", "Notificación no encontrada")
	}
	if err != nil {
		return err
	}
	return n.db.WithContext(ctx).Model(&row).Update("is_read", true).Error
}
