package barber

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// DefaultImageURL is assigned to barber rows created for unlinked staff users.
const DefaultImageURL = "/imagenes/peluquero.png"

// ======================================================
// LIST (public)
// ======================================================

// ListBarbers returns the barbers that have a staff account behind them.
// Staff users without a barber row are given one first.
type ListBarbers struct {
	db          *gorm.DB
	emailDomain string
}

func NewListBarbers(db *gorm.DB, emailDomain string) *ListBarbers {
	return &ListBarbers{db: db, emailDomain: strings.ToLower(emailDomain)}
}

func (uc *ListBarbers) Execute(ctx context.Context) ([]models.Barber, error) {
	if err := uc.sync(ctx); err != nil {
		// The listing still works with whatever rows exist.
		slog.WarnContext(ctx, "barber sync failed", "error", err)
	}

	var barbers []models.Barber
	err := uc.db.WithContext(ctx).
		Where("id IN (?)", uc.staff(ctx).Select("barbero_id").Where("barbero_id IS NOT NULL")).
		Order("id ASC").
		Find(&barbers).Error
	return barbers, err
}

func (uc *ListBarbers) staff(ctx context.Context) *gorm.DB {
	q := uc.db.WithContext(ctx).Model(&models.User{})
	if uc.emailDomain == "" {
		return q.Where("is_barbero = ?", true)
	}
	return q.Where("is_barbero = ? OR LOWER(email) LIKE ?", true, "%"+uc.emailDomain)
}

func (uc *ListBarbers) sync(ctx context.Context) error {
	var users []models.User
	err := uc.staff(ctx).
		Where("barbero_id IS NULL OR barbero_id NOT IN (?)", uc.db.Model(&models.Barber{}).Select("id")).
		Find(&users).Error
	if err != nil {
		return err
	}

	for _, u := range users {
		err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var b models.Barber
			err := tx.Where("name = ?", u.Name).First(&b).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				b = models.Barber{Name: u.Name, ImageURL: DefaultImageURL}
				err = tx.Create(&b).Error
			}
			if err != nil {
				return err
			}

			return tx.Model(&models.User{}).
				Where("id = ?", u.ID).
				Updates(map[string]any{"barbero_id": b.ID, "is_barbero": true}).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ======================================================
// CREATE (admin)
// ======================================================

type CreateBarberInput struct {
	Name     string
	ImageURL string
}

type CreateBarber struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCreateBarber(db *gorm.DB, audit *audit.Dispatcher) *CreateBarber {
	return &CreateBarber{db: db, audit: audit}
}

func (uc *CreateBarber) Execute(ctx context.Context, actorID uint, in CreateBarberInput) (*models.Barber, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return nil, httperr.ValidationField("name", "El campo name es obligatorio.")
	case utf8.RuneCountInString(name) > 100:
		return nil, httperr.ValidationField("name", "El campo name no debe ser mayor que 100 caracteres.")
	}

	var count int64
	if err := uc.db.WithContext(ctx).Model(&models.Barber{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ValidationField("name", "El valor del campo name ya está en uso.")
	}

	b := models.Barber{Name: name, ImageURL: in.ImageURL}
	if b.ImageURL == "" {
		b.ImageURL = DefaultImageURL
	}
	if err := uc.db.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &b.ID,
	})
	return &b, nil
}
