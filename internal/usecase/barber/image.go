package barber

import (
	"context"
	"errors"
	"io"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

// UploadBarberImage re-encodes the picture as WebP, stores it and points the
// barber row at the new URL.
type UploadBarberImage struct {
	db    *gorm.DB
	store storage.ImageStore
	audit *audit.Dispatcher
}

func NewUploadBarberImage(db *gorm.DB, store storage.ImageStore, audit *audit.Dispatcher) *UploadBarberImage {
	return &UploadBarberImage{db: db, store: store, audit: audit}
}

func (uc *UploadBarberImage) Execute(ctx context.Context, actorID, barberID uint, r io.Reader) (*models.Barber, error) {
	if uc.store == nil {
		return nil, httperr.New(httperr.KindUnavailable, "image_storage_disabled", "Almacenamiento de imágenes no configurado")
	}

	var b models.Barber
	if err := uc.db.WithContext(ctx).First(&b, barberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("barber_not_found", "Barbero no encontrado")
		}
		return nil, err
	}

	data, err := storage.PrepareImage(r)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) {
			return nil, httperr.ValidationField("image", "El campo image debe ser una imagen válida de hasta 5 MB.")
		}
		if errors.Is(err, storage.ErrImageTooLarge) {
			return nil, httperr.ValidationField("image", "El campo image no debe superar los 25 megapíxeles.")
		}
		return nil, err
	}

	url, err := uc.store.PutBarberImage(ctx, b.ID, data)
	if err != nil {
		return nil, err
	}

	if err := uc.db.WithContext(ctx).Model(&b).Update("image_url", url).Error; err != nil {
		return nil, err
	}
	b.ImageURL = url

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "barber_image_updated",
		Entity:   "barber",
		EntityID: &b.ID,
		Metadata: map[string]any{"image_url": url},
	})
	return &b, nil
}
