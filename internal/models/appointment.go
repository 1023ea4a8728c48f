package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"index;not null" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	BarberID uint    `gorm:"index;not null" json:"barbero_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barbero,omitempty"`

	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	ServiceType   string `gorm:"size:30;not null" json:"service_type"`
	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	IsFreeHaircut bool   `gorm:"default:false" json:"is_free_haircut"`
	Notes         string `gorm:"type:text" json:"notes"`

	Deleted  bool `gorm:"default:false" json:"deleted"`
	Archived bool `gorm:"default:false" json:"archived"`

	// SlotKey is set only while the appointment holds its slot; the unique
	// index on it rejects a second active booking for the same barber/date/time.
	SlotKey *string `gorm:"size:64;uniqueIndex" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive reports whether the appointment occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != "cancelled" && !a.Deleted && !a.Archived
}

func (a *Appointment) BeforeSave(tx *gorm.DB) error {
	if a.IsActive() {
		key := AppointmentSlotKey(a.BarberID, a.Date, a.Time)
		a.SlotKey = &key
	} else {
		a.SlotKey = nil
	}
	return nil
}

func AppointmentSlotKey(barberID uint, date, hhmm string) string {
	return fmt.Sprintf("%d|%s|%s", barberID, date, hhmm)
}
