package models

import (
	"strings"
	"time"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Points int `gorm:"not null;default:0;check:points >= 0" json:"points"`

	IsAdmin  bool  `gorm:"default:false" json:"is_admin"`
	IsBarber bool  `gorm:"column:is_barbero;default:false" json:"is_barbero"`
	BarberID *uint `gorm:"column:barbero_id;index" json:"barbero_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasBarberEmail reports whether the email ends with the staff domain
// (e.g. "@barbero.com").
func (u *User) HasBarberEmail(domain string) bool {
	if domain == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Email), strings.ToLower(domain))
}

func (u *User) Role() string {
	switch {
	case u.IsAdmin:
		return "admin"
	case u.IsBarber:
		return "barber"
	default:
		return "customer"
	}
}
