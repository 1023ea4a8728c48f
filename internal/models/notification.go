package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"size:150;not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	Type    string `gorm:"size:50;index" json:"type"`

	// nil = broadcast to staff
	UserID *uint `gorm:"index" json:"user_id"`
	Read   bool  `gorm:"column:is_read;default:false;index" json:"read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
