package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Content         string `gorm:"size:255;not null" json:"content"`
	RecipientUserID uint   `gorm:"not null;index" json:"recipient_user_id"`
	Read            bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
