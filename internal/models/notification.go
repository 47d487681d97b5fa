package models

import "time"

// Notification rows are written only through the notify dispatcher;
// the primary operation never waits on them.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RecipientID   uint   `gorm:"index;not null" json:"recipient_id"`
	RecipientRole string `gorm:"size:20;not null" json:"recipient_role"`

	Kind    string `gorm:"size:50;not null" json:"kind"`
	Message string `gorm:"size:255" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
