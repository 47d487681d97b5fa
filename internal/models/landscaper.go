package models

import "time"

type Landscaper struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	// comma-joined set, e.g. "lawn care,irrigation,tree pruning"
	Specialties string  `gorm:"size:255" json:"specialties"`
	HourlyRate  float64 `json:"hourly_rate"`
	Bio         string  `gorm:"size:255" json:"bio"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
