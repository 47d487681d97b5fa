package models

import "time"

type ProgressPost struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"booking"`

	CustomerID   uint `json:"customer_id"`
	LandscaperID uint `json:"landscaper_id"`

	Title string `gorm:"size:100" json:"title"`
	Notes string `gorm:"size:255" json:"notes"`

	Tasks []ProgressTask `gorm:"constraint:OnDelete:CASCADE;" json:"tasks"`

	// derived from Tasks, never written directly by handlers
	Percentage int `json:"percentage"`

	// exactly five object keys
	Images StringList `gorm:"type:text" json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProgressTask struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProgressPostID uint `gorm:"index;not null" json:"progress_post_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Completed bool   `json:"completed"`
	Position  int    `json:"position"`
}
