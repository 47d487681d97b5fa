package models

import "time"

type Rating struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID   uint `gorm:"uniqueIndex:idx_customer_landscaper;not null" json:"customer_id"`
	LandscaperID uint `gorm:"uniqueIndex:idx_customer_landscaper;not null" json:"landscaper_id"`

	Score   int    `json:"score"`
	Comment string `gorm:"size:255" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
