package models

import "time"

type Machinery struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Category    string  `gorm:"size:50" json:"category"`
	DailyRate   float64 `json:"daily_rate"`
	ImageKey    string  `gorm:"size:255" json:"image_key"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MachineryRental struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	MachineryID uint      `json:"machinery_id"`
	Machinery   Machinery `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"machinery"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      int       `json:"days"`

	// days * daily rate, captured at request time
	TotalPrice float64 `json:"total_price"`

	Status string `gorm:"size:20;default:'requested'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
