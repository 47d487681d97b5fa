package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	LandscaperID uint       `json:"landscaper_id"`
	Landscaper   Landscaper `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"landscaper"`

	// day-normalized date plus the slot string consumed from the ledger
	AppointmentDate time.Time `json:"appointment_date"`
	TimeSlot        string    `gorm:"size:30" json:"time_slot"`

	Status string `gorm:"size:20;default:'payment_pending'" json:"status"`

	SiteAddress string `gorm:"size:255" json:"site_address"`
	Notes       string `gorm:"size:255" json:"notes"`

	SiteImages  StringList `gorm:"type:text" json:"site_images"`
	SitePlanKey string     `gorm:"size:255" json:"site_plan_key"`

	PaymentRef string `gorm:"size:100" json:"payment_ref"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
