package models

import "time"

// AvailabilityDay is one entry of a landscaper's availability ledger:
// a calendar day plus the slot strings offered on that day. At most one
// row per landscaper per day.
type AvailabilityDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LandscaperID uint `gorm:"uniqueIndex:idx_landscaper_day;not null" json:"landscaper_id"`

	// day-normalized: midnight, no time-of-day component
	Date  time.Time  `gorm:"uniqueIndex:idx_landscaper_day;not null" json:"date"`
	Slots StringList `gorm:"type:text" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
