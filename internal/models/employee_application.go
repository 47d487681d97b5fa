package models

import "time"

type EmployeeApplication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Message   string `gorm:"size:255" json:"message"`

	ResumeKey string `gorm:"size:255" json:"resume_key"`

	Status string `gorm:"size:20;default:'received'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
