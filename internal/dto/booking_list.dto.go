package dto

import (
	"time"

	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type BookingListDTO struct {
	ID              uint      `json:"id"`
	AppointmentDate time.Time `json:"appointment_date"`
	TimeSlot        string    `json:"time_slot"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	LandscaperName  string    `json:"landscaper_name"`
	SiteAddress     string    `json:"site_address"`
}

func FromBooking(b models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:              b.ID,
		AppointmentDate: b.AppointmentDate,
		TimeSlot:        b.TimeSlot,
		Status:          b.Status,
		CustomerName:    b.Customer.Name,
		LandscaperName:  b.Landscaper.Name,
		SiteAddress:     b.SiteAddress,
	}
}

func FromBookings(bs []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}
