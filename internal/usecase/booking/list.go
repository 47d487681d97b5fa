package booking

import (
	"context"
	"time"

	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/booking"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
	"github.com/GreenvaleServices/landscape-platform/internal/timezone"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ByDate lists one calendar day. Either party id may be zero.
func (uc *ListBookings) ByDate(
	ctx context.Context,
	landscaperID uint,
	customerID uint,
	dateStr string,
	tz string,
) ([]models.Booking, error) {

	day, err := timezone.ParseDay(dateStr, tz)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListBookingsForPeriod(
		ctx,
		landscaperID,
		customerID,
		day,
		day.AddDate(0, 0, 1),
	)
}

func (uc *ListBookings) ByMonth(
	ctx context.Context,
	landscaperID uint,
	customerID uint,
	year int,
	month int,
	tz string,
) ([]models.Booking, error) {

	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_year_or_month")
	}

	loc := timezone.Location(tz)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)

	return uc.repo.ListBookingsForPeriod(
		ctx,
		landscaperID,
		customerID,
		start,
		start.AddDate(0, 1, 0),
	)
}
