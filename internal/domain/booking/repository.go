package booking

import (
	"context"
	"time"

	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type Repository interface {
	// -------- Parties --------
	GetLandscaperByID(
		ctx context.Context,
		id uint,
	) (*models.Landscaper, error)

	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	// -------- Availability ledger --------
	ListAvailability(
		ctx context.Context,
		landscaperID uint,
	) ([]models.AvailabilityDay, error)

	GetAvailabilityDay(
		ctx context.Context,
		landscaperID uint,
		day time.Time,
	) (*models.AvailabilityDay, error)

	// SaveAvailabilityDay creates or updates one ledger entry. Concurrent
	// writers to the same day race last-write-wins.
	SaveAvailabilityDay(
		ctx context.Context,
		entry *models.AvailabilityDay,
	) error

	// DeleteAvailabilityDay is a silent no-op when no entry matches.
	DeleteAvailabilityDay(
		ctx context.Context,
		landscaperID uint,
		day time.Time,
	) error

	// -------- Booking (create / consume slot) --------

	// ConsumeSlotAndCreate removes the chosen slot from the landscaper's
	// ledger and creates the booking in one transaction. Fails with
	// slot_unavailable when the slot is no longer offered.
	ConsumeSlotAndCreate(
		ctx context.Context,
		b *models.Booking,
	) error

	// RestoreSlot puts a slot back on the ledger day if the entry still
	// exists. Used when a booking is cancelled.
	RestoreSlot(
		ctx context.Context,
		landscaperID uint,
		day time.Time,
		slot string,
	) error

	// -------- Booking (state / queries) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingForLandscaper(
		ctx context.Context,
		bookingID uint,
		landscaperID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	ListBookingsForPeriod(
		ctx context.Context,
		landscaperID uint,
		customerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
