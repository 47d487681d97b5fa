package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/booking"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Parties
// --------------------------------------------------

func (r *BookingGormRepository) GetLandscaperByID(
	ctx context.Context,
	id uint,
) (*models.Landscaper, error) {

	var ls models.Landscaper
	if err := r.db.WithContext(ctx).First(&ls, id).Error; err != nil {
		return nil, err
	}
	return &ls, nil
}

func (r *BookingGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var cu models.Customer
	if err := r.db.WithContext(ctx).First(&cu, id).Error; err != nil {
		return nil, err
	}
	return &cu, nil
}

// --------------------------------------------------
// Availability ledger
// --------------------------------------------------

func (r *BookingGormRepository) ListAvailability(
	ctx context.Context,
	landscaperID uint,
) ([]models.AvailabilityDay, error) {

	var days []models.AvailabilityDay
	if err := r.db.WithContext(ctx).
		Where("landscaper_id = ?", landscaperID).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}

	return days, nil
}

func (r *BookingGormRepository) GetAvailabilityDay(
	ctx context.Context,
	landscaperID uint,
	day time.Time,
) (*models.AvailabilityDay, error) {

	var entry models.AvailabilityDay
	if err := r.db.WithContext(ctx).
		Where("landscaper_id = ? AND date = ?", landscaperID, day).
		First(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *BookingGormRepository) SaveAvailabilityDay(
	ctx context.Context,
	entry *models.AvailabilityDay,
) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *BookingGormRepository) DeleteAvailabilityDay(
	ctx context.Context,
	landscaperID uint,
	day time.Time,
) error {

	// deleting a day with no entry is a success, not an error
	return r.db.WithContext(ctx).
		Where("landscaper_id = ? AND date = ?", landscaperID, day).
		Delete(&models.AvailabilityDay{}).Error
}

// --------------------------------------------------
// Booking (create / consume slot)
// --------------------------------------------------

func (r *BookingGormRepository) ConsumeSlotAndCreate(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var day models.AvailabilityDay
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("landscaper_id = ? AND date = ?", b.LandscaperID, b.AppointmentDate).
			First(&day).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("slot_unavailable")
		}
		if err != nil {
			return err
		}

		if !day.Slots.Contains(b.TimeSlot) {
			return httperr.ErrBusiness("slot_unavailable")
		}

		day.Slots = day.Slots.Without(b.TimeSlot)
		if err := tx.Save(&day).Error; err != nil {
			return err
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) RestoreSlot(
	ctx context.Context,
	landscaperID uint,
	day time.Time,
	slot string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var entry models.AvailabilityDay
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("landscaper_id = ? AND date = ?", landscaperID, day).
			First(&entry).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// ledger entry retracted since booking; nothing to restore
			return nil
		}
		if err != nil {
			return err
		}

		if entry.Slots.Contains(slot) {
			return nil
		}

		entry.Slots = append(entry.Slots, slot)
		return tx.Save(&entry).Error
	})
}

// --------------------------------------------------
// Booking (state / queries)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForLandscaper(
	ctx context.Context,
	bookingID uint,
	landscaperID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND landscaper_id = ?", bookingID, landscaperID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	landscaperID uint,
	customerID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Landscaper").
		Where("appointment_date >= ? AND appointment_date < ?", start, end)

	if landscaperID != 0 {
		q = q.Where("landscaper_id = ?", landscaperID)
	}
	if customerID != 0 {
		q = q.Where("customer_id = ?", customerID)
	}

	var bookings []models.Booking
	if err := q.
		Order("appointment_date ASC, time_slot ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
