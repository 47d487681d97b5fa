package booking

import (
	"context"
	"log"

	"github.com/GreenvaleServices/landscape-platform/internal/audit"
	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/booking"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
	"github.com/GreenvaleServices/landscape-platform/internal/notify"
	"github.com/GreenvaleServices/landscape-platform/internal/payments"
	"github.com/GreenvaleServices/landscape-platform/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID   uint
	LandscaperID uint

	Date string
	Slot string

	SiteAddress string
	Notes       string

	SiteImages  []string
	SitePlanKey string

	Timezone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    AuditDispatcher
	notify   NotifyDispatcher
	payments payments.PreferenceCreator // optional
}

func NewCreateBooking(
	repo domain.Repository,
	auditD AuditDispatcher,
	notifyD NotifyDispatcher,
	pay payments.PreferenceCreator,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    auditD,
		notify:   notifyD,
		payments: pay,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.Date == "" || in.Slot == "" {
		return nil, httperr.ErrBusiness("missing_date_or_slot")
	}

	ls, err := uc.repo.GetLandscaperByID(ctx, in.LandscaperID)
	if err != nil {
		return nil, httperr.ErrBusiness("landscaper_not_found")
	}

	day, err := timezone.ParseDay(in.Date, in.Timezone)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if day.Before(timezone.DayOf(timezone.NowIn(in.Timezone))) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	b := &models.Booking{
		CustomerID:      in.CustomerID,
		LandscaperID:    ls.ID,
		AppointmentDate: day,
		TimeSlot:        in.Slot,
		Status:          string(domain.InitialStatus()),
		SiteAddress:     in.SiteAddress,
		Notes:           in.Notes,
		SiteImages:      models.StringList(in.SiteImages),
		SitePlanKey:     in.SitePlanKey,
	}

	// slot removal and booking creation happen in one transaction;
	// a taken slot fails the whole thing
	if err := uc.repo.ConsumeSlotAndCreate(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.CustomerID,
		ActorRole: middleware.RoleCustomer,
		Action:    "booking_created",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	uc.notify.Dispatch(notify.Event{
		RecipientID:   ls.ID,
		RecipientRole: middleware.RoleLandscaper,
		Kind:          "booking_created",
		Message:       "New booking for " + in.Date + " " + in.Slot,
	})

	uc.notify.Dispatch(notify.Event{
		RecipientID:   in.CustomerID,
		RecipientRole: middleware.RoleCustomer,
		Kind:          "booking_created",
		Message:       "Booking requested with " + ls.Name + " for " + in.Date + " " + in.Slot,
	})

	// payment preference is best effort: log the failure, keep the booking
	if uc.payments != nil && ls.HourlyRate > 0 {
		ref, perr := uc.payments.CreatePreference(ctx, b, ls.HourlyRate)
		if perr != nil {
			log.Println("payment preference error:", perr)
		} else {
			b.PaymentRef = ref
			if uerr := uc.repo.UpdateBooking(ctx, b); uerr != nil {
				log.Println("payment ref update error:", uerr)
			}
		}
	}

	return b, nil
}
