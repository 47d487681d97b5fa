package booking

import (
	"context"

	"github.com/GreenvaleServices/landscape-platform/internal/audit"
	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/booking"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
	"github.com/GreenvaleServices/landscape-platform/internal/notify"
	"github.com/GreenvaleServices/landscape-platform/internal/timezone"
)

type SetStatusInput struct {
	BookingID uint
	NewStatus string

	ActorID   uint
	ActorRole string

	// Force skips the transition table; only honored for admins.
	Force bool

	Timezone string
}

type SetStatus struct {
	repo   domain.Repository
	audit  AuditDispatcher
	notify NotifyDispatcher
}

func NewSetStatus(
	repo domain.Repository,
	auditD AuditDispatcher,
	notifyD NotifyDispatcher,
) *SetStatus {
	return &SetStatus{
		repo:   repo,
		audit:  auditD,
		notify: notifyD,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	in SetStatusInput,
) (*models.Booking, error) {

	var b *models.Booking
	var err error

	switch in.ActorRole {
	case middleware.RoleAdmin:
		b, err = uc.repo.GetBooking(ctx, in.BookingID)
	case middleware.RoleLandscaper:
		b, err = uc.repo.GetBookingForLandscaper(ctx, in.BookingID, in.ActorID)
	default:
		return nil, httperr.ErrBusiness("forbidden")
	}
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	force := in.Force && in.ActorRole == middleware.RoleAdmin

	now := timezone.NowIn(in.Timezone)
	if err := domain.Apply(b, domain.Status(in.NewStatus), now, force); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// a cancelled booking frees its slot again
	if domain.Status(b.Status) == domain.StatusCancelled {
		if rerr := uc.repo.RestoreSlot(ctx, b.LandscaperID, b.AppointmentDate, b.TimeSlot); rerr != nil {
			// booking stays cancelled either way
			uc.audit.Dispatch(audit.Event{
				ActorID:   &in.ActorID,
				ActorRole: in.ActorRole,
				Action:    "slot_restore_failed",
				Entity:    "booking",
				EntityID:  &b.ID,
			})
		}
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.ActorID,
		ActorRole: in.ActorRole,
		Action:    "booking_status_" + in.NewStatus,
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	uc.notify.Dispatch(notify.Event{
		RecipientID:   b.CustomerID,
		RecipientRole: middleware.RoleCustomer,
		Kind:          "booking_status_changed",
		Message:       "Your booking is now " + b.Status,
	})

	return b, nil
}
