package booking

import (
	"context"

	"github.com/GreenvaleServices/landscape-platform/internal/audit"
	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/booking"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
)

// DeleteBooking is a hard delete with no cascade to carts, payments or
// progress posts.
type DeleteBooking struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewDeleteBooking(repo domain.Repository, auditD AuditDispatcher) *DeleteBooking {
	return &DeleteBooking{repo: repo, audit: auditD}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	actorID uint,
	actorRole string,
) error {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &actorID,
		ActorRole: actorRole,
		Action:    "booking_deleted",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return nil
}
