package booking

import (
	"time"

	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Apply moves a booking to a new status and records the transition
// timestamp. force skips the transition table (admin override) but still
// rejects unknown statuses.
func Apply(b *models.Booking, to Status, now time.Time, force bool) error {
	if force {
		if !IsValid(to) {
			return CanTransition(Status(b.Status), to)
		}
	} else {
		if err := CanTransition(Status(b.Status), to); err != nil {
			return err
		}
	}

	b.Status = string(to)

	switch to {
	case StatusConfirmed:
		b.ConfirmedAt = &now
	case StatusInProgress:
		b.StartedAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	case StatusCancelled:
		b.CancelledAt = &now
	}

	return nil
}
