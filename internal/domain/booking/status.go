package booking

import "github.com/GreenvaleServices/landscape-platform/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPaymentPending Status = "payment_pending"
	StatusConfirmed      Status = "confirmed"
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

func IsValid(s Status) bool {
	switch s {
	case StatusPaymentPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Transition table
// ===============================

// transitions lists the statuses each status may move to. Anything not
// listed is rejected; admins may bypass the table via force.
var transitions = map[Status][]Status{
	StatusPaymentPending: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusInProgress, StatusCancelled},
	StatusInProgress:     {StatusCompleted, StatusCancelled},
	StatusCompleted:      {},
	StatusCancelled:      {},
}

func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_status_transition")
}

func InitialStatus() Status {
	return StatusPaymentPending
}
