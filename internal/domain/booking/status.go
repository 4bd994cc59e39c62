package booking

import "github.com/piyushrajyadav/Nexusaloon/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

func Valid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Active reports whether a booking in this status blocks its time window.
// Cancelled and no-show bookings free the slot.
func (s Status) Active() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// InitialStatus: bookings are auto-confirmed on creation, there is no
// pending-approval step.
func InitialStatus() Status {
	return StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanCancel allows customer cancellation only while the booking is still
// upcoming. Completed work stays completed.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanSetStatus guards administrative transitions. COMPLETED is terminal;
// everything else may be corrected by staff.
func CanSetStatus(current, next Status) error {
	if !Valid(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	if current == StatusCompleted && next != StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
