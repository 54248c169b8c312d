package appointment

import "github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

func InitialStatus() Status {
	return StatusPending
}

// BlocksSlot reports whether an appointment in this status still occupies
// its time range for availability purposes.
func (s Status) BlocksSlot() bool {
	return s != StatusCancelled && s != StatusNoShow
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// ===============================
// Validations
// ===============================

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransition validates a barber-driven status change. Completed,
// cancelled and no-show are terminal.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_status_transition")
}
