package appointment

import "errors"

var ErrNotCancellable = errors.New("appointment is not in a cancellable state")

// Status follows a one-way machine: Confirmed is the only entry state and
// Cancelled is terminal.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// CanCancel reports whether the Confirmed→Cancelled transition is allowed
// from the current state.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return ErrNotCancellable
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
