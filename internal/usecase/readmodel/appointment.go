package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentSpan is the minimal projection used for availability: just
// the busy interval of a Confirmed appointment.
type AppointmentSpan struct {
	StartAt time.Time
	EndAt   time.Time
}

// BookingView is what a successful booking returns to the caller.
type BookingView struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
	Status    string
	CreatedAt time.Time
}

// AppointmentDetail is the admin-facing projection with customer fields
// and the service name joined in.
type AppointmentDetail struct {
	ID           uuid.UUID
	ServiceName  string
	CustomerName string
	Phone        string
	Email        *string
	Notes        *string
	StartAt      time.Time
	EndAt        time.Time
	Status       string
	CreatedAt    time.Time
}
