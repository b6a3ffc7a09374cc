package appointment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrMissingPhone        = errors.New("phone is required")
	ErrInvalidBusyLength   = errors.New("busy length must be positive")
)

// Appointment is the single write-side aggregate. Its occupied span is the
// busy interval [StartAt, EndAt) where EndAt already includes the
// service's trailing buffer; overlap rules apply to this span, never to
// the raw service duration.
type Appointment struct {
	id           uuid.UUID
	serviceID    uuid.UUID
	customerName string
	phone        string
	email        *string
	notes        *string
	startAt      time.Time
	endAt        time.Time
	status       Status
	createdAt    time.Time
}

// New creates a Confirmed appointment whose end instant is derived from
// the busy length, keeping the endAt = startAt + duration + buffer
// invariant by construction.
func New(
	serviceID uuid.UUID,
	customerName, phone string,
	email, notes *string,
	startAtUTC time.Time,
	busyLenMin int,
) (*Appointment, error) {
	customerName = strings.TrimSpace(customerName)
	phone = strings.TrimSpace(phone)

	if customerName == "" {
		return nil, ErrMissingCustomerName
	}
	if phone == "" {
		return nil, ErrMissingPhone
	}
	if busyLenMin <= 0 {
		return nil, ErrInvalidBusyLength
	}

	return &Appointment{
		id:           uuid.New(),
		serviceID:    serviceID,
		customerName: customerName,
		phone:        phone,
		email:        email,
		notes:        notes,
		startAt:      startAtUTC,
		endAt:        startAtUTC.Add(time.Duration(busyLenMin) * time.Minute),
		status:       InitialStatus(),
	}, nil
}

func Reconstruct(
	id, serviceID uuid.UUID,
	customerName, phone string,
	email, notes *string,
	startAt, endAt time.Time,
	status Status,
	createdAt time.Time,
) *Appointment {
	return &Appointment{
		id:           id,
		serviceID:    serviceID,
		customerName: customerName,
		phone:        phone,
		email:        email,
		notes:        notes,
		startAt:      startAt,
		endAt:        endAt,
		status:       status,
		createdAt:    createdAt,
	}
}

// Cancel performs the only allowed state transition. Cancelled
// appointments stop blocking availability from this point on.
func (a *Appointment) Cancel() error {
	if err := CanCancel(a.status); err != nil {
		return err
	}
	a.status = StatusCancelled
	return nil
}

// Overlaps reports whether two busy intervals intersect.
func (a *Appointment) Overlaps(other *Appointment) bool {
	return a.startAt.Before(other.endAt) && a.endAt.After(other.startAt)
}

func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) ServiceID() uuid.UUID { return a.serviceID }
func (a *Appointment) CustomerName() string { return a.customerName }
func (a *Appointment) Phone() string        { return a.phone }
func (a *Appointment) Email() *string       { return a.email }
func (a *Appointment) Notes() *string       { return a.notes }
func (a *Appointment) StartAt() time.Time   { return a.startAt }
func (a *Appointment) EndAt() time.Time     { return a.endAt }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
