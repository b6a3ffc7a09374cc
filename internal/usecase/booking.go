package usecase

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrSlotTaken = errors.New("time slot already taken")

type AppointmentRepository interface {
	ConfirmedBetween(ctx context.Context, from, to time.Time) ([]readmodel.AppointmentSpan, error)
	CreateIfFree(ctx context.Context, appt *appointment.Appointment) (*readmodel.BookingView, error)
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]readmodel.AppointmentDetail, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type CreateBookingInput struct {
	ServiceID    uuid.UUID
	Date         string
	Time         string
	CustomerName string
	Phone        string
	Email        *string
	Notes        *string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*readmodel.BookingView, error)
}

type bookingUseCaseImpl struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	resolver        *scheduleResolver
	loc             *time.Location
}

func NewBookingUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	resolver *scheduleResolver,
	loc *time.Location,
) BookingUseCase {
	return &bookingUseCaseImpl{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		resolver:        resolver,
		loc:             loc,
	}
}

// CreateBooking accepts a booking only at a start time the availability
// query would have offered at this instant, then hands the final overlap
// decision to the storage layer. The recompute narrows the race window;
// the transactional insert closes it.
func (b *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	in CreateBookingInput,
) (*readmodel.BookingView, error) {
	startMin, err := schedule.ParseTime(in.Time)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	svc, err := findBookableService(ctx, b.serviceRepo, in.ServiceID)
	if err != nil {
		return nil, err
	}

	day, err := b.resolver.resolveDay(ctx, in.Date, svc)
	if err != nil {
		return nil, err
	}
	if day.blackout != nil || day.closed {
		return nil, ErrDateUnavailable
	}
	if !containsSlot(day.slots, in.Time) {
		return nil, ErrSlotTaken
	}

	startAt, err := schedule.LocalTimeOnDate(in.Date, startMin, b.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	appt, err := appointment.New(
		in.ServiceID,
		in.CustomerName,
		in.Phone,
		in.Email,
		in.Notes,
		startAt.UTC(),
		svc.BusyLengthMin(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	view, err := b.appointmentRepo.CreateIfFree(ctx, appt)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotTaken
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	return view, nil
}

func containsSlot(slots []string, hhmm string) bool {
	for _, s := range slots {
		if s == hhmm {
			return true
		}
	}
	return false
}
