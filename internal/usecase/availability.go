package usecase

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrDateUnavailable = errors.New("date unavailable for booking")
	ErrStorageFailure  = errors.New("storage operation failed")
)

type ScheduleRepository interface {
	HoursForWeekday(ctx context.Context, weekday int) ([]readmodel.ScheduleWindow, error)
	BreaksForWeekday(ctx context.Context, weekday int) ([]readmodel.ScheduleWindow, error)
	ListHours(ctx context.Context) ([]readmodel.ScheduleWindow, error)
	ListBreaks(ctx context.Context) ([]readmodel.ScheduleWindow, error)
	ReplaceHours(ctx context.Context, rows []readmodel.ScheduleWindow) error
	ReplaceBreaks(ctx context.Context, rows []readmodel.ScheduleWindow) error
}

type BlackoutRepository interface {
	FindByDate(ctx context.Context, dateKey string) (*readmodel.Blackout, error)
	List(ctx context.Context) ([]readmodel.Blackout, error)
	Upsert(ctx context.Context, dateKey string, reason *string) error
	Remove(ctx context.Context, dateKey string) error
}

type AvailabilityUseCase interface {
	GetAvailability(ctx context.Context, serviceID uuid.UUID, dateKey string) (*readmodel.Availability, error)
}

type availabilityUseCaseImpl struct {
	serviceRepo ServiceRepository
	resolver    *scheduleResolver
	loc         *time.Location
}

func NewAvailabilityUseCase(
	serviceRepo ServiceRepository,
	resolver *scheduleResolver,
	loc *time.Location,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		serviceRepo: serviceRepo,
		resolver:    resolver,
		loc:         loc,
	}
}

// blackoutReason is returned when a day has no blackout reason on record.
const blackoutReason = "blackout"

func (a *availabilityUseCaseImpl) GetAvailability(
	ctx context.Context,
	serviceID uuid.UUID,
	dateKey string,
) (*readmodel.Availability, error) {
	svc, err := findBookableService(ctx, a.serviceRepo, serviceID)
	if err != nil {
		return nil, err
	}

	day, err := a.resolver.resolveDay(ctx, dateKey, svc)
	if err != nil {
		return nil, err
	}

	availability := &readmodel.Availability{
		Timezone:  a.loc.String(),
		Date:      dateKey,
		ServiceID: serviceID,
		Slots:     []string{},
	}

	if day.blackout != nil {
		reason := blackoutReason
		if day.blackout.Reason != nil && *day.blackout.Reason != "" {
			reason = *day.blackout.Reason
		}
		availability.Reason = &reason
		return availability, nil
	}

	if len(day.slots) > 0 {
		availability.Slots = day.slots
	}
	return availability, nil
}
