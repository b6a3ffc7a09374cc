package usecase

import (
	"context"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/service"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// scheduleResolver computes the bookable slot list for one service on one
// local day. Both the availability query and the booking write path go
// through it, so a booking is only accepted at a start time the public
// calendar would have offered.
type scheduleResolver struct {
	scheduleRepo    ScheduleRepository
	blackoutRepo    BlackoutRepository
	appointmentRepo AppointmentRepository
	loc             *time.Location
	stepMin         int
}

func NewScheduleResolver(
	scheduleRepo ScheduleRepository,
	blackoutRepo BlackoutRepository,
	appointmentRepo AppointmentRepository,
	loc *time.Location,
	salonCfg config.SalonConfig,
) *scheduleResolver {
	return &scheduleResolver{
		scheduleRepo:    scheduleRepo,
		blackoutRepo:    blackoutRepo,
		appointmentRepo: appointmentRepo,
		loc:             loc,
		stepMin:         salonCfg.SlotStepMin,
	}
}

// resolvedDay is the outcome of resolving one local day. Exactly one of
// three shapes comes back: a blackout, a closed day (no enabled hours), or
// the slot list for an open day.
type resolvedDay struct {
	blackout *readmodel.Blackout
	closed   bool
	slots    []string
}

func (r *scheduleResolver) resolveDay(
	ctx context.Context,
	dateKey string,
	svc *service.Service,
) (*resolvedDay, error) {
	if _, err := schedule.ParseDateKey(dateKey); err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	blackout, err := r.blackoutRepo.FindByDate(ctx, dateKey)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if blackout != nil {
		return &resolvedDay{blackout: blackout}, nil
	}

	weekday, err := schedule.WeekdayOf(dateKey, r.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	hours, err := r.scheduleRepo.HoursForWeekday(ctx, weekday)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if len(hours) == 0 {
		return &resolvedDay{closed: true}, nil
	}

	breaks, err := r.scheduleRepo.BreaksForWeekday(ctx, weekday)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	booked, err := r.bookedWindows(ctx, dateKey)
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateSlots(schedule.SlotInput{
		OpenWindows:        toIntervals(hours),
		BreakWindows:       toIntervals(breaks),
		BookedWindows:      booked,
		StepMin:            r.stepMin,
		ServiceDurationMin: svc.DurationMin(),
		ServiceBufferMin:   svc.BufferMin(),
	})

	return &resolvedDay{slots: slots}, nil
}

// bookedWindows projects every Confirmed appointment intersecting the
// local day onto that day's minute axis.
func (r *scheduleResolver) bookedWindows(ctx context.Context, dateKey string) ([]schedule.MinuteInterval, error) {
	from, to, err := schedule.LocalDayUTCRange(dateKey, r.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	spans, err := r.appointmentRepo.ConfirmedBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	booked := make([]schedule.MinuteInterval, 0, len(spans))
	for _, span := range spans {
		iv, ok, err := schedule.UTCSpanToLocalMinutes(span.StartAt, span.EndAt, dateKey, r.loc)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidRequest)
		}
		if ok {
			booked = append(booked, iv)
		}
	}
	return booked, nil
}

// findBookableService loads a service as its domain entity and treats
// inactive ones the same as missing ones, so retired services never leak
// through the public surface.
func findBookableService(ctx context.Context, repo ServiceRepository, serviceID uuid.UUID) (*service.Service, error) {
	rm, err := repo.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	svc, err := service.New(rm.ID, rm.Name, rm.DurationMin, rm.BufferMin, rm.PriceStartingAtCents, rm.Active)
	if err != nil {
		// A stored row violating the entity rules means the schema
		// constraints were bypassed.
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if !svc.IsBookable() {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func toIntervals(windows []readmodel.ScheduleWindow) []schedule.MinuteInterval {
	intervals := make([]schedule.MinuteInterval, 0, len(windows))
	for _, w := range windows {
		intervals = append(intervals, schedule.MinuteInterval{StartMin: w.StartMin, EndMin: w.EndMin})
	}
	return intervals
}
