package usecase

import (
	"context"
	"errors"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidScheduleRows       = errors.New("invalid schedule rows")
	ErrBlackoutNotFound          = errors.New("blackout not found")
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrAppointmentNotCancellable = errors.New("appointment is not cancellable")
)

// upcomingAppointmentsLimit caps the admin appointment list.
const upcomingAppointmentsLimit = 200

type AdminUseCase interface {
	GetScheduleConfig(ctx context.Context) (*readmodel.ScheduleConfig, error)
	ReplaceBusinessHours(ctx context.Context, rows []readmodel.ScheduleWindow) error
	ReplaceBreaks(ctx context.Context, rows []readmodel.ScheduleWindow) error
	AddBlackout(ctx context.Context, dateKey string, reason *string) error
	RemoveBlackout(ctx context.Context, dateKey string) error
	ListUpcomingAppointments(ctx context.Context) ([]readmodel.AppointmentDetail, error)
	CancelAppointment(ctx context.Context, id uuid.UUID) error
}

type adminUseCaseImpl struct {
	scheduleRepo    ScheduleRepository
	blackoutRepo    BlackoutRepository
	appointmentRepo AppointmentRepository
	clock           clock.Clock
}

func NewAdminUseCase(
	scheduleRepo ScheduleRepository,
	blackoutRepo BlackoutRepository,
	appointmentRepo AppointmentRepository,
	clock clock.Clock,
) AdminUseCase {
	return &adminUseCaseImpl{
		scheduleRepo:    scheduleRepo,
		blackoutRepo:    blackoutRepo,
		appointmentRepo: appointmentRepo,
		clock:           clock,
	}
}

func (a *adminUseCaseImpl) GetScheduleConfig(ctx context.Context) (*readmodel.ScheduleConfig, error) {
	hours, err := a.scheduleRepo.ListHours(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	breaks, err := a.scheduleRepo.ListBreaks(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	blackouts, err := a.blackoutRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	return &readmodel.ScheduleConfig{
		Hours:     hours,
		Breaks:    breaks,
		Blackouts: blackouts,
	}, nil
}

func (a *adminUseCaseImpl) ReplaceBusinessHours(ctx context.Context, rows []readmodel.ScheduleWindow) error {
	if err := validateScheduleRows(rows); err != nil {
		return err
	}
	if err := a.scheduleRepo.ReplaceHours(ctx, rows); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (a *adminUseCaseImpl) ReplaceBreaks(ctx context.Context, rows []readmodel.ScheduleWindow) error {
	if err := validateScheduleRows(rows); err != nil {
		return err
	}
	if err := a.scheduleRepo.ReplaceBreaks(ctx, rows); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (a *adminUseCaseImpl) AddBlackout(ctx context.Context, dateKey string, reason *string) error {
	if _, err := schedule.ParseDateKey(dateKey); err != nil {
		return errs.Mark(err, ErrInvalidRequest)
	}
	if err := a.blackoutRepo.Upsert(ctx, dateKey, reason); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (a *adminUseCaseImpl) RemoveBlackout(ctx context.Context, dateKey string) error {
	if _, err := schedule.ParseDateKey(dateKey); err != nil {
		return errs.Mark(err, ErrInvalidRequest)
	}
	if err := a.blackoutRepo.Remove(ctx, dateKey); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBlackoutNotFound
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (a *adminUseCaseImpl) ListUpcomingAppointments(ctx context.Context) ([]readmodel.AppointmentDetail, error) {
	details, err := a.appointmentRepo.ListUpcoming(ctx, a.clock.Now(), upcomingAppointmentsLimit)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return details, nil
}

// CancelAppointment releases the appointment's time. Only Confirmed rows
// can transition; the freed span shows up in availability immediately.
func (a *adminUseCaseImpl) CancelAppointment(ctx context.Context, id uuid.UUID) error {
	if err := a.appointmentRepo.Cancel(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		if infra.IsKind(err, infra.KindConflict) {
			return ErrAppointmentNotCancellable
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func validateScheduleRows(rows []readmodel.ScheduleWindow) error {
	for _, row := range rows {
		if row.DayOfWeek < 1 || row.DayOfWeek > 7 {
			return ErrInvalidScheduleRows
		}
		if row.StartMin < 0 || row.EndMin > schedule.MinutesPerDay || row.StartMin >= row.EndMin {
			return ErrInvalidScheduleRows
		}
	}
	return nil
}
