package components

import (
	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(usecase.ServiceRepository)),
		),
		fx.Annotate(
			repository.NewScheduleRepository,
			fx.As(new(usecase.ScheduleRepository)),
		),
		fx.Annotate(
			repository.NewBlackoutRepository,
			fx.As(new(usecase.BlackoutRepository)),
		),
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(usecase.AppointmentRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
