package components

import (
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewScheduleResolver,
		usecase.NewCatalogUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
		usecase.NewAdminUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
