package bootstrap

import (
	"salon-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	SalonModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
