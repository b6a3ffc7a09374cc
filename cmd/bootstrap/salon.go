package bootstrap

import (
	"time"

	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var SalonModule = fx.Module("salon",
	fx.Provide(
		NewSalonLocation,
		func(cfg config.Config) config.SalonConfig { return cfg.Salon },
		func(cfg config.Config) config.AdminConfig { return cfg.Admin },
	),
)

// NewSalonLocation validates the configured IANA zone once at startup so
// every later conversion can trust the location.
func NewSalonLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Salon.Timezone)
}
