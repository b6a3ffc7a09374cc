package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

// Public endpoints share one per-IP limiter; the values are generous for a
// booking page but stop scripted slot scraping.
const (
	publicRequestsPerSecond = 5
	publicBurst             = 10
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewAuthHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func() *middleware.RateLimiter {
			return middleware.NewRateLimiter(publicRequestsPerSecond, publicBurst)
		},
		func(
			catalog *api.CatalogHandler,
			availability *api.AvailabilityHandler,
			booking *api.BookingHandler,
			auth *api.AuthHandler,
			admin *api.AdminHandler,
		) handler.Handlers {
			return handler.Handlers{
				Catalog:      catalog,
				Availability: availability,
				Booking:      booking,
				Auth:         auth,
				Admin:        admin,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
