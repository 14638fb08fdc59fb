package components

import (
	"hotel-pms/internal/handler"
	"hotel-pms/internal/handler/api"
	"hotel-pms/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewPaymentHandler,
		api.NewOTAHandler,
		middleware.NewAuthMiddleware,
		func(
			reservation *api.ReservationHandler,
			availability *api.AvailabilityHandler,
			payment *api.PaymentHandler,
			ota *api.OTAHandler,
		) handler.Handlers {
			return handler.Handlers{
				Reservation:  reservation,
				Availability: availability,
				Payment:      payment,
				OTA:          ota,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
